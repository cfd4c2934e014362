package brackets

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/Dosada05/tournament-engine/models"
)

var ErrRosterSize = fmt.Errorf("roster must contain exactly %d competitors", models.RosterSize)

// PerformDraw assigns seeds 1..7 to the competitors through a uniform random permutation.
// Calling it again overwrites the previous seeds.
func PerformDraw(competitors []*models.Competitor, rng *rand.Rand) error {
	if len(competitors) != models.RosterSize {
		return fmt.Errorf("%w: got %d", ErrRosterSize, len(competitors))
	}
	if rng == nil {
		return errors.New("draw requires a random source")
	}

	seeds := rng.Perm(len(competitors))
	for i, c := range competitors {
		c.Seed = seeds[i] + 1
	}
	return nil
}
