package brackets

import (
	"context"

	"github.com/Dosada05/tournament-engine/models"
)

// GenerateBracketParams carries the input of a generator. For the league generator the
// competitors must be seeded; for the playoff generator they must be in standings order.
type GenerateBracketParams struct {
	TournamentID string
	Competitors  []models.Competitor
}

type BracketGenerator interface {
	GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]*BracketMatch, error)

	GetName() string
}

// BracketMatch is a generated pairing before it is written to the ledger.
type BracketMatch struct {
	UID          string
	Phase        models.MatchPhase
	Round        int
	OrderInRound int

	Participant1ID int
	Participant2ID int

	// Set on the final only: the semifinals whose winners fill the two slots.
	SourceMatch1UID *string
	SourceMatch2UID *string
}

// ToMatch converts the generated pairing into a fresh, unplayed ledger match.
func (bm *BracketMatch) ToMatch() models.Match {
	return models.Match{
		ID:        bm.UID,
		Phase:     bm.Phase,
		Round:     bm.Round,
		Player1ID: bm.Participant1ID,
		Player2ID: bm.Participant2ID,
	}
}
