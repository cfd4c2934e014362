package brackets

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-engine/models"
)

// PlayoffSize is the number of qualifiers taken from the top of the standings.
const PlayoffSize = 4

const (
	Semifinal1UID = "semifinal_1"
	Semifinal2UID = "semifinal_2"
	FinalUID      = "final"
)

var (
	ErrNotEnoughQualifiers  = fmt.Errorf("playoffs need %d distinct competitors", PlayoffSize)
	ErrSemifinalsIncomplete = errors.New("both semifinals must be completed before the final")
)

type PlayoffGenerator struct{}

func NewPlayoffGenerator() BracketGenerator {
	return &PlayoffGenerator{}
}

func (g *PlayoffGenerator) GetName() string {
	return "SingleElimination"
}

// GenerateBracket seeds the semifinals from competitors given in standings order:
// 1st vs 4th and 2nd vs 3rd. The final is not generated here, see NewFinal.
func (g *PlayoffGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]*BracketMatch, error) {
	qualifiers := make([]int, 0, PlayoffSize)
	seen := make(map[int]struct{}, PlayoffSize)
	for _, c := range params.Competitors {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		qualifiers = append(qualifiers, c.ID)
		if len(qualifiers) == PlayoffSize {
			break
		}
	}
	if len(qualifiers) < PlayoffSize {
		return nil, fmt.Errorf("%w: found %d", ErrNotEnoughQualifiers, len(qualifiers))
	}

	return []*BracketMatch{
		{
			UID:            Semifinal1UID,
			Phase:          models.PhaseSemifinal,
			Round:          0,
			OrderInRound:   1,
			Participant1ID: qualifiers[0],
			Participant2ID: qualifiers[3],
		},
		{
			UID:            Semifinal2UID,
			Phase:          models.PhaseSemifinal,
			Round:          0,
			OrderInRound:   2,
			Participant1ID: qualifiers[1],
			Participant2ID: qualifiers[2],
		},
	}, nil
}

// NewFinal pairs the winners of the two completed semifinals. The winner of the first
// semifinal takes the first slot.
func NewFinal(semifinals []models.Match) (*BracketMatch, error) {
	if len(semifinals) != 2 {
		return nil, fmt.Errorf("%w: have %d semifinals", ErrSemifinalsIncomplete, len(semifinals))
	}
	for _, sf := range semifinals {
		if !sf.Completed || sf.WinnerID == nil {
			return nil, fmt.Errorf("%w: %s is still open", ErrSemifinalsIncomplete, sf.ID)
		}
	}

	src1, src2 := semifinals[0].ID, semifinals[1].ID
	return &BracketMatch{
		UID:             FinalUID,
		Phase:           models.PhaseFinal,
		OrderInRound:    1,
		Participant1ID:  *semifinals[0].WinnerID,
		Participant2ID:  *semifinals[1].WinnerID,
		SourceMatch1UID: &src1,
		SourceMatch2UID: &src2,
	}, nil
}
