package brackets

import (
	"context"
	"testing"

	"github.com/Dosada05/tournament-engine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standingsOf(ids ...int) []models.Competitor {
	out := make([]models.Competitor, len(ids))
	for i, id := range ids {
		out[i] = models.Competitor{ID: id, Seed: i + 1}
	}
	return out
}

func TestPlayoffGeneratorPairsOneFourAndTwoThree(t *testing.T) {
	gen := NewPlayoffGenerator()
	assert.Equal(t, "SingleElimination", gen.GetName())

	matches, err := gen.GenerateBracket(context.Background(), GenerateBracketParams{
		Competitors: standingsOf(30, 10, 70, 20, 50, 60, 40),
	})
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, Semifinal1UID, matches[0].UID)
	assert.Equal(t, models.PhaseSemifinal, matches[0].Phase)
	assert.Equal(t, 30, matches[0].Participant1ID)
	assert.Equal(t, 20, matches[0].Participant2ID)

	assert.Equal(t, Semifinal2UID, matches[1].UID)
	assert.Equal(t, 10, matches[1].Participant1ID)
	assert.Equal(t, 70, matches[1].Participant2ID)
}

func TestPlayoffGeneratorSkipsDuplicatesAndNeedsFour(t *testing.T) {
	gen := NewPlayoffGenerator()

	matches, err := gen.GenerateBracket(context.Background(), GenerateBracketParams{
		Competitors: standingsOf(1, 1, 2, 3, 4),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, matches[0].Participant1ID)
	assert.Equal(t, 4, matches[0].Participant2ID)

	_, err = gen.GenerateBracket(context.Background(), GenerateBracketParams{
		Competitors: standingsOf(1, 2, 2, 3),
	})
	assert.ErrorIs(t, err, ErrNotEnoughQualifiers)
}

func decided(id string, p1, p2, winner int) models.Match {
	s1, s2 := 2, 0
	if winner == p2 {
		s1, s2 = 0, 2
	}
	return models.Match{ID: id, Phase: models.PhaseSemifinal, Player1ID: p1, Player2ID: p2, Score1: &s1, Score2: &s2, WinnerID: &winner, Completed: true}
}

func TestNewFinal(t *testing.T) {
	semis := []models.Match{
		decided(Semifinal1UID, 1, 4, 4),
		decided(Semifinal2UID, 2, 3, 2),
	}

	final, err := NewFinal(semis)
	require.NoError(t, err)
	assert.Equal(t, FinalUID, final.UID)
	assert.Equal(t, models.PhaseFinal, final.Phase)
	assert.Equal(t, 4, final.Participant1ID)
	assert.Equal(t, 2, final.Participant2ID)
	require.NotNil(t, final.SourceMatch1UID)
	assert.Equal(t, Semifinal1UID, *final.SourceMatch1UID)
	assert.Equal(t, Semifinal2UID, *final.SourceMatch2UID)
}

func TestNewFinalRequiresBothSemifinals(t *testing.T) {
	open := models.Match{ID: Semifinal2UID, Phase: models.PhaseSemifinal, Player1ID: 2, Player2ID: 3}

	_, err := NewFinal([]models.Match{decided(Semifinal1UID, 1, 4, 1), open})
	assert.ErrorIs(t, err, ErrSemifinalsIncomplete)

	_, err = NewFinal([]models.Match{decided(Semifinal1UID, 1, 4, 1)})
	assert.ErrorIs(t, err, ErrSemifinalsIncomplete)
}
