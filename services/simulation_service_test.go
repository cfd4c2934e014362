package services

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/Dosada05/tournament-engine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertBestOfThree(t *testing.T, m models.Match) {
	t.Helper()
	require.True(t, m.Completed)
	s1, s2 := *m.Score1, *m.Score2
	if s1 < s2 {
		s1, s2 = s2, s1
	}
	assert.Equal(t, 2, s1, "match %s", m.ID)
	assert.Contains(t, []int{0, 1}, s2, "match %s", m.ID)
}

func TestSimulatePhaseRunsTournamentToCompletion(t *testing.T) {
	ctx := context.Background()
	s := newTestTournament(t)
	sim := NewSimulationService(s, rand.New(rand.NewPCG(1, 2)))

	_, err := sim.SimulatePhase(ctx)
	assert.ErrorIs(t, err, ErrPhasePreconditionNotMet)

	_, err = s.PerformDraw(ctx)
	require.NoError(t, err)

	league, err := sim.SimulatePhase(ctx)
	require.NoError(t, err)
	require.Len(t, league, 21)
	for _, m := range league {
		assertBestOfThree(t, m)
	}
	assert.Equal(t, models.TournamentLeague, s.Phase(ctx))

	again, err := sim.SimulatePhase(ctx)
	require.NoError(t, err)
	assert.Empty(t, again)

	_, err = s.AdvanceToPlayoffs(ctx)
	require.NoError(t, err)

	semis, err := sim.SimulatePhase(ctx)
	require.NoError(t, err)
	assert.Len(t, semis, 2)
	assert.Equal(t, models.TournamentFinal, s.Phase(ctx))

	final, err := sim.SimulatePhase(ctx)
	require.NoError(t, err)
	require.Len(t, final, 1)
	assertBestOfThree(t, final[0])
	assert.Equal(t, models.TournamentCrowned, s.Phase(ctx))

	champion := s.GetChampion(ctx)
	require.NotNil(t, champion)
	assert.Equal(t, *final[0].WinnerID, champion.ID)

	_, err = sim.SimulatePhase(ctx)
	assert.ErrorIs(t, err, ErrPhasePreconditionNotMet)
}

func TestSimulatePhaseSkipsRecordedMatches(t *testing.T) {
	ctx := context.Background()
	s := newTestTournament(t)
	sim := NewSimulationService(s, rand.New(rand.NewPCG(3, 4)))

	_, err := s.PerformDraw(ctx)
	require.NoError(t, err)
	_, err = s.RecordResult(ctx, "match_5", score(0, 2))
	require.NoError(t, err)

	recorded, err := sim.SimulatePhase(ctx)
	require.NoError(t, err)
	assert.Len(t, recorded, 20)

	m, err := s.GetMatch(ctx, "match_5")
	require.NoError(t, err)
	assert.Equal(t, 0, *m.Score1)
}

func TestSimulatePhaseRequiresRandomSource(t *testing.T) {
	sim := NewSimulationService(newTestTournament(t), nil)
	_, err := sim.SimulatePhase(context.Background())
	assert.Error(t, err)
}
