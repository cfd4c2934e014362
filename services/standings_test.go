package services

import (
	"testing"

	"github.com/Dosada05/tournament-engine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedMatch(id string, phase models.MatchPhase, p1, p2, s1, s2 int) models.Match {
	winner := p1
	if s2 > s1 {
		winner = p2
	}
	return models.Match{
		ID:        id,
		Phase:     phase,
		Player1ID: p1,
		Player2ID: p2,
		Score1:    &s1,
		Score2:    &s2,
		WinnerID:  &winner,
		Completed: true,
	}
}

func seededCompetitors(n int) []models.Competitor {
	out := make([]models.Competitor, n)
	for i := range out {
		out[i] = models.Competitor{ID: 100 + i, Name: string(rune('A' + i)), Seed: i + 1}
	}
	return out
}

func TestComputeStandingsFold(t *testing.T) {
	competitors := seededCompetitors(3)
	matches := []models.Match{
		completedMatch("match_1", models.PhaseLeague, 100, 101, 2, 1),
		completedMatch("match_2", models.PhaseLeague, 102, 100, 2, 0),
		{ID: "match_3", Phase: models.PhaseLeague, Player1ID: 101, Player2ID: 102},
		completedMatch("semifinal_1", models.PhaseSemifinal, 101, 102, 2, 0),
	}

	table := ComputeStandings(competitors, matches)
	require.Len(t, table, 3)

	// 102: 1 win, 2-0 sets. 100: 1 win, 2-3 sets. 101: 0 wins, 1-2 sets.
	assert.Equal(t, 102, table[0].ID)
	assert.Equal(t, 3, table[0].Points)
	assert.Equal(t, 2, table[0].SetDifference())

	assert.Equal(t, 100, table[1].ID)
	assert.Equal(t, 3, table[1].Points)
	assert.Equal(t, 2, table[1].MatchesPlayed)
	assert.Equal(t, 1, table[1].MatchesLost)
	assert.Equal(t, 2, table[1].SetsWon)
	assert.Equal(t, 3, table[1].SetsLost)

	assert.Equal(t, 101, table[2].ID)
	assert.Equal(t, 0, table[2].Points)
	assert.Equal(t, 1, table[2].MatchesPlayed)

	// Inputs are untouched.
	assert.Zero(t, competitors[0].Points)
}

func TestComputeStandingsIsRecomputedFromScratch(t *testing.T) {
	competitors := seededCompetitors(2)
	competitors[0].Points = 99
	competitors[0].SetsWon = 42

	table := ComputeStandings(competitors, nil)
	for _, c := range table {
		assert.Zero(t, c.Points)
		assert.Zero(t, c.SetsWon)
	}
}

func TestSortStandingsTiebreakers(t *testing.T) {
	tests := []struct {
		name  string
		table []models.Competitor
		want  []int
	}{
		{
			name: "points first",
			table: []models.Competitor{
				{ID: 1, Seed: 1, Points: 3},
				{ID: 2, Seed: 2, Points: 6},
			},
			want: []int{2, 1},
		},
		{
			name: "set difference second",
			table: []models.Competitor{
				{ID: 1, Seed: 1, Points: 6, SetsWon: 4, SetsLost: 3},
				{ID: 2, Seed: 2, Points: 6, SetsWon: 4, SetsLost: 1},
			},
			want: []int{2, 1},
		},
		{
			name: "sets won third",
			table: []models.Competitor{
				{ID: 1, Seed: 1, Points: 6, SetsWon: 4, SetsLost: 2},
				{ID: 2, Seed: 2, Points: 6, SetsWon: 5, SetsLost: 3},
			},
			want: []int{2, 1},
		},
		{
			name: "seed last",
			table: []models.Competitor{
				{ID: 1, Seed: 5, Points: 6, SetsWon: 4, SetsLost: 2},
				{ID: 2, Seed: 3, Points: 6, SetsWon: 4, SetsLost: 2},
			},
			want: []int{2, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SortStandings(tt.table)
			got := make([]int, len(tt.table))
			for i, c := range tt.table {
				got[i] = c.ID
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
