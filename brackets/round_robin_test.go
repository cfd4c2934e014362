package brackets

import (
	"context"
	"fmt"
	"testing"

	"github.com/Dosada05/tournament-engine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededRoster() []models.Competitor {
	roster := models.DefaultRoster()
	// Seed i+1 goes to roster position 6-i so IDs and seeds differ.
	for i := range roster {
		roster[i].Seed = len(roster) - i
	}
	return roster
}

func TestLeagueTableIsValid(t *testing.T) {
	table := LeagueTable()
	require.Len(t, table, 21)
	assert.NoError(t, ValidateLeagueTable(table, models.RosterSize, MatchesPerRound))
}

func TestLeagueTableEverySeedPlaysSix(t *testing.T) {
	games := make(map[int]int)
	for _, p := range LeagueTable() {
		games[p.Seed1]++
		games[p.Seed2]++
	}
	for seed := 1; seed <= models.RosterSize; seed++ {
		assert.Equal(t, 6, games[seed], "seed %d", seed)
	}
}

func TestValidateLeagueTableDetectsProblems(t *testing.T) {
	dup := LeagueTable()
	dup[20] = dup[0]
	assert.ErrorIs(t, ValidateLeagueTable(dup, models.RosterSize, MatchesPerRound), ErrInvalidSchedule)

	assert.ErrorIs(t, ValidateLeagueTable(LeagueTable()[:20], models.RosterSize, MatchesPerRound), ErrInvalidSchedule)

	// Swapping fixtures across rounds keeps coverage but puts seed 1 twice into round 1.
	clash := LeagueTable()
	clash[0], clash[3] = clash[3], clash[0] // (1,7) into round 1
	clash[1], clash[6] = clash[6], clash[1] // (1,6) into round 1
	assert.ErrorIs(t, ValidateLeagueTable(clash, models.RosterSize, MatchesPerRound), ErrInvalidSchedule)

	selfPair := LeagueTable()
	selfPair[0] = SeedPairing{Seed1: 3, Seed2: 3}
	assert.ErrorIs(t, ValidateLeagueTable(selfPair, models.RosterSize, MatchesPerRound), ErrInvalidSchedule)
}

func TestRoundOf(t *testing.T) {
	assert.Equal(t, 1, RoundOf(0))
	assert.Equal(t, 1, RoundOf(2))
	assert.Equal(t, 2, RoundOf(3))
	assert.Equal(t, 7, RoundOf(20))
}

func TestLeagueGeneratorMapsSeedsToCompetitors(t *testing.T) {
	roster := seededRoster()
	idBySeed := make(map[int]int)
	for _, c := range roster {
		idBySeed[c.Seed] = c.ID
	}

	gen := NewLeagueGenerator()
	assert.Equal(t, "RoundRobin", gen.GetName())

	matches, err := gen.GenerateBracket(context.Background(), GenerateBracketParams{TournamentID: "t", Competitors: roster})
	require.NoError(t, err)
	require.Len(t, matches, 21)

	table := LeagueTable()
	for i, m := range matches {
		assert.Equal(t, fmt.Sprintf("match_%d", i+1), m.UID)
		assert.Equal(t, models.PhaseLeague, m.Phase)
		assert.Equal(t, i/3+1, m.Round)
		assert.Equal(t, i%3+1, m.OrderInRound)
		assert.Equal(t, idBySeed[table[i].Seed1], m.Participant1ID)
		assert.Equal(t, idBySeed[table[i].Seed2], m.Participant2ID)

		fresh := m.ToMatch()
		assert.False(t, fresh.Completed)
		assert.Nil(t, fresh.Score1)
		assert.Nil(t, fresh.WinnerID)
	}
}

func TestLeagueGeneratorRequiresSeeds(t *testing.T) {
	gen := NewLeagueGenerator()

	_, err := gen.GenerateBracket(context.Background(), GenerateBracketParams{Competitors: models.DefaultRoster()})
	assert.ErrorIs(t, err, ErrSeedsNotAssigned)

	dup := seededRoster()
	dup[0].Seed = dup[1].Seed
	_, err = gen.GenerateBracket(context.Background(), GenerateBracketParams{Competitors: dup})
	assert.ErrorIs(t, err, ErrSeedsNotAssigned)

	_, err = gen.GenerateBracket(context.Background(), GenerateBracketParams{Competitors: seededRoster()[:5]})
	assert.ErrorIs(t, err, ErrRosterSize)
}
