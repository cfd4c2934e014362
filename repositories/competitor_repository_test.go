package repositories

import (
	"testing"

	"github.com/Dosada05/tournament-engine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullSeeding() map[int]int {
	seeds := make(map[int]int)
	for i, c := range models.DefaultRoster() {
		seeds[c.ID] = models.RosterSize - i
	}
	return seeds
}

func TestCompetitorRepositoryListsRosterOrder(t *testing.T) {
	repo := NewMemoryCompetitorRepository(models.DefaultRoster())
	list := repo.ListAll()
	require.Len(t, list, models.RosterSize)
	for i, c := range list {
		assert.Equal(t, i+1, c.ID)
		assert.Zero(t, c.Seed)
	}

	list[0].Name = "changed"
	c, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Thiago Santamarina", c.Name)

	_, err = repo.GetByID(99)
	assert.ErrorIs(t, err, ErrCompetitorNotFound)
}

func TestAssignSeedsValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[int]int)
		wantErr error
	}{
		{name: "missing competitor", mutate: func(s map[int]int) { delete(s, 3) }, wantErr: ErrCompetitorSetInvalid},
		{name: "seed out of range", mutate: func(s map[int]int) { s[1] = 8 }, wantErr: ErrCompetitorSetInvalid},
		{name: "duplicate seed", mutate: func(s map[int]int) { s[1] = s[2] }, wantErr: ErrCompetitorSetInvalid},
		{name: "unknown competitor", mutate: func(s map[int]int) { s[99] = s[1]; delete(s, 1) }, wantErr: ErrCompetitorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMemoryCompetitorRepository(models.DefaultRoster())
			seeds := fullSeeding()
			tt.mutate(seeds)

			assert.ErrorIs(t, repo.AssignSeeds(seeds), tt.wantErr)
			for _, c := range repo.ListAll() {
				assert.Zero(t, c.Seed)
			}
		})
	}
}

func TestAssignSeedsOnlyOnce(t *testing.T) {
	repo := NewMemoryCompetitorRepository(models.DefaultRoster())
	require.NoError(t, repo.AssignSeeds(fullSeeding()))

	c, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Seed)

	assert.ErrorIs(t, repo.AssignSeeds(fullSeeding()), ErrSeedAlreadyAssigned)

	repo.Reset(models.DefaultRoster())
	assert.NoError(t, repo.AssignSeeds(fullSeeding()))
}

func TestUpdateStatsCopiesOnlyStatistics(t *testing.T) {
	repo := NewMemoryCompetitorRepository(models.DefaultRoster())
	require.NoError(t, repo.AssignSeeds(fullSeeding()))

	rows := repo.ListAll()
	rows[0].Points = 9
	rows[0].SetsWon = 6
	rows[0].Seed = 1
	rows[0].Name = "other"
	require.NoError(t, repo.UpdateStats(rows))

	c, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 9, c.Points)
	assert.Equal(t, 6, c.SetsWon)
	assert.Equal(t, 7, c.Seed)
	assert.Equal(t, "Thiago Santamarina", c.Name)

	assert.ErrorIs(t, repo.UpdateStats(rows[:3]), ErrCompetitorSetInvalid)

	dup := repo.ListAll()
	dup[1] = dup[0]
	assert.ErrorIs(t, repo.UpdateStats(dup), ErrCompetitorSetInvalid)
}
