package repositories

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Dosada05/tournament-engine/models"
)

var (
	ErrCompetitorNotFound   = errors.New("competitor not found")
	ErrSeedAlreadyAssigned  = errors.New("competitor seed is already assigned")
	ErrCompetitorSetInvalid = errors.New("competitor set does not match the roster")
)

// CompetitorRepository holds the roster. Seeds are written once; statistics are replaced
// wholesale by the standings fold.
type CompetitorRepository interface {
	ListAll() []models.Competitor
	GetByID(id int) (*models.Competitor, error)
	AssignSeeds(seeds map[int]int) error
	UpdateStats(competitors []models.Competitor) error
	Reset(roster []models.Competitor)
}

type memoryCompetitorRepository struct {
	mu    sync.RWMutex
	order []int
	byID  map[int]*models.Competitor
}

func NewMemoryCompetitorRepository(roster []models.Competitor) CompetitorRepository {
	r := &memoryCompetitorRepository{}
	r.Reset(roster)
	return r
}

func (r *memoryCompetitorRepository) Reset(roster []models.Competitor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = make([]int, 0, len(roster))
	r.byID = make(map[int]*models.Competitor, len(roster))
	for _, c := range roster {
		stored := c
		r.byID[c.ID] = &stored
		r.order = append(r.order, c.ID)
	}
}

// ListAll returns the roster in insertion order.
func (r *memoryCompetitorRepository) ListAll() []models.Competitor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*models.Competitor, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.byID[id])
	}
	return cloneCompetitors(list)
}

func (r *memoryCompetitorRepository) GetByID(id int) (*models.Competitor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, ErrCompetitorNotFound
	}
	out := *c
	return &out, nil
}

// AssignSeeds sets the seed of every competitor, keyed by competitor ID. It fails without
// writing anything if the key set differs from the roster or a seed already exists.
func (r *memoryCompetitorRepository) AssignSeeds(seeds map[int]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(seeds) != len(r.byID) {
		return fmt.Errorf("%w: %d seeds for %d competitors", ErrCompetitorSetInvalid, len(seeds), len(r.byID))
	}
	used := make(map[int]struct{}, len(seeds))
	for id, seed := range seeds {
		if seed < 1 || seed > len(r.byID) {
			return fmt.Errorf("%w: seed %d out of range", ErrCompetitorSetInvalid, seed)
		}
		if _, dup := used[seed]; dup {
			return fmt.Errorf("%w: seed %d used twice", ErrCompetitorSetInvalid, seed)
		}
		used[seed] = struct{}{}

		c, ok := r.byID[id]
		if !ok {
			return fmt.Errorf("%w: competitor %d", ErrCompetitorNotFound, id)
		}
		if c.IsSeeded() {
			return fmt.Errorf("%w: competitor %d holds seed %d", ErrSeedAlreadyAssigned, id, c.Seed)
		}
	}
	for id, seed := range seeds {
		r.byID[id].Seed = seed
	}
	return nil
}

// UpdateStats copies the derived statistics of each competitor into the store.
// Identity, profile and seed are left untouched.
func (r *memoryCompetitorRepository) UpdateStats(competitors []models.Competitor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(competitors) != len(r.byID) {
		return fmt.Errorf("%w: %d rows for %d competitors", ErrCompetitorSetInvalid, len(competitors), len(r.byID))
	}
	seen := make(map[int]struct{}, len(competitors))
	for _, c := range competitors {
		if _, ok := r.byID[c.ID]; !ok {
			return fmt.Errorf("%w: competitor %d", ErrCompetitorNotFound, c.ID)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: competitor %d listed twice", ErrCompetitorSetInvalid, c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	for _, c := range competitors {
		stored := r.byID[c.ID]
		stored.MatchesPlayed = c.MatchesPlayed
		stored.MatchesWon = c.MatchesWon
		stored.MatchesLost = c.MatchesLost
		stored.SetsWon = c.SetsWon
		stored.SetsLost = c.SetsLost
		stored.Points = c.Points
	}
	return nil
}
