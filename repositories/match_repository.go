package repositories

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Dosada05/tournament-engine/models"
)

var (
	ErrMatchNotFound         = errors.New("match not found")
	ErrMatchConflict         = errors.New("match id already exists")
	ErrMatchAlreadyCompleted = errors.New("match already completed")
	ErrMatchInvalid          = errors.New("match is invalid")
)

// MatchRepository is the match ledger: every league and playoff match with its result.
type MatchRepository interface {
	Create(match models.Match) error
	BatchCreate(matches []models.Match) error
	GetByID(id string) (*models.Match, error)
	ListByPhase(phase *models.MatchPhase) []models.Match
	UpdateScoreStatusWinner(id string, score1, score2, winnerID int, completedAt time.Time) error
	DeleteAll()
}

type memoryMatchRepository struct {
	mu      sync.RWMutex
	order   []string
	matches map[string]*models.Match
}

func NewMemoryMatchRepository() MatchRepository {
	return &memoryMatchRepository{matches: make(map[string]*models.Match)}
}

func validateNewMatch(m models.Match) error {
	if m.ID == "" {
		return fmt.Errorf("%w: empty id", ErrMatchInvalid)
	}
	if m.Player1ID == m.Player2ID {
		return fmt.Errorf("%w: %s pairs competitor %d with itself", ErrMatchInvalid, m.ID, m.Player1ID)
	}
	if m.Completed || m.WinnerID != nil || m.Score1 != nil || m.Score2 != nil {
		return fmt.Errorf("%w: %s must be created without a result", ErrMatchInvalid, m.ID)
	}
	return nil
}

func (r *memoryMatchRepository) Create(match models.Match) error {
	return r.BatchCreate([]models.Match{match})
}

// BatchCreate inserts all matches or none of them.
func (r *memoryMatchRepository) BatchCreate(matches []models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if err := validateNewMatch(m); err != nil {
			return err
		}
		if _, exists := r.matches[m.ID]; exists {
			return fmt.Errorf("%w: %s", ErrMatchConflict, m.ID)
		}
		if _, dup := pending[m.ID]; dup {
			return fmt.Errorf("%w: %s appears twice in batch", ErrMatchConflict, m.ID)
		}
		pending[m.ID] = struct{}{}
	}

	for _, m := range matches {
		stored := m.Clone()
		r.matches[m.ID] = &stored
		r.order = append(r.order, m.ID)
	}
	return nil
}

func (r *memoryMatchRepository) GetByID(id string) (*models.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[id]
	if !ok {
		return nil, ErrMatchNotFound
	}
	out := m.Clone()
	return &out, nil
}

// ListByPhase returns matches in creation order; a nil phase lists everything.
func (r *memoryMatchRepository) ListByPhase(phase *models.MatchPhase) []models.Match {
	r.mu.RLock()
	defer r.mu.RUnlock()

	selected := make([]*models.Match, 0, len(r.order))
	for _, id := range r.order {
		m := r.matches[id]
		if phase != nil && m.Phase != *phase {
			continue
		}
		selected = append(selected, m)
	}
	return cloneMatches(selected)
}

// UpdateScoreStatusWinner records a result. Scores, winner and completion are written together.
func (r *memoryMatchRepository) UpdateScoreStatusWinner(id string, score1, score2, winnerID int, completedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.matches[id]
	if !ok {
		return ErrMatchNotFound
	}
	if m.Completed {
		return fmt.Errorf("%w: %s", ErrMatchAlreadyCompleted, id)
	}
	if !m.HasCompetitor(winnerID) {
		return fmt.Errorf("%w: winner %d does not play in %s", ErrMatchInvalid, winnerID, id)
	}

	s1, s2, w, at := score1, score2, winnerID, completedAt
	m.Score1 = &s1
	m.Score2 = &s2
	m.WinnerID = &w
	m.CompletedAt = &at
	m.Completed = true
	return nil
}

func (r *memoryMatchRepository) DeleteAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = nil
	r.matches = make(map[string]*models.Match)
}
