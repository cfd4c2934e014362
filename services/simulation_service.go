package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"

	"github.com/Dosada05/tournament-engine/models"
)

const setsToWin = 2

// SimulationService plays out the open matches of the current phase with random best-of-three
// set scores. Results go through the normal RecordResult path.
type SimulationService interface {
	SimulatePhase(ctx context.Context) ([]models.Match, error)
}

type simulationService struct {
	tournaments *TournamentService

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulationService(tournaments *TournamentService, rng *rand.Rand) SimulationService {
	return &simulationService{
		tournaments: tournaments,
		rng:         rng,
	}
}

func (s *simulationService) SimulatePhase(ctx context.Context) ([]models.Match, error) {
	if s.rng == nil {
		return nil, errors.New("simulation requires a random source")
	}

	var open []models.Match
	switch phase := s.tournaments.Phase(ctx); phase {
	case models.TournamentLeague:
		open = openMatches(s.tournaments.GetSchedule(ctx))
	case models.TournamentSemifinals:
		open = openMatches(s.tournaments.GetBracket(ctx).Semifinals)
	case models.TournamentFinal:
		if final := s.tournaments.GetBracket(ctx).Final; final != nil {
			open = openMatches([]models.Match{*final})
		}
	default:
		return nil, fmt.Errorf("%w: nothing to simulate in phase %s", ErrPhasePreconditionNotMet, phase)
	}

	recorded := make([]models.Match, 0, len(open))
	for _, m := range open {
		if err := ctx.Err(); err != nil {
			return recorded, err
		}
		input := s.randomScore()
		match, err := s.tournaments.RecordResult(ctx, m.ID, input)
		if err != nil {
			if errors.Is(err, ErrMatchAlreadyCompleted) {
				// Recorded concurrently by someone else.
				continue
			}
			return recorded, fmt.Errorf("simulation of match %s failed: %w", m.ID, err)
		}
		recorded = append(recorded, *match)
	}
	log.Printf("Simulated %d matches", len(recorded))
	return recorded, nil
}

func (s *simulationService) randomScore() ScoreInput {
	s.mu.Lock()
	defer s.mu.Unlock()

	winner := setsToWin
	loser := s.rng.IntN(setsToWin)
	if s.rng.IntN(2) == 0 {
		return ScoreInput{Score1: &winner, Score2: &loser}
	}
	return ScoreInput{Score1: &loser, Score2: &winner}
}
