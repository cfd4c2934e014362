package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/tournament-engine/models"
	"github.com/Dosada05/tournament-engine/repositories"
)

// ScoreInput is a proposed result. Both scores are pointers so a missing value can be told
// apart from a zero.
type ScoreInput struct {
	Score1 *int `json:"score1"`
	Score2 *int `json:"score2"`
}

// Validate returns the two scores when they form a decisive result.
func (in ScoreInput) Validate() (int, int, error) {
	if in.Score1 == nil || in.Score2 == nil {
		return 0, 0, fmt.Errorf("%w: both scores are required", ErrInvalidScore)
	}
	s1, s2 := *in.Score1, *in.Score2
	if s1 < 0 || s2 < 0 {
		return 0, 0, fmt.Errorf("%w: scores must be non-negative (got %d-%d)", ErrInvalidScore, s1, s2)
	}
	if s1 == s2 {
		return 0, 0, fmt.Errorf("%w: %d-%d", ErrTiedScore, s1, s2)
	}
	return s1, s2, nil
}

type MatchService interface {
	GetMatch(ctx context.Context, matchID string) (*models.Match, error)
	ListMatches(ctx context.Context, phase *models.MatchPhase) []models.Match
	RecordResult(ctx context.Context, matchID string, input ScoreInput) (*models.Match, error)
}

type matchService struct {
	matchRepo repositories.MatchRepository
	now       func() time.Time
}

func NewMatchService(matchRepo repositories.MatchRepository) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		now:       time.Now,
	}
}

func (s *matchService) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
		}
		return nil, err
	}
	return match, nil
}

func (s *matchService) ListMatches(ctx context.Context, phase *models.MatchPhase) []models.Match {
	matches := s.matchRepo.ListByPhase(phase)
	if matches == nil {
		return []models.Match{}
	}
	return matches
}

// RecordResult validates and stores a result. Nothing is written unless every check passes.
func (s *matchService) RecordResult(ctx context.Context, matchID string, input ScoreInput) (*models.Match, error) {
	match, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Completed {
		return nil, fmt.Errorf("%w: %s", ErrMatchAlreadyCompleted, matchID)
	}

	score1, score2, err := input.Validate()
	if err != nil {
		return nil, err
	}

	winnerID := match.Player1ID
	if score2 > score1 {
		winnerID = match.Player2ID
	}

	err = s.matchRepo.UpdateScoreStatusWinner(matchID, score1, score2, winnerID, s.now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrMatchAlreadyCompleted):
			return nil, fmt.Errorf("%w: %s", ErrMatchAlreadyCompleted, matchID)
		case errors.Is(err, repositories.ErrMatchNotFound):
			return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
		}
		return nil, fmt.Errorf("failed to record result for match %s: %w", matchID, err)
	}

	return s.GetMatch(ctx, matchID)
}
