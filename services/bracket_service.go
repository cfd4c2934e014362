package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Dosada05/tournament-engine/brackets"
	"github.com/Dosada05/tournament-engine/models"
	"github.com/Dosada05/tournament-engine/repositories"
)

// BracketManager owns the playoff half of the ledger: seeding the semifinals from the standings,
// creating the final once both semifinals are decided and reading the champion off the final.
type BracketManager interface {
	SeedPlayoffs(ctx context.Context, tournamentID string, standings []models.Competitor) (models.Bracket, error)
	EnsureFinal(ctx context.Context, tournamentID string) (final *models.Match, created bool, err error)
	GetBracket(ctx context.Context) models.Bracket
	ChampionID(ctx context.Context) *int
}

type bracketManager struct {
	matchRepo repositories.MatchRepository
	playoffs  brackets.BracketGenerator
}

func NewBracketManager(matchRepo repositories.MatchRepository, playoffs brackets.BracketGenerator) BracketManager {
	if playoffs == nil {
		playoffs = brackets.NewPlayoffGenerator()
	}
	return &bracketManager{
		matchRepo: matchRepo,
		playoffs:  playoffs,
	}
}

func (m *bracketManager) SeedPlayoffs(ctx context.Context, tournamentID string, standings []models.Competitor) (models.Bracket, error) {
	leaguePhase := models.PhaseLeague
	league := m.matchRepo.ListByPhase(&leaguePhase)
	if !leagueComplete(league) {
		return models.Bracket{}, fmt.Errorf("%w: all %d league matches must be completed", ErrPhasePreconditionNotMet, brackets.LeagueMatchCount())
	}
	if current := m.GetBracket(ctx); len(current.Semifinals) > 0 {
		return models.Bracket{}, fmt.Errorf("%w: playoffs already seeded", ErrPhasePreconditionNotMet)
	}

	generated, err := m.playoffs.GenerateBracket(ctx, brackets.GenerateBracketParams{
		TournamentID: tournamentID,
		Competitors:  standings,
	})
	if err != nil {
		if errors.Is(err, brackets.ErrNotEnoughQualifiers) {
			return models.Bracket{}, fmt.Errorf("%w: %v", ErrInsufficientCompetitors, err)
		}
		return models.Bracket{}, fmt.Errorf("bracket generation failed using %s: %w", m.playoffs.GetName(), err)
	}

	if err := m.matchRepo.BatchCreate(bracketToMatches(generated)); err != nil {
		return models.Bracket{}, fmt.Errorf("failed to save semifinals: %w", err)
	}
	log.Printf("Playoffs seeded for tournament %s with generator %s", tournamentID, m.playoffs.GetName())

	return m.GetBracket(ctx), nil
}

// EnsureFinal creates the final when both semifinals are completed and no final exists yet.
// Calling it again is a no-op that returns the existing final.
func (m *bracketManager) EnsureFinal(ctx context.Context, tournamentID string) (*models.Match, bool, error) {
	bracket := m.GetBracket(ctx)
	if bracket.Final != nil {
		return bracket.Final, false, nil
	}
	if len(bracket.Semifinals) != 2 {
		return nil, false, nil
	}
	for _, sf := range bracket.Semifinals {
		if !sf.Completed {
			return nil, false, nil
		}
	}

	final, err := brackets.NewFinal(bracket.Semifinals)
	if err != nil {
		return nil, false, err
	}
	if err := m.matchRepo.Create(final.ToMatch()); err != nil {
		if errors.Is(err, repositories.ErrMatchConflict) {
			existing, getErr := m.matchRepo.GetByID(brackets.FinalUID)
			return existing, false, getErr
		}
		return nil, false, fmt.Errorf("failed to save final: %w", err)
	}
	log.Printf("Final created for tournament %s: %d vs %d", tournamentID, final.Participant1ID, final.Participant2ID)

	created, err := m.matchRepo.GetByID(brackets.FinalUID)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

func (m *bracketManager) GetBracket(ctx context.Context) models.Bracket {
	semifinalPhase := models.PhaseSemifinal
	finalPhase := models.PhaseFinal

	bracket := models.Bracket{Semifinals: m.matchRepo.ListByPhase(&semifinalPhase)}
	if bracket.Semifinals == nil {
		bracket.Semifinals = []models.Match{}
	}
	if finals := m.matchRepo.ListByPhase(&finalPhase); len(finals) > 0 {
		final := finals[0]
		bracket.Final = &final
	}
	return bracket
}

// ChampionID is the winner of the completed final, nil before that.
func (m *bracketManager) ChampionID(ctx context.Context) *int {
	bracket := m.GetBracket(ctx)
	if bracket.Final == nil || !bracket.Final.Completed || bracket.Final.WinnerID == nil {
		return nil
	}
	id := *bracket.Final.WinnerID
	return &id
}
