package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Dosada05/tournament-engine/brackets"
	"github.com/Dosada05/tournament-engine/models"
	"github.com/Dosada05/tournament-engine/repositories"
	"github.com/google/uuid"
)

// ScheduleRound groups the league matches that share a round number.
type ScheduleRound struct {
	Round   int            `json:"round"`
	Matches []models.Match `json:"matches"`
}

// TournamentService is the engine facade. One tournament lives at a time; NewTournament
// discards it and starts over from the static roster.
type TournamentService struct {
	mu        sync.Mutex
	id        string
	createdAt time.Time

	competitorRepo repositories.CompetitorRepository
	matchRepo      repositories.MatchRepository
	matchService   MatchService
	bracketManager BracketManager
	league         brackets.BracketGenerator

	rng      *rand.Rand
	notifier *EventNotifier
	logger   *slog.Logger
	now      func() time.Time
}

func NewTournamentService(
	competitorRepo repositories.CompetitorRepository,
	matchRepo repositories.MatchRepository,
	notifier *EventNotifier,
	rng *rand.Rand,
	logger *slog.Logger,
) *TournamentService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &TournamentService{
		competitorRepo: competitorRepo,
		matchRepo:      matchRepo,
		matchService:   NewMatchService(matchRepo),
		bracketManager: NewBracketManager(matchRepo, brackets.NewPlayoffGenerator()),
		league:         brackets.NewLeagueGenerator(),
		rng:            rng,
		notifier:       notifier,
		logger:         logger,
		now:            time.Now,
	}
	s.resetLocked()
	return s
}

func (s *TournamentService) resetLocked() {
	s.id = uuid.NewString()
	s.createdAt = s.now().UTC()
	s.matchRepo.DeleteAll()
	s.competitorRepo.Reset(models.DefaultRoster())
}

func (s *TournamentService) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

func (s *TournamentService) Phase(ctx context.Context) models.TournamentPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phaseLocked(ctx)
}

func (s *TournamentService) phaseLocked(ctx context.Context) models.TournamentPhase {
	leaguePhase := models.PhaseLeague
	return derivePhase(s.matchRepo.ListByPhase(&leaguePhase), s.bracketManager.GetBracket(ctx))
}

// NewTournament discards all state and starts a fresh tournament with a new ID.
func (s *TournamentService) NewTournament(ctx context.Context) models.Tournament {
	s.mu.Lock()
	defer s.mu.Unlock()

	previousID := s.id
	s.notifier.Stop()
	s.resetLocked()

	s.logger.InfoContext(ctx, "Tournament reset",
		slog.String("previous_tournament_id", previousID),
		slog.String("tournament_id", s.id))
	s.notifier.Notify(previousID, brackets.EventTournamentReset, map[string]string{
		"previous_tournament_id": previousID,
		"tournament_id":          s.id,
	})

	return s.snapshotLocked(ctx)
}

// PerformDraw assigns seeds 1..7 at random and generates the 21-match league schedule.
func (s *TournamentService) PerformDraw(ctx context.Context) ([]models.Competitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if phase := s.phaseLocked(ctx); phase != models.TournamentDraw {
		return nil, fmt.Errorf("%w: draw is only allowed before the league starts (phase %s)", ErrPhasePreconditionNotMet, phase)
	}

	competitors := s.competitorRepo.ListAll()
	if err := brackets.PerformDraw(competitorPointers(competitors), s.rng); err != nil {
		return nil, fmt.Errorf("draw failed: %w", err)
	}

	generated, err := s.league.GenerateBracket(ctx, brackets.GenerateBracketParams{
		TournamentID: s.id,
		Competitors:  competitors,
	})
	if err != nil {
		return nil, fmt.Errorf("schedule generation failed using %s: %w", s.league.GetName(), err)
	}

	seeds := make(map[int]int, len(competitors))
	for _, c := range competitors {
		seeds[c.ID] = c.Seed
	}
	if err := s.competitorRepo.AssignSeeds(seeds); err != nil {
		return nil, fmt.Errorf("failed to store seeds: %w", err)
	}
	if err := s.matchRepo.BatchCreate(bracketToMatches(generated)); err != nil {
		s.competitorRepo.Reset(models.DefaultRoster())
		return nil, fmt.Errorf("failed to store league schedule: %w", err)
	}
	if _, err := s.recomputeStandingsLocked(); err != nil {
		return nil, err
	}
	s.checkTransitionLocked(ctx, models.TournamentDraw)

	s.logger.InfoContext(ctx, "Draw completed",
		slog.String("tournament_id", s.id),
		slog.Int("league_matches", len(generated)))

	seeded := s.competitorRepo.ListAll()
	s.notifier.NotifyDeferred(s.id, brackets.EventDrawCompleted, StandingsPayload{
		TournamentID: s.id,
		Standings:    seeded,
	})
	return seeded, nil
}

// GetSchedule returns the league matches in schedule order.
func (s *TournamentService) GetSchedule(ctx context.Context) []models.Match {
	leaguePhase := models.PhaseLeague
	return s.matchService.ListMatches(ctx, &leaguePhase)
}

// GetRounds returns the league schedule grouped by round.
func (s *TournamentService) GetRounds(ctx context.Context) []ScheduleRound {
	var rounds []ScheduleRound
	for _, m := range s.GetSchedule(ctx) {
		if len(rounds) == 0 || rounds[len(rounds)-1].Round != m.Round {
			rounds = append(rounds, ScheduleRound{Round: m.Round})
		}
		last := &rounds[len(rounds)-1]
		last.Matches = append(last.Matches, m)
	}
	if rounds == nil {
		return []ScheduleRound{}
	}
	return rounds
}

func (s *TournamentService) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	return s.matchService.GetMatch(ctx, matchID)
}

func (s *TournamentService) GetStandings(ctx context.Context) []models.Competitor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.standingsLocked()
}

func (s *TournamentService) standingsLocked() []models.Competitor {
	table := s.competitorRepo.ListAll()
	SortStandings(table)
	return table
}

func (s *TournamentService) recomputeStandingsLocked() ([]models.Competitor, error) {
	leaguePhase := models.PhaseLeague
	table := ComputeStandings(s.competitorRepo.ListAll(), s.matchRepo.ListByPhase(&leaguePhase))
	if err := s.competitorRepo.UpdateStats(table); err != nil {
		return nil, fmt.Errorf("failed to store standings: %w", err)
	}
	return table, nil
}

// RecordResult stores a match result and runs the follow-up for the match's phase: standings
// for league matches, final creation for semifinals, crowning for the final.
func (s *TournamentService) RecordResult(ctx context.Context, matchID string, input ScoreInput) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.phaseLocked(ctx)
	match, err := s.matchService.RecordResult(ctx, matchID, input)
	if err != nil {
		s.logger.WarnContext(ctx, "Result rejected",
			slog.String("tournament_id", s.id),
			slog.String("match_id", matchID),
			slog.Any("error", err))
		return nil, err
	}

	s.logger.InfoContext(ctx, "Match result recorded",
		slog.String("tournament_id", s.id),
		slog.String("match_id", match.ID),
		slog.String("phase", string(match.Phase)),
		slog.Int("score1", derefInt(match.Score1)),
		slog.Int("score2", derefInt(match.Score2)),
		slog.Int("winner_id", derefInt(match.WinnerID)))
	s.notifier.Notify(s.id, brackets.EventMatchUpdated, MatchUpdatedPayload{TournamentID: s.id, Match: *match})

	switch match.Phase {
	case models.PhaseLeague:
		if err := s.afterLeagueResultLocked(ctx); err != nil {
			return match, err
		}
	case models.PhaseSemifinal:
		if err := s.afterSemifinalResultLocked(ctx); err != nil {
			return match, err
		}
	case models.PhaseFinal:
		s.afterFinalResultLocked(ctx)
	}

	s.checkTransitionLocked(ctx, before)
	return match, nil
}

func (s *TournamentService) afterLeagueResultLocked(ctx context.Context) error {
	standings, err := s.recomputeStandingsLocked()
	if err != nil {
		return err
	}
	s.notifier.Notify(s.id, brackets.EventStandingsUpdated, StandingsPayload{TournamentID: s.id, Standings: standings})

	leaguePhase := models.PhaseLeague
	if !leagueComplete(s.matchRepo.ListByPhase(&leaguePhase)) {
		return nil
	}
	qualifiers := standings
	if len(qualifiers) > brackets.PlayoffSize {
		qualifiers = qualifiers[:brackets.PlayoffSize]
	}
	s.logger.InfoContext(ctx, "League completed", slog.String("tournament_id", s.id))
	s.notifier.NotifyDeferred(s.id, brackets.EventLeagueCompleted, LeagueCompletedPayload{
		TournamentID: s.id,
		Qualifiers:   qualifiers,
		Message:      "League completed, the top four advance to the playoffs",
	})
	return nil
}

func (s *TournamentService) afterSemifinalResultLocked(ctx context.Context) error {
	final, created, err := s.bracketManager.EnsureFinal(ctx, s.id)
	if err != nil {
		return fmt.Errorf("failed to create final: %w", err)
	}
	if !created {
		return nil
	}
	s.logger.InfoContext(ctx, "Final created",
		slog.String("tournament_id", s.id),
		slog.String("match_id", final.ID),
		slog.Int("player1_id", final.Player1ID),
		slog.Int("player2_id", final.Player2ID))
	s.notifier.NotifyDeferred(s.id, brackets.EventFinalCreated, BracketPayload{
		TournamentID: s.id,
		Bracket:      s.bracketManager.GetBracket(ctx),
	})
	return nil
}

func (s *TournamentService) afterFinalResultLocked(ctx context.Context) {
	champion := s.championLocked(ctx)
	if champion == nil {
		return
	}
	s.logger.InfoContext(ctx, "Champion crowned",
		slog.String("tournament_id", s.id),
		slog.Int("winner_id", champion.ID),
		slog.String("winner_name", champion.Name))
	s.notifier.NotifyDeferred(s.id, brackets.EventChampionCrowned, ChampionPayload{
		TournamentID: s.id,
		Champion:     champion,
		Message:      fmt.Sprintf("%s is the champion", champion.Name),
	})
}

func (s *TournamentService) checkTransitionLocked(ctx context.Context, before models.TournamentPhase) {
	after := s.phaseLocked(ctx)
	if !isValidPhaseTransition(before, after) {
		s.logger.ErrorContext(ctx, "Unexpected phase transition",
			slog.String("tournament_id", s.id),
			slog.String("from", string(before)),
			slog.String("to", string(after)))
		return
	}
	if before != after {
		s.logger.InfoContext(ctx, "Phase changed",
			slog.String("tournament_id", s.id),
			slog.String("from", string(before)),
			slog.String("to", string(after)))
	}
}

// AdvanceToPlayoffs seeds the semifinals from the top four of the standings.
func (s *TournamentService) AdvanceToPlayoffs(ctx context.Context) (models.Bracket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.phaseLocked(ctx)
	if before != models.TournamentLeague {
		return models.Bracket{}, fmt.Errorf("%w: playoffs can only start from the league (phase %s)", ErrPhasePreconditionNotMet, before)
	}

	bracket, err := s.bracketManager.SeedPlayoffs(ctx, s.id, s.standingsLocked())
	if err != nil {
		return models.Bracket{}, err
	}
	s.checkTransitionLocked(ctx, before)

	s.notifier.Notify(s.id, brackets.EventPlayoffsStarted, BracketPayload{TournamentID: s.id, Bracket: bracket})
	return bracket, nil
}

func (s *TournamentService) GetBracket(ctx context.Context) models.Bracket {
	return s.bracketManager.GetBracket(ctx)
}

// GetChampion returns nil until the final is completed.
func (s *TournamentService) GetChampion(ctx context.Context) *models.Competitor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.championLocked(ctx)
}

func (s *TournamentService) championLocked(ctx context.Context) *models.Competitor {
	id := s.bracketManager.ChampionID(ctx)
	if id == nil {
		return nil
	}
	return findCompetitor(s.competitorRepo.ListAll(), *id)
}

// GetFinalRanking returns the full ranking once a champion exists. Before that it returns the
// standings together with ErrTournamentIncomplete.
func (s *TournamentService) GetFinalRanking(ctx context.Context) ([]models.Competitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FinalRanking(s.standingsLocked(), s.bracketManager.GetBracket(ctx), s.bracketManager.ChampionID(ctx))
}

func (s *TournamentService) Snapshot(ctx context.Context) models.Tournament {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(ctx)
}

func (s *TournamentService) snapshotLocked(ctx context.Context) models.Tournament {
	competitors := s.competitorRepo.ListAll()
	drawCompleted := len(competitors) > 0
	for _, c := range competitors {
		if !c.IsSeeded() {
			drawCompleted = false
			break
		}
	}
	leaguePhase := models.PhaseLeague
	return models.Tournament{
		ID:            s.id,
		Phase:         s.phaseLocked(ctx),
		DrawCompleted: drawCompleted,
		Competitors:   competitors,
		LeagueMatches: s.matchService.ListMatches(ctx, &leaguePhase),
		Standings:     s.standingsLocked(),
		Bracket:       s.bracketManager.GetBracket(ctx),
		Champion:      s.championLocked(ctx),
		CreatedAt:     s.createdAt,
	}
}

// IsIncomplete reports whether err only signals that the ranking is provisional.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrTournamentIncomplete)
}
