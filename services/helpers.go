package services

import (
	"github.com/Dosada05/tournament-engine/brackets"
	"github.com/Dosada05/tournament-engine/models"
)

// --- Общие хелперы ---

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func isValidPhaseTransition(current, next models.TournamentPhase) bool {
	if current == next {
		return true
	}
	allowedTransitions := map[models.TournamentPhase][]models.TournamentPhase{
		models.TournamentDraw:       {models.TournamentLeague},
		models.TournamentLeague:     {models.TournamentSemifinals},
		models.TournamentSemifinals: {models.TournamentFinal},
		models.TournamentFinal:      {models.TournamentCrowned},
		models.TournamentCrowned:    {},
	}
	for _, allowedNextPhase := range allowedTransitions[current] {
		if next == allowedNextPhase {
			return true
		}
	}
	return false
}

// derivePhase reads the phase off the ledger so it can never drift from the matches.
func derivePhase(league []models.Match, bracket models.Bracket) models.TournamentPhase {
	switch {
	case bracket.Final != nil && bracket.Final.Completed:
		return models.TournamentCrowned
	case bracket.Final != nil:
		return models.TournamentFinal
	case len(bracket.Semifinals) > 0:
		return models.TournamentSemifinals
	case len(league) > 0:
		return models.TournamentLeague
	default:
		return models.TournamentDraw
	}
}

func leagueComplete(league []models.Match) bool {
	if len(league) != brackets.LeagueMatchCount() {
		return false
	}
	for _, m := range league {
		if !m.Completed {
			return false
		}
	}
	return true
}

func openMatches(matches []models.Match) []models.Match {
	open := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if !m.Completed {
			open = append(open, m)
		}
	}
	return open
}

func findCompetitor(competitors []models.Competitor, id int) *models.Competitor {
	for i := range competitors {
		if competitors[i].ID == id {
			c := competitors[i]
			return &c
		}
	}
	return nil
}

func competitorPointers(competitors []models.Competitor) []*models.Competitor {
	out := make([]*models.Competitor, len(competitors))
	for i := range competitors {
		out[i] = &competitors[i]
	}
	return out
}

func bracketToMatches(generated []*brackets.BracketMatch) []models.Match {
	out := make([]models.Match, 0, len(generated))
	for _, bm := range generated {
		out = append(out, bm.ToMatch())
	}
	return out
}
