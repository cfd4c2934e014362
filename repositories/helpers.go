package repositories

import "github.com/Dosada05/tournament-engine/models"

// cloneMatches copies ledger rows out so callers never share pointers with the store.
func cloneMatches(src []*models.Match) []models.Match {
	out := make([]models.Match, 0, len(src))
	for _, m := range src {
		if m != nil {
			out = append(out, m.Clone())
		}
	}
	return out
}

func cloneCompetitors(src []*models.Competitor) []models.Competitor {
	out := make([]models.Competitor, 0, len(src))
	for _, c := range src {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out
}
