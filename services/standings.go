package services

import (
	"sort"

	"github.com/Dosada05/tournament-engine/models"
)

const pointsPerWin = 3

// ComputeStandings rebuilds every competitor's statistics from the completed league matches and
// returns the competitors in standings order. The input slices are not modified.
func ComputeStandings(competitors []models.Competitor, matches []models.Match) []models.Competitor {
	table := make([]models.Competitor, len(competitors))
	index := make(map[int]int, len(competitors))
	for i, c := range competitors {
		c.ResetStats()
		table[i] = c
		index[c.ID] = i
	}

	for _, m := range matches {
		if m.Phase != models.PhaseLeague || !m.Completed {
			continue
		}
		if m.Score1 == nil || m.Score2 == nil || m.WinnerID == nil {
			continue
		}
		i1, ok1 := index[m.Player1ID]
		i2, ok2 := index[m.Player2ID]
		if !ok1 || !ok2 {
			continue
		}
		p1, p2 := &table[i1], &table[i2]

		p1.MatchesPlayed++
		p2.MatchesPlayed++
		p1.SetsWon += *m.Score1
		p1.SetsLost += *m.Score2
		p2.SetsWon += *m.Score2
		p2.SetsLost += *m.Score1

		switch *m.WinnerID {
		case p1.ID:
			p1.MatchesWon++
			p1.Points += pointsPerWin
			p2.MatchesLost++
		case p2.ID:
			p2.MatchesWon++
			p2.Points += pointsPerWin
			p1.MatchesLost++
		}
	}

	SortStandings(table)
	return table
}

// SortStandings orders by points, set difference, sets won (all descending) and finally seed
// ascending. Seeds are unique after the draw, so the order is total.
func SortStandings(table []models.Competitor) {
	sort.SliceStable(table, func(i, j int) bool {
		return standingLess(table[i], table[j])
	})
}

func standingLess(a, b models.Competitor) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.SetDifference() != b.SetDifference() {
		return a.SetDifference() > b.SetDifference()
	}
	if a.SetsWon != b.SetsWon {
		return a.SetsWon > b.SetsWon
	}
	if a.Seed != b.Seed {
		return a.Seed < b.Seed
	}
	// Only reachable before the draw, when every seed is 0.
	return a.ID < b.ID
}
