package services

import "github.com/Dosada05/tournament-engine/models"

// FinalRanking places the champion first, the runner-up second, then the semifinal losers
// (loser of the first semifinal before the loser of the second) and finally everyone else in
// standings order. Without a champion it returns the standings unchanged together with
// ErrTournamentIncomplete.
func FinalRanking(standings []models.Competitor, bracket models.Bracket, championID *int) ([]models.Competitor, error) {
	if championID == nil {
		out := make([]models.Competitor, len(standings))
		copy(out, standings)
		return out, ErrTournamentIncomplete
	}

	byID := make(map[int]models.Competitor, len(standings))
	for _, c := range standings {
		byID[c.ID] = c
	}

	ranking := make([]models.Competitor, 0, len(standings))
	placed := make(map[int]struct{}, len(standings))
	place := func(id int) {
		if _, done := placed[id]; done {
			return
		}
		c, ok := byID[id]
		if !ok {
			return
		}
		placed[id] = struct{}{}
		ranking = append(ranking, c)
	}

	place(*championID)
	if bracket.Final != nil {
		if runnerUp, ok := bracket.Final.LoserID(); ok {
			place(runnerUp)
		}
	}
	for _, sf := range bracket.Semifinals {
		place(sf.Player1ID)
		place(sf.Player2ID)
	}
	for _, c := range standings {
		place(c.ID)
	}

	return ranking, nil
}
