package models

// TournamentStanding is one row of the standings table as served to clients.
type TournamentStanding struct {
	Rank            int    `json:"rank"`
	CompetitorID    int    `json:"competitor_id"`
	Name            string `json:"name"`
	Seed            int    `json:"seed"`
	Points          int    `json:"points"`
	GamesPlayed     int    `json:"games_played"`
	Wins            int    `json:"wins"`
	Losses          int    `json:"losses"`
	ScoreFor        int    `json:"score_for"`
	ScoreAgainst    int    `json:"score_against"`
	ScoreDifference int    `json:"score_difference"`

	Competitor *Competitor `json:"competitor,omitempty"`
}

// StandingsTable converts an ordered competitor slice into ranked rows.
func StandingsTable(ordered []Competitor) []TournamentStanding {
	rows := make([]TournamentStanding, 0, len(ordered))
	for i := range ordered {
		c := ordered[i]
		rows = append(rows, TournamentStanding{
			Rank:            i + 1,
			CompetitorID:    c.ID,
			Name:            c.Name,
			Seed:            c.Seed,
			Points:          c.Points,
			GamesPlayed:     c.MatchesPlayed,
			Wins:            c.MatchesWon,
			Losses:          c.MatchesLost,
			ScoreFor:        c.SetsWon,
			ScoreAgainst:    c.SetsLost,
			ScoreDifference: c.SetDifference(),
			Competitor:      &c,
		})
	}
	return rows
}
