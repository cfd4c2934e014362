package models

// Competitor is one of the seven entrants. Seed is 0 until the draw assigns 1..7.
// The statistics fields are derived from the match ledger and are overwritten on every
// standings recomputation.
type Competitor struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar,omitempty"`
	Country string `json:"country,omitempty"`
	Style   string `json:"style,omitempty"`
	Seed    int    `json:"seed"`

	MatchesPlayed int `json:"matches_played"`
	MatchesWon    int `json:"matches_won"`
	MatchesLost   int `json:"matches_lost"`
	SetsWon       int `json:"sets_won"`
	SetsLost      int `json:"sets_lost"`
	Points        int `json:"points"`
}

func (c Competitor) SetDifference() int {
	return c.SetsWon - c.SetsLost
}

func (c Competitor) IsSeeded() bool {
	return c.Seed > 0
}

// ResetStats zeroes the derived statistics, keeping identity and seed.
func (c *Competitor) ResetStats() {
	c.MatchesPlayed = 0
	c.MatchesWon = 0
	c.MatchesLost = 0
	c.SetsWon = 0
	c.SetsLost = 0
	c.Points = 0
}
