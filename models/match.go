package models

import "time"

type MatchPhase string

const (
	PhaseLeague    MatchPhase = "league"
	PhaseSemifinal MatchPhase = "semifinal"
	PhaseFinal     MatchPhase = "final"
)

// Match is a single pairing in the ledger. Score1/Score2/WinnerID stay nil until the
// result is recorded; all three are written together with Completed.
type Match struct {
	ID          string     `json:"id"`
	Phase       MatchPhase `json:"phase"`
	Round       int        `json:"round,omitempty"` // 1..7 for league matches, 0 for playoffs
	Player1ID   int        `json:"player1_id"`
	Player2ID   int        `json:"player2_id"`
	Score1      *int       `json:"score1,omitempty"`
	Score2      *int       `json:"score2,omitempty"`
	WinnerID    *int       `json:"winner_id,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (m Match) HasCompetitor(id int) bool {
	return m.Player1ID == id || m.Player2ID == id
}

// LoserID returns the competitor that did not win. ok is false until the match is completed.
func (m Match) LoserID() (id int, ok bool) {
	if !m.Completed || m.WinnerID == nil {
		return 0, false
	}
	if *m.WinnerID == m.Player1ID {
		return m.Player2ID, true
	}
	return m.Player1ID, true
}

// Clone returns a deep copy so callers can't reach ledger-owned pointers.
func (m Match) Clone() Match {
	out := m
	out.Score1 = cloneInt(m.Score1)
	out.Score2 = cloneInt(m.Score2)
	out.WinnerID = cloneInt(m.WinnerID)
	if m.CompletedAt != nil {
		t := *m.CompletedAt
		out.CompletedAt = &t
	}
	return out
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
