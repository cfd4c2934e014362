package models

import "time"

// TournamentPhase is the progression state of a tournament. Transitions only move forward:
// draw -> league -> semifinals -> final -> crowned.
type TournamentPhase string

const (
	TournamentDraw       TournamentPhase = "draw"
	TournamentLeague     TournamentPhase = "league"
	TournamentSemifinals TournamentPhase = "semifinals"
	TournamentFinal      TournamentPhase = "final"
	TournamentCrowned    TournamentPhase = "crowned"
)

// Bracket holds the playoff matches. Final is nil until both semifinals are completed.
type Bracket struct {
	Semifinals []Match `json:"semifinals"`
	Final      *Match  `json:"final,omitempty"`
}

// Tournament is a read-only snapshot of the engine state handed to collaborators.
type Tournament struct {
	ID            string          `json:"id"`
	Phase         TournamentPhase `json:"phase"`
	DrawCompleted bool            `json:"draw_completed"`
	Competitors   []Competitor    `json:"competitors"`
	LeagueMatches []Match         `json:"league_matches"`
	Standings     []Competitor    `json:"standings"`
	Bracket       Bracket         `json:"bracket"`
	Champion      *Competitor     `json:"champion,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
