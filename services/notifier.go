package services

import (
	"log/slog"
	"sync"
	"time"

	"github.com/Dosada05/tournament-engine/brackets"
	"github.com/Dosada05/tournament-engine/models"
)

// Broadcaster is the part of the websocket hub the engine needs.
type Broadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

// Payloads of the pushed events.
type MatchUpdatedPayload struct {
	TournamentID string       `json:"tournament_id"`
	Match        models.Match `json:"match"`
}

type StandingsPayload struct {
	TournamentID string              `json:"tournament_id"`
	Standings    []models.Competitor `json:"standings"`
}

type LeagueCompletedPayload struct {
	TournamentID string              `json:"tournament_id"`
	Qualifiers   []models.Competitor `json:"qualifiers"`
	Message      string              `json:"message"`
}

type BracketPayload struct {
	TournamentID string         `json:"tournament_id"`
	Bracket      models.Bracket `json:"bracket"`
}

type ChampionPayload struct {
	TournamentID string             `json:"tournament_id"`
	Champion     *models.Competitor `json:"champion"`
	Message      string             `json:"message"`
}

// EventNotifier pushes engine events into the tournament's room. Result events go out at once;
// phase events wait for the configured delay.
type EventNotifier struct {
	broadcaster Broadcaster
	delay       time.Duration
	logger      *slog.Logger

	mu      sync.Mutex
	pending map[*time.Timer]struct{}
}

func NewEventNotifier(broadcaster Broadcaster, delay time.Duration, logger *slog.Logger) *EventNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventNotifier{
		broadcaster: broadcaster,
		delay:       delay,
		logger:      logger,
		pending:     make(map[*time.Timer]struct{}),
	}
}

func (n *EventNotifier) Notify(tournamentID, eventType string, payload interface{}) {
	if n == nil || n.broadcaster == nil {
		return
	}
	roomID := brackets.RoomName(tournamentID)
	n.broadcaster.BroadcastToRoom(roomID, brackets.WebSocketMessage{
		Type:    eventType,
		Payload: payload,
		RoomID:  roomID,
	})
	n.logger.Debug("Event broadcast", slog.String("event", eventType), slog.String("room", roomID))
}

func (n *EventNotifier) NotifyDeferred(tournamentID, eventType string, payload interface{}) {
	if n == nil || n.broadcaster == nil {
		return
	}
	if n.delay <= 0 {
		n.Notify(tournamentID, eventType, payload)
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	var timer *time.Timer
	timer = time.AfterFunc(n.delay, func() {
		n.mu.Lock()
		delete(n.pending, timer)
		n.mu.Unlock()
		n.Notify(tournamentID, eventType, payload)
	})
	n.pending[timer] = struct{}{}
}

// Stop cancels every event that has not been sent yet.
func (n *EventNotifier) Stop() {
	if n == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	for timer := range n.pending {
		timer.Stop()
		delete(n.pending, timer)
	}
}
