package services

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/Dosada05/tournament-engine/brackets"
	"github.com/Dosada05/tournament-engine/models"
	"github.com/Dosada05/tournament-engine/repositories"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTournament(t *testing.T) *TournamentService {
	t.Helper()
	return NewTournamentService(
		repositories.NewMemoryCompetitorRepository(models.DefaultRoster()),
		repositories.NewMemoryMatchRepository(),
		nil,
		rand.New(rand.NewPCG(7, 11)),
		discardLogger(),
	)
}

func score(a, b int) ScoreInput {
	return ScoreInput{Score1: &a, Score2: &b}
}

func seedsByID(competitors []models.Competitor) map[int]int {
	out := make(map[int]int, len(competitors))
	for _, c := range competitors {
		out[c.ID] = c.Seed
	}
	return out
}

func competitorBySeed(t *testing.T, competitors []models.Competitor, seed int) models.Competitor {
	t.Helper()
	for _, c := range competitors {
		if c.Seed == seed {
			return c
		}
	}
	t.Fatalf("no competitor with seed %d", seed)
	return models.Competitor{}
}

// playLeagueBySeed makes the better seed win every league match: 2-0 when seed 1 plays, 2-1
// otherwise.
func playLeagueBySeed(t *testing.T, ctx context.Context, s *TournamentService) {
	t.Helper()
	seeds := seedsByID(s.GetStandings(ctx))
	for _, m := range s.GetSchedule(ctx) {
		seed1, seed2 := seeds[m.Player1ID], seeds[m.Player2ID]
		winnerSets, loserSets := 2, 1
		if seed1 == 1 || seed2 == 1 {
			loserSets = 0
		}
		input := score(winnerSets, loserSets)
		if seed2 < seed1 {
			input = score(loserSets, winnerSets)
		}
		_, err := s.RecordResult(ctx, m.ID, input)
		require.NoError(t, err, "match %s", m.ID)
	}
}

type recordedEvent struct {
	Room    string
	Message brackets.WebSocketMessage
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *recordingBroadcaster) BroadcastToRoom(roomID string, message interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg, _ := message.(brackets.WebSocketMessage)
	r.events = append(r.events, recordedEvent{Room: roomID, Message: msg})
}

func (r *recordingBroadcaster) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Message.Type)
	}
	return out
}

func (r *recordingBroadcaster) count(eventType string) int {
	n := 0
	for _, typ := range r.types() {
		if typ == eventType {
			n++
		}
	}
	return n
}
