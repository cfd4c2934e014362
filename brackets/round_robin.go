package brackets

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Dosada05/tournament-engine/models"
)

// MatchesPerRound groups the league schedule into rounds; with seven entrants each round
// touches six competitors and one sits out.
const MatchesPerRound = 3

var (
	ErrSeedsNotAssigned = errors.New("competitors must hold unique seeds 1..7 before scheduling")
	ErrInvalidSchedule  = errors.New("league schedule table is inconsistent")
)

// SeedPairing is one league fixture expressed in seed numbers.
type SeedPairing struct {
	Seed1 int
	Seed2 int
}

// leagueTable is the fixed single round-robin order for seven seeds. Keyed by seed, never
// by competitor, so a new draw changes who meets whom but not the pattern.
var leagueTable = [...]SeedPairing{
	{2, 7}, {3, 6}, {4, 5},
	{1, 7}, {2, 5}, {3, 4},
	{1, 6}, {7, 5}, {2, 3},
	{1, 5}, {6, 4}, {7, 3},
	{1, 4}, {5, 3}, {6, 2},
	{1, 3}, {4, 2}, {6, 7},
	{1, 2}, {4, 7}, {5, 6},
}

// LeagueTable returns a copy of the fixed pairing table.
func LeagueTable() []SeedPairing {
	out := make([]SeedPairing, len(leagueTable))
	copy(out, leagueTable[:])
	return out
}

// LeagueMatchCount is C(7,2).
func LeagueMatchCount() int {
	return len(leagueTable)
}

// RoundOf returns the 1-based round of the i-th (0-based) fixture.
func RoundOf(index int) int {
	return index/MatchesPerRound + 1
}

// ValidateLeagueTable checks that the table covers every unordered pair of 1..entrants exactly
// once and that no seed plays twice inside the same round.
func ValidateLeagueTable(table []SeedPairing, entrants, perRound int) error {
	expected := entrants * (entrants - 1) / 2
	if len(table) != expected {
		return fmt.Errorf("%w: %d fixtures, want %d", ErrInvalidSchedule, len(table), expected)
	}

	seen := make(map[[2]int]bool, len(table))
	for i := 0; i < len(table); i += perRound {
		inRound := make(map[int]bool, perRound*2)
		end := min(i+perRound, len(table))
		for j, p := range table[i:end] {
			if p.Seed1 == p.Seed2 || p.Seed1 < 1 || p.Seed2 < 1 || p.Seed1 > entrants || p.Seed2 > entrants {
				return fmt.Errorf("%w: fixture %d has invalid seeds %d-%d", ErrInvalidSchedule, i+j+1, p.Seed1, p.Seed2)
			}
			key := [2]int{min(p.Seed1, p.Seed2), max(p.Seed1, p.Seed2)}
			if seen[key] {
				return fmt.Errorf("%w: pair %d-%d scheduled twice", ErrInvalidSchedule, key[0], key[1])
			}
			seen[key] = true

			if inRound[p.Seed1] || inRound[p.Seed2] {
				return fmt.Errorf("%w: round %d uses a seed twice (fixture %d)", ErrInvalidSchedule, RoundOf(i), i+j+1)
			}
			inRound[p.Seed1] = true
			inRound[p.Seed2] = true
		}
	}
	return nil
}

type LeagueGenerator struct{}

func NewLeagueGenerator() BracketGenerator {
	return &LeagueGenerator{}
}

func (g *LeagueGenerator) GetName() string {
	return "RoundRobin"
}

// GenerateBracket maps the fixed seed table onto the seeded competitors. Matches come back in
// table order with IDs match_1..match_21.
func (g *LeagueGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]*BracketMatch, error) {
	if err := ValidateLeagueTable(leagueTable[:], models.RosterSize, MatchesPerRound); err != nil {
		return nil, err
	}
	if len(params.Competitors) != models.RosterSize {
		return nil, fmt.Errorf("%w: got %d", ErrRosterSize, len(params.Competitors))
	}

	bySeed := make(map[int]int, len(params.Competitors))
	for _, c := range params.Competitors {
		if c.Seed < 1 || c.Seed > models.RosterSize {
			return nil, fmt.Errorf("%w: competitor %d has seed %d", ErrSeedsNotAssigned, c.ID, c.Seed)
		}
		if _, dup := bySeed[c.Seed]; dup {
			return nil, fmt.Errorf("%w: seed %d assigned twice", ErrSeedsNotAssigned, c.Seed)
		}
		bySeed[c.Seed] = c.ID
	}

	matches := make([]*BracketMatch, 0, len(leagueTable))
	for i, p := range leagueTable {
		matches = append(matches, &BracketMatch{
			UID:            fmt.Sprintf("match_%d", i+1),
			Phase:          models.PhaseLeague,
			Round:          RoundOf(i),
			OrderInRound:   i%MatchesPerRound + 1,
			Participant1ID: bySeed[p.Seed1],
			Participant2ID: bySeed[p.Seed2],
		})
	}

	// Already in table order; kept sorted explicitly like the other generators.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Round != matches[j].Round {
			return matches[i].Round < matches[j].Round
		}
		return matches[i].OrderInRound < matches[j].OrderInRound
	})

	return matches, nil
}
