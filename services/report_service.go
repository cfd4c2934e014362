package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Dosada05/tournament-engine/models"
	"github.com/Dosada05/tournament-engine/storage"
)

const reportContentType = "text/plain; charset=utf-8"

// ReportKey is the object key a tournament's report is published under.
func ReportKey(tournamentID string) string {
	return "reports/" + tournamentID + ".txt"
}

type ReportService interface {
	BuildReport(ctx context.Context) string
	PublishReport(ctx context.Context) (*storage.UploadResult, error)
}

type reportService struct {
	tournaments *TournamentService
	uploader    storage.FileUploader
	now         func() time.Time
}

// NewReportService builds reports from the live tournament. uploader may be nil, in which case
// PublishReport fails with ErrReportPublishingDisabled.
func NewReportService(tournaments *TournamentService, uploader storage.FileUploader) ReportService {
	return &reportService{
		tournaments: tournaments,
		uploader:    uploader,
		now:         time.Now,
	}
}

func (s *reportService) BuildReport(ctx context.Context) string {
	snapshot := s.tournaments.Snapshot(ctx)
	ranking, rankingErr := s.tournaments.GetFinalRanking(ctx)
	return renderReport(snapshot, ranking, IsIncomplete(rankingErr), s.now().UTC())
}

func (s *reportService) PublishReport(ctx context.Context) (*storage.UploadResult, error) {
	if s.uploader == nil {
		return nil, ErrReportPublishingDisabled
	}
	id := s.tournaments.ID()
	report := s.BuildReport(ctx)

	result, err := s.uploader.Upload(ctx, ReportKey(id), reportContentType, strings.NewReader(report))
	if err != nil {
		return nil, fmt.Errorf("failed to publish report for tournament %s: %w", id, err)
	}
	log.Printf("Report for tournament %s published to %s", id, result.Location)
	return result, nil
}

func renderReport(t models.Tournament, ranking []models.Competitor, provisional bool, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "TOURNAMENT REPORT\n")
	fmt.Fprintf(&b, "Tournament: %s\n", t.ID)
	fmt.Fprintf(&b, "Generated:  %s\n", generatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Phase:      %s\n\n", t.Phase)

	fmt.Fprintf(&b, "COMPETITORS\n")
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Seed\tName\tCountry\tStyle\tW-L\tSets\tDiff\tPts")
	for _, c := range t.Standings {
		seed := "-"
		if c.IsSeeded() {
			seed = fmt.Sprintf("%d", c.Seed)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d-%d\t%d-%d\t%+d\t%d\n",
			seed, c.Name, c.Country, c.Style, c.MatchesWon, c.MatchesLost, c.SetsWon, c.SetsLost, c.SetDifference(), c.Points)
	}
	tw.Flush()
	b.WriteString("\n")

	if t.Champion != nil {
		fmt.Fprintf(&b, "CHAMPION: %s\n\n", t.Champion.Name)
	} else {
		fmt.Fprintf(&b, "CHAMPION: not decided yet\n\n")
	}

	if provisional {
		fmt.Fprintf(&b, "RANKING (provisional, by standings)\n")
	} else {
		fmt.Fprintf(&b, "FINAL RANKING\n")
	}
	for i, c := range ranking {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c.Name)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "HIGHLIGHTS\n")
	writeHighlights(&b, t)

	return b.String()
}

func writeHighlights(b *strings.Builder, t models.Tournament) {
	var mostSets, bestDiff *models.Competitor
	for i := range t.Standings {
		c := &t.Standings[i]
		if c.MatchesPlayed == 0 {
			continue
		}
		if mostSets == nil || c.SetsWon > mostSets.SetsWon {
			mostSets = c
		}
		if bestDiff == nil || c.SetDifference() > bestDiff.SetDifference() {
			bestDiff = c
		}
	}
	if mostSets == nil {
		fmt.Fprintf(b, "No matches played yet.\n")
		return
	}
	fmt.Fprintf(b, "Most sets won:       %s (%d)\n", mostSets.Name, mostSets.SetsWon)
	fmt.Fprintf(b, "Best set difference: %s (%+d)\n", bestDiff.Name, bestDiff.SetDifference())

	names := make(map[int]string, len(t.Competitors))
	for _, c := range t.Competitors {
		names[c.ID] = c.Name
	}

	all := make([]models.Match, 0, len(t.LeagueMatches)+3)
	all = append(all, t.LeagueMatches...)
	all = append(all, t.Bracket.Semifinals...)
	if t.Bracket.Final != nil {
		all = append(all, *t.Bracket.Final)
	}

	var closest *models.Match
	closestMargin := 0
	for i := range all {
		m := &all[i]
		if !m.Completed || m.Score1 == nil || m.Score2 == nil {
			continue
		}
		margin := *m.Score1 - *m.Score2
		if margin < 0 {
			margin = -margin
		}
		if closest == nil || margin < closestMargin {
			closest, closestMargin = m, margin
		}
	}
	if closest != nil {
		fmt.Fprintf(b, "Closest match:       %s %s %d-%d %s\n",
			closest.ID, names[closest.Player1ID], *closest.Score1, *closest.Score2, names[closest.Player2ID])
	}
}
