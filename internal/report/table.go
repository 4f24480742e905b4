package report

import (
	"fmt"
	"io"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"

	"github.com/reposcore/reposcore/internal/domain"
)

// WriteTable writes the scored table as a fixed-width text table, followed
// by a one-line summary of the score distribution.
func WriteTable(w io.Writer, scores []domain.ParticipantScore) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(columns)
	table.SetAutoFormatHeaders(false)
	for _, s := range scores {
		table.Append([]string{
			s.Name,
			fmt.Sprintf("%d", s.FeatBugPR),
			fmt.Sprintf("%d", s.DocumentPR),
			fmt.Sprintf("%d", s.FeatBugIssue),
			fmt.Sprintf("%d", s.DocumentIssue),
			fmt.Sprintf("%d", s.Total),
			fmt.Sprintf("%.1f%%", s.Rate),
		})
	}
	table.Render()

	if len(scores) == 0 {
		return nil
	}

	totals := make(stats.Float64Data, 0, len(scores))
	for _, s := range scores {
		totals = append(totals, float64(s.Total))
	}
	mean, err := stats.Mean(totals)
	if err != nil {
		return fmt.Errorf("failed to compute mean total: %w", err)
	}
	median, err := stats.Median(totals)
	if err != nil {
		return fmt.Errorf("failed to compute median total: %w", err)
	}
	if _, err := fmt.Fprintf(w, "participants: %d  mean: %.1f  median: %.1f\n", len(scores), mean, median); err != nil {
		return fmt.Errorf("failed to write summary line: %w", err)
	}
	return nil
}
