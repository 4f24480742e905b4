// Package report renders a scored participant table as CSV, a fixed-width
// text table, and a horizontal bar chart. Reporters reproduce the table's
// values and order faithfully; they never recompute or reorder.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/reposcore/reposcore/internal/domain"
)

var columns = []string{"name", "feat/bug PR", "document PR", "feat/bug issue", "document issue", "total", "rate"}

// WriteCSV writes the scored table as CSV with a header row.
func WriteCSV(w io.Writer, scores []domain.ParticipantScore) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, s := range scores {
		row := []string{
			s.Name,
			strconv.Itoa(s.FeatBugPR),
			strconv.Itoa(s.DocumentPR),
			strconv.Itoa(s.FeatBugIssue),
			strconv.Itoa(s.DocumentIssue),
			strconv.Itoa(s.Total),
			strconv.FormatFloat(s.Rate, 'f', 1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", s.Name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
