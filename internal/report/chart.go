package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/reposcore/reposcore/internal/domain"
)

// WriteChart renders the scored table as a horizontal bar chart in HTML.
// Bars are ordered by total descending from the top; each bar carries its
// numeric total at the end, and the participant count sits in the subtitle.
func WriteChart(w io.Writer, scores []domain.ParticipantScore) error {
	// The category axis renders bottom-up, so feed participants in
	// reverse to keep the highest total on top.
	names := make([]string, 0, len(scores))
	data := make([]opts.BarData, 0, len(scores))
	for i := len(scores) - 1; i >= 0; i-- {
		names = append(names, scores[i].Name)
		data = append(data, opts.BarData{Value: scores[i].Total})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Repository Participation Scores",
			Subtitle: fmt.Sprintf("Total Participants: %d", len(scores)),
		}),
	)
	bar.SetXAxis(names)
	bar.AddSeries("total", data)
	bar.SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "right",
		}),
	)
	bar.XYReversal()

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
