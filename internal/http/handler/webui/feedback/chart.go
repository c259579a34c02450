package feedback

import (
	"strconv"

	"github.com/bornholm/feedback/internal/store/repository/review"
)

var ratingColors = map[int]string{
	1: "#B60303",
	2: "#DC6D23",
	3: "#FCC604",
	4: "#7BD65C",
	5: "#005F21",
}

// The donut circle has a circumference of 100 so percentages map directly
// to dash lengths. Segments start at the top of the circle.
const (
	chartCircumference = 100.0
	chartStartOffset   = 25.0
)

type ChartSegment struct {
	Label      string
	Color      string
	Count      int64
	Percent    float64
	DashArray  string
	DashOffset string
}

type LegendEntry struct {
	Label string
	Color string
	Count int64
}

// chartSegments returns one donut segment per rating with at least one review
func chartSegments(distribution review.Distribution) []ChartSegment {
	total := distribution.Total()
	if total == 0 {
		return nil
	}

	segments := make([]ChartSegment, 0, len(distribution))
	var cumulated float64

	for _, rc := range distribution {
		if rc.Count == 0 {
			continue
		}

		percent := float64(rc.Count) / float64(total) * chartCircumference

		segments = append(segments, ChartSegment{
			Label:      rc.Label,
			Color:      ratingColors[rc.Rating],
			Count:      rc.Count,
			Percent:    percent,
			DashArray:  formatFloat(percent) + " " + formatFloat(chartCircumference-percent),
			DashOffset: formatFloat(chartStartOffset - cumulated),
		})

		cumulated += percent
	}

	return segments
}

func legendEntries(distribution review.Distribution) []LegendEntry {
	entries := make([]LegendEntry, 0, len(distribution))
	for _, rc := range distribution {
		entries = append(entries, LegendEntry{
			Label: rc.Label,
			Color: ratingColors[rc.Rating],
			Count: rc.Count,
		})
	}
	return entries
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
