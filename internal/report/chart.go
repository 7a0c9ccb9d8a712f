package report

import (
	"math"
	"sort"

	"github.com/runnerr0/lookback/internal/classify"
)

// ChartPayload is the machine-readable block consumed by the downstream
// renderer. Field order matches the wire contract.
type ChartPayload struct {
	Type       string      `json:"type"`
	Title      string      `json:"title"`
	Data       []ChartItem `json:"data"`
	XAxis      string      `json:"xAxis"`
	YAxis      string      `json:"yAxis"`
	YAxisLabel string      `json:"yAxisLabel"`
}

// ChartItem is one bar in the category chart.
type ChartItem struct {
	Category string  `json:"category"`
	Minutes  float64 `json:"minutes"`
	Hours    float64 `json:"hours"`
	Visits   int     `json:"visits"`
}

// buildChart prepares the bar-chart payload: categories sorted descending
// by duration, zero-duration categories excluded.
func buildChart(categories []classify.CategoryAggregate) ChartPayload {
	sorted := make([]classify.CategoryAggregate, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalDurationSeconds > sorted[j].TotalDurationSeconds
	})

	items := make([]ChartItem, 0, len(sorted))
	for _, cat := range sorted {
		if cat.TotalDurationSeconds <= 0 {
			continue
		}
		minutes := float64(cat.TotalDurationSeconds) / 60
		items = append(items, ChartItem{
			Category: cat.Category.DisplayName(),
			Minutes:  math.Round(minutes*10) / 10,
			Hours:    math.Round(minutes/60*100) / 100,
			Visits:   cat.VisitCount,
		})
	}

	return ChartPayload{
		Type:       "bar",
		Title:      "Time Spent by Category",
		Data:       items,
		XAxis:      "category",
		YAxis:      "minutes",
		YAxisLabel: "Time (minutes)",
	}
}
