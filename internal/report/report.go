// Package report renders the browsing analysis into a fixed-structure
// markdown document with an embedded chart payload. Given identical inputs
// the output is byte-identical apart from the report date.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/runnerr0/lookback/internal/analyze"
	"github.com/runnerr0/lookback/internal/classify"
)

// Generate produces the full report. question is the free-text context
// carried through from the chat layer; it is reserved and does not affect
// the document. The section order is fixed: chart payload, header,
// summary, category breakdown, video section (when applicable), insights.
func Generate(visits []analyze.AnnotatedVisit, domains []analyze.DomainAggregate, mapping map[string]classify.Category, question string, now time.Time) (string, error) {
	_ = question

	categories := classify.AggregateByCategory(domains, mapping)

	chartJSON, err := json.Marshal(buildChart(categories))
	if err != nil {
		return "", fmt.Errorf("marshal chart payload: %w", err)
	}

	parts := []string{
		"```chart\n" + string(chartJSON) + "\n```",
		formatHeader(now),
		formatSummary(visits, domains, categories),
		formatCategoryBreakdown(categories),
	}

	if video := formatVideoSection(domains, mapping); video != "" {
		parts = append(parts, video)
	}

	parts = append(parts, formatInsights(domains, categories))

	return strings.Join(parts, "\n\n"), nil
}

func formatHeader(now time.Time) string {
	return "# Daily Browsing Review - " + now.Format("January 02, 2006")
}

func formatSummary(visits []analyze.AnnotatedVisit, domains []analyze.DomainAggregate, categories []classify.CategoryAggregate) string {
	var totalDuration int64
	for _, d := range domains {
		totalDuration += d.TotalDurationSeconds
	}

	explored := 0
	for _, c := range categories {
		if c.VisitCount > 0 {
			explored++
		}
	}

	lines := []string{
		"## Summary",
		fmt.Sprintf("- **Total browsing time:** %s (estimated)", analyze.FormatDuration(totalDuration)),
		fmt.Sprintf("- **Pages visited:** %d", len(visits)),
		fmt.Sprintf("- **Unique websites:** %d", len(domains)),
		fmt.Sprintf("- **Categories explored:** %d", explored),
	}
	return strings.Join(lines, "\n")
}

func formatCategoryBreakdown(categories []classify.CategoryAggregate) string {
	if len(categories) == 0 {
		return "## Time by Category\n\nNo categories found."
	}

	var totalDuration int64
	for _, c := range categories {
		totalDuration += c.TotalDurationSeconds
	}

	sorted := make([]classify.CategoryAggregate, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalDurationSeconds > sorted[j].TotalDurationSeconds
	})

	lines := []string{"## Time by Category"}

	for _, cat := range sorted {
		if cat.TotalDurationSeconds == 0 {
			continue
		}

		percentage := 0
		if totalDuration > 0 {
			percentage = int(cat.TotalDurationSeconds * 100 / totalDuration)
		}

		lines = append(lines, fmt.Sprintf("\n### %s (%s - %d%%)",
			cat.Category.DisplayName(), analyze.FormatDuration(cat.TotalDurationSeconds), percentage))

		top := cat.Domains
		if len(top) > 5 {
			top = top[:5]
		}
		for _, d := range top {
			visitWord := "visits"
			if d.VisitCount == 1 {
				visitWord = "visit"
			}
			lines = append(lines, fmt.Sprintf("- **%s:** %s (%d %s)",
				d.Domain, analyze.FormatDuration(d.DurationSeconds), d.VisitCount, visitWord))
		}
	}

	return strings.Join(lines, "\n")
}

// videoTitleSuffixes are platform suffixes stripped from video titles.
var videoTitleSuffixes = []string{" - YouTube", " - Vimeo"}

func formatVideoSection(domains []analyze.DomainAggregate, mapping map[string]classify.Category) string {
	var videoDomains []analyze.DomainAggregate
	for _, d := range domains {
		if mapping[d.Domain] == classify.CategoryVideo {
			videoDomains = append(videoDomains, d)
		}
	}
	if len(videoDomains) == 0 {
		return ""
	}

	lines := []string{"## Videos Watched"}

	for _, d := range videoDomains {
		if len(d.Titles) == 0 {
			continue
		}

		lines = append(lines, fmt.Sprintf("\n### %s", d.Domain))
		lines = append(lines, fmt.Sprintf("Time spent: %s", analyze.FormatDuration(d.TotalDurationSeconds)))
		lines = append(lines, "\nVideos/content:")

		titles := d.Titles
		if len(titles) > 10 {
			titles = titles[:10]
		}
		for _, title := range titles {
			clean := title
			for _, suffix := range videoTitleSuffixes {
				clean = strings.ReplaceAll(clean, suffix, "")
			}
			clean = strings.TrimSpace(clean)
			if clean != "" {
				lines = append(lines, "- "+clean)
			}
		}
	}

	return strings.Join(lines, "\n")
}

func formatInsights(domains []analyze.DomainAggregate, categories []classify.CategoryAggregate) string {
	lines := []string{"## Insights"}

	if len(domains) > 0 {
		mostVisited := domains[0]
		for _, d := range domains[1:] {
			if d.VisitCount > mostVisited.VisitCount {
				mostVisited = d
			}
		}
		lines = append(lines, fmt.Sprintf("- **Most visited:** %s (%d visits)",
			mostVisited.Domain, mostVisited.VisitCount))

		mostTime := domains[0]
		for _, d := range domains[1:] {
			if d.TotalDurationSeconds > mostTime.TotalDurationSeconds {
				mostTime = d
			}
		}
		if mostTime.TotalDurationSeconds > 0 {
			lines = append(lines, fmt.Sprintf("- **Most time spent:** %s (%s)",
				mostTime.Domain, analyze.FormatDuration(mostTime.TotalDurationSeconds)))
		}
	}

	if len(categories) > 0 {
		dominant := categories[0]
		for _, c := range categories[1:] {
			if c.TotalDurationSeconds > dominant.TotalDurationSeconds {
				dominant = c
			}
		}
		if dominant.TotalDurationSeconds > 0 {
			lines = append(lines, fmt.Sprintf("- **Primary focus:** %s (%s)",
				dominant.Category.DisplayName(), analyze.FormatDuration(dominant.TotalDurationSeconds)))
		}
	}

	if len(domains) > 0 {
		var totalDuration int64
		var totalVisits int64
		for _, d := range domains {
			totalDuration += d.TotalDurationSeconds
			totalVisits += int64(d.VisitCount)
		}
		var avg int64
		if totalVisits > 0 {
			avg = totalDuration / totalVisits
		}
		lines = append(lines, fmt.Sprintf("- **Average time per page:** %s", analyze.FormatDuration(avg)))
	}

	lines = append(lines, "\n*Note: Time estimates are calculated from visit sequences and may not reflect exact browsing time.*")

	return strings.Join(lines, "\n")
}
