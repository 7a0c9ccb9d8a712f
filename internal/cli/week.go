package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/runnerr0/lookback/internal/analyze"
	"github.com/runnerr0/lookback/internal/stats"
)

// Execute implements the go-flags Commander interface for WeekCommand.
func (c *WeekCommand) Execute(args []string) error {
	p, err := buildPipeline(c.globals)
	if err != nil {
		return err
	}

	service := stats.NewService(p.source, p.categorizer, p.log)
	return c.executeWithService(context.Background(), service)
}

// executeWithService runs the summary against a provided service (for testing).
func (c *WeekCommand) executeWithService(ctx context.Context, service *stats.Service) error {
	summary := service.WeeklySummary(ctx)

	if c.globals != nil && c.globals.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	return c.printHuman(summary)
}

func (c *WeekCommand) printHuman(summary stats.WeeklySummary) error {
	fmt.Printf("Weekly Browsing Summary (%s)\n", summary.Period)
	fmt.Println("=======================================")

	if summary.Error != "" {
		fmt.Printf("Error: %s\n", summary.Error)
		return nil
	}

	fmt.Printf("Total time:     %s (estimated)\n", analyze.FormatDuration(summary.TotalTime))
	fmt.Printf("Total visits:   %d\n", summary.TotalVisits)
	fmt.Printf("Daily average:  %s\n", analyze.FormatDuration(int64(summary.AvgDailyTime)))
	fmt.Printf("Days with data: %d of 7\n", summary.DaysWithData)

	if summary.TopCategory != nil {
		fmt.Printf("Top category:   %s (%s, %d%%)\n",
			summary.TopCategory.Name, analyze.FormatDuration(summary.TopCategory.Time), summary.TopCategory.Percentage)
	}

	if len(summary.Categories) > 0 {
		fmt.Println()
		fmt.Println("Categories:")

		names := make([]string, 0, len(summary.Categories))
		for name := range summary.Categories {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			a, b := summary.Categories[names[i]], summary.Categories[names[j]]
			if a.Time != b.Time {
				return a.Time > b.Time
			}
			return names[i] < names[j]
		})

		for _, name := range names {
			cat := summary.Categories[name]
			fmt.Printf("  %-16s %s (%d visits)\n", name, analyze.FormatDuration(cat.Time), cat.Visits)
		}
	}

	return nil
}
