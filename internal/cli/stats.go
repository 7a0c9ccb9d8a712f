package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/runnerr0/lookback/internal/analyze"
	"github.com/runnerr0/lookback/internal/stats"
)

// Execute implements the go-flags Commander interface for StatsCommand.
func (c *StatsCommand) Execute(args []string) error {
	p, err := buildPipeline(c.globals)
	if err != nil {
		return err
	}

	service := stats.NewService(p.source, p.categorizer, p.log)
	return c.executeWithService(context.Background(), service)
}

// executeWithService runs the listing against a provided service (for testing).
func (c *StatsCommand) executeWithService(ctx context.Context, service *stats.Service) error {
	days := c.Days
	if days <= 0 {
		days = 7
	}

	daily := service.DailyStats(ctx, days)

	if c.globals != nil && c.globals.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(daily)
	}

	return c.printHuman(daily)
}

func (c *StatsCommand) printHuman(daily []stats.DailyStat) error {
	fmt.Println("Daily Browsing Stats")
	fmt.Println("====================")

	for _, day := range daily {
		fmt.Printf("%s (%s)\n", day.Date, day.DayName)

		if day.Error != "" {
			fmt.Printf("  error: %s\n", day.Error)
			continue
		}
		if day.TotalVisits == 0 {
			fmt.Println("  no browsing data")
			continue
		}

		fmt.Printf("  Time:       %s (estimated)\n", analyze.FormatDuration(day.TotalTime))
		fmt.Printf("  Pages:      %d\n", day.TotalVisits)
		fmt.Printf("  Sites:      %d\n", day.UniqueSites)
		if day.TopCategory != nil {
			fmt.Printf("  Top:        %s (%s, %d%%)\n",
				day.TopCategory.Name, analyze.FormatDuration(day.TopCategory.Time), day.TopCategory.Percentage)
		}
	}

	return nil
}
