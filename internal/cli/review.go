package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/runnerr0/lookback/internal/analyze"
	"github.com/runnerr0/lookback/internal/history"
	"github.com/runnerr0/lookback/internal/report"
	"github.com/runnerr0/lookback/internal/stats"
)

// Execute implements the go-flags Commander interface for ReviewCommand.
func (c *ReviewCommand) Execute(args []string) error {
	p, err := buildPipeline(c.globals)
	if err != nil {
		return err
	}

	return c.executeWith(context.Background(), p.source, p.categorizer, strings.Join(args, " "), time.Now())
}

// executeWith runs the review against provided dependencies (for testing).
func (c *ReviewCommand) executeWith(ctx context.Context, source stats.HistorySource, categorizer stats.DomainCategorizer, question string, now time.Time) error {
	hours := c.Hours
	if hours <= 0 {
		hours = 24
	}

	visits, err := source.Read(ctx, hours)
	if err != nil {
		// Missing or locked history is an explanatory message for the
		// user, not a failure of the command itself.
		if errors.Is(err, history.ErrHistoryNotFound) || errors.Is(err, history.ErrHistoryLocked) {
			fmt.Println(err.Error())
			return nil
		}
		return err
	}

	annotated := analyze.EstimateDurations(visits)
	domains := analyze.AggregateByDomain(annotated)
	mapping := categorizer.Categorize(ctx, domains)

	doc, err := report.Generate(annotated, domains, mapping, question, now)
	if err != nil {
		return fmt.Errorf("generating report: %w", err)
	}

	fmt.Println(doc)
	return nil
}
