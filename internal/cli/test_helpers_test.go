package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runnerr0/lookback/internal/analyze"
	"github.com/runnerr0/lookback/internal/classify"
	"github.com/runnerr0/lookback/internal/history"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// fakeSource replays canned visits or a canned error.
type fakeSource struct {
	visits []history.Visit
	err    error
	hours  []int
}

func (f *fakeSource) Read(_ context.Context, hours int) ([]history.Visit, error) {
	f.hours = append(f.hours, hours)
	if f.err != nil {
		return nil, f.err
	}
	return f.visits, nil
}

// fakeCategorizer maps every domain through the offline heuristics.
type fakeCategorizer struct{}

func (fakeCategorizer) Categorize(_ context.Context, domains []analyze.DomainAggregate) map[string]classify.Category {
	mapping := make(map[string]classify.Category, len(domains))
	for _, d := range domains {
		mapping[d.Domain] = classify.HeuristicCategory(d.Domain, d.Titles)
	}
	return mapping
}
