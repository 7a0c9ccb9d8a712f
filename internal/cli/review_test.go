package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/lookback/internal/history"
)

var reviewNow = time.Date(2026, time.March, 7, 21, 0, 0, 0, time.UTC)

func TestReviewPrintsReport(t *testing.T) {
	source := &fakeSource{visits: []history.Visit{
		{URL: "https://github.com/a", Title: "Repo A", Time: reviewNow.Add(-2 * time.Hour)},
		{URL: "https://github.com/b", Title: "Repo B", Time: reviewNow.Add(-1 * time.Hour)},
	}}
	cmd := &ReviewCommand{Hours: 24}

	var err error
	output := captureOutput(t, func() {
		err = cmd.executeWith(context.Background(), source, fakeCategorizer{}, "", reviewNow)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "# Daily Browsing Review - March 07, 2026")
	assert.Contains(t, output, "```chart")
	assert.Contains(t, output, "- **Pages visited:** 2")
	assert.Contains(t, output, "### Development")
	assert.Equal(t, []int{24}, source.hours)
}

func TestReviewHoursDefaultWhenUnset(t *testing.T) {
	source := &fakeSource{}
	cmd := &ReviewCommand{}

	_ = captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(context.Background(), source, fakeCategorizer{}, "", reviewNow))
	})

	assert.Equal(t, []int{24}, source.hours)
}

func TestReviewCustomHoursWindow(t *testing.T) {
	source := &fakeSource{}
	cmd := &ReviewCommand{Hours: 48}

	_ = captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(context.Background(), source, fakeCategorizer{}, "", reviewNow))
	})

	assert.Equal(t, []int{48}, source.hours)
}

// Missing or locked history explains itself on stdout instead of failing.
func TestReviewFriendlyHistoryErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not found", fmt.Errorf("%w at /tmp/History", history.ErrHistoryNotFound)},
		{"locked", fmt.Errorf("%w: permission denied", history.ErrHistoryLocked)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &fakeSource{err: tt.err}
			cmd := &ReviewCommand{Hours: 24}

			var err error
			output := captureOutput(t, func() {
				err = cmd.executeWith(context.Background(), source, fakeCategorizer{}, "", reviewNow)
			})

			assert.NoError(t, err)
			assert.Contains(t, output, tt.err.Error())
			assert.NotContains(t, output, "# Daily Browsing Review")
		})
	}
}

func TestReviewOtherErrorsPropagate(t *testing.T) {
	source := &fakeSource{err: errors.New("disk exploded")}
	cmd := &ReviewCommand{Hours: 24}

	err := cmd.executeWith(context.Background(), source, fakeCategorizer{}, "", reviewNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk exploded")
}

func TestReviewEmptyHistoryStillRenders(t *testing.T) {
	source := &fakeSource{}
	cmd := &ReviewCommand{Hours: 24}

	var err error
	output := captureOutput(t, func() {
		err = cmd.executeWith(context.Background(), source, fakeCategorizer{}, "", reviewNow)
	})

	require.NoError(t, err)
	assert.Contains(t, output, "- **Total browsing time:** 0s (estimated)")
	assert.Contains(t, output, "No categories found.")
}
