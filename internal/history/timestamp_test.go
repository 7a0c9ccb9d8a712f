package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromWebkitMicros(t *testing.T) {
	now := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)

	// 2021-01-01 00:00:00 UTC is 1609459200 unix seconds.
	v := (11_644_473_600 + 1_609_459_200) * int64(1_000_000)
	got := fromWebkitMicros(v, now)
	assert.Equal(t, time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC), got.UTC())
}

func TestFromWebkitMicros_MalformedFallsBackToNow(t *testing.T) {
	now := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		v    int64
	}{
		{"zero", 0},
		{"negative", -5},
		{"before unix epoch", 123456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, now, fromWebkitMicros(tt.v, now))
		})
	}
}

func TestWebkitMicrosRoundtrip(t *testing.T) {
	now := time.Now()
	orig := time.Date(2024, time.July, 15, 9, 30, 45, 123456000, time.UTC)

	back := fromWebkitMicros(toWebkitMicros(orig), now)
	assert.True(t, orig.Equal(back), "got %v want %v", back, orig)
}
