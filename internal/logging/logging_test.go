package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"error", "ERROR"},
		{"warn", "WARN"},
		{"warning", "WARN"},
		{"INFO", "INFO"},
		{"  info  ", "INFO"},
		{"debug", "DEBUG"},
		{"bogus", "DEBUG"},
		{"", "DEBUG"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levelFromString(tt.in).String(), "level=%q", tt.in)
	}
}

func TestNewWithWriter_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}
