package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"nonsense", LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLogLevel(tt.input))
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestDefaultLogger_FiltersBelowLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewDefaultLogger(LevelWarn, buf)

	logger.Debug("deleted %d", 1)
	logger.Info("timed %s", "quick-find")
	logger.Warn("slow trial")
	logger.Error("validation failed")

	out := buf.String()
	assert.NotContains(t, out, "deleted")
	assert.NotContains(t, out, "timed")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "slow trial")
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "validation failed")
}

func TestDefaultLogger_SetLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewDefaultLogger(LevelInfo, buf)

	logger.Debug("hidden")
	logger.SetLevel(LevelDebug)
	logger.Debug("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestDefaultLogger_OneLinePerCall(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewDefaultLogger(LevelInfo, buf)

	logger.Info("%-28s n=%d", "array-parent-2pass", 1024)
	logger.Info("%-28s n=%d", "quick-find", 1024)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, "INFO")
		assert.Contains(t, line, "n=1024")
	}
}

func TestNullLogger_Discards(t *testing.T) {
	var logger Logger = &NullLogger{}
	logger.Debug("a")
	logger.Info("b")
	logger.Warn("c")
	logger.Error("d")
}
