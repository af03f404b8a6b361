package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in       string
		expected slog.Level
	}{
		{in: "debug", expected: slog.LevelDebug},
		{in: " DEBUG ", expected: slog.LevelDebug},
		{in: "info", expected: slog.LevelInfo},
		{in: "warn", expected: slog.LevelWarn},
		{in: "warning", expected: slog.LevelWarn},
		{in: "error", expected: slog.LevelError},
		{in: "", expected: slog.LevelInfo},
		{in: "loud", expected: slog.LevelInfo},
	}

	for _, test := range testCases {
		t.Run(test.in, func(t *testing.T) {
			require.Equal(t, test.expected, ParseLevel(test.in))
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn)

	log.Info("hidden")
	log.Warn("zone missing", "zone", "side", "err", errors.New("boom"))

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "zone missing")
	require.Contains(t, out, "zone=side")
	require.Contains(t, out, "err=boom")
	require.NotContains(t, out, "\x1b[", "no colours outside a terminal")
}
