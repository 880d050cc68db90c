package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlog(slog.New(handler))

	t.Run("debug", func(t *testing.T) {
		buf.Reset()
		logger.Debug("assignment started", "subjects", 4)
		require.Contains(t, buf.String(), "level=DEBUG")
		require.Contains(t, buf.String(), "assignment started")
		require.Contains(t, buf.String(), "subjects=4")
	})

	t.Run("info", func(t *testing.T) {
		buf.Reset()
		logger.Info("assignment complete")
		require.Contains(t, buf.String(), "level=INFO")
	})

	t.Run("warn", func(t *testing.T) {
		buf.Reset()
		logger.Warn("capacity tight")
		require.Contains(t, buf.String(), "level=WARN")
	})

	t.Run("error", func(t *testing.T) {
		buf.Reset()
		logger.Error("assignment failed", "error", "boom")
		require.Contains(t, buf.String(), "level=ERROR")
		require.Contains(t, buf.String(), "error=boom")
	})
}

func TestNopLogger(t *testing.T) {
	logger := NewNop()

	// Must not panic, including Fatal, which does not exit for the nop logger.
	logger.Debug("msg")
	logger.Info("msg")
	logger.Warn("msg")
	logger.Error("msg", "key", "value")
	logger.Fatal("msg")
}
