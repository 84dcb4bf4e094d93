package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/DevJadhav/intelligent-routing/types"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger(t *testing.T) {
	t.Run("writes structured fields through the handler", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		logger := NewSlog(slog.New(handler))

		logger.Debug("routing decision", "accelerator", 3, "cost", 10)
		logger.Info("accelerator added", "id", 0)
		logger.Warn("pool shrinking")
		logger.Error("commit failed", "reason", "capacity")

		out := buf.String()
		require.Contains(t, out, "routing decision")
		require.Contains(t, out, "accelerator=3")
		require.Contains(t, out, "accelerator added")
		require.Contains(t, out, "pool shrinking")
		require.Contains(t, out, "commit failed")
	})

	t.Run("respects handler level", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
		logger := NewSlog(slog.New(handler))

		logger.Debug("should be filtered")

		require.Empty(t, buf.String())
	})

	t.Run("default logger implements the interface", func(t *testing.T) {
		var _ types.Logger = NewSlogDefault()
	})
}
