package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	old := Logger()
	t.Cleanup(func() { SetLogger(old) })

	handler := NewBufferedLogHandler(&slog.HandlerOptions{Level: slog.LevelDebug})
	SetLogger(slog.New(handler))

	Logger().Debug("detected table", "range", "3-5")
	require.True(t, handler.Contains(`level=DEBUG msg="detected table" range=3-5`), handler.String())

	SetLogger(nil)
	require.Equal(t, slog.DiscardHandler, Logger().Handler())
}

func TestBufferedLogHandler(t *testing.T) {
	handler := NewBufferedLogHandler(&slog.HandlerOptions{Level: slog.LevelInfo})
	log := slog.New(handler).With("file", "README.md").WithGroup("table")

	log.Debug("filtered")
	log.Info("formatted", "lines", 3, "text", "a b")

	require.False(t, handler.Contains("filtered"))
	require.Equal(t, "level=INFO msg=formatted file=README.md table.lines=3 table.text=\"a b\"\n", handler.String())

	handler.Reset()
	require.Empty(t, handler.String())
}
