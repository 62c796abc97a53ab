package tui

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func record(level slog.Level, msg string, args ...any) slog.Record {
	r := slog.NewRecord(time.Now(), level, msg, 0)
	r.Add(args...)
	return r
}

func TestLogHandlerEnabled(t *testing.T) {
	h := NewLogHandler(slog.LevelWarn)
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestLogHandlerSummary(t *testing.T) {
	h := NewLogHandler(slog.LevelDebug)
	assert.Equal(t, "plain", h.summary(record(slog.LevelInfo, "plain")))

	derived := h.WithAttrs([]slog.Attr{slog.String("screen", "result")}).(*LogHandler)
	got := derived.summary(record(slog.LevelWarn, "clipboard write failed", "error", "no tty"))
	assert.Equal(t, "clipboard write failed (screen=result, error=no tty)", got)

	grouped := derived.WithGroup("copy").(*LogHandler)
	got = grouped.summary(record(slog.LevelWarn, "failed", "item", "hash"))
	assert.Equal(t, "failed (screen=result, copy.item=hash)", got)
}

func TestLogHandlerDropsWithoutProgram(t *testing.T) {
	h := NewLogHandler(slog.LevelDebug)
	assert.NoError(t, h.Handle(context.Background(), record(slog.LevelError, "boom")))
}

func TestLogHandlerSharesProgram(t *testing.T) {
	h := NewLogHandler(slog.LevelDebug)
	derived := h.WithGroup("g").(*LogHandler)
	assert.Same(t, h.program, derived.program)
	assert.Same(t, h, h.WithGroup(""))
}
