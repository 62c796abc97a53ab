package tui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// noticeMsg puts a one-line message in the status bar until it fades.
type noticeMsg struct {
	text  string
	level slog.Level
}

// LogHandler is a slog.Handler that shows records in the running program's
// status bar. Records logged before SetProgram are dropped, as are records
// below the configured level.
//
// Handlers derived with WithAttrs and WithGroup share the program pointer,
// so one SetProgram call reaches all of them.
//
// Screens log from inside Update, where a blocking program.Send would wait
// on the event loop that is making the call. Delivery therefore happens on
// its own goroutine, and notices may arrive out of order.
type LogHandler struct {
	level   slog.Leveler
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
	prefix  string
}

func NewLogHandler(level slog.Leveler) *LogHandler {
	return &LogHandler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram enables delivery. Safe to call from any goroutine.
func (h *LogHandler) SetProgram(program *tea.Program) {
	h.program.Store(program)
}

func (h *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *LogHandler) Handle(_ context.Context, record slog.Record) error {
	program := h.program.Load()
	if program == nil {
		return nil
	}
	msg := noticeMsg{text: h.summary(record), level: record.Level}
	go program.Send(msg)
	return nil
}

// summary renders "message (key=value, ...)".
func (h *LogHandler) summary(record slog.Record) string {
	parts := make([]string, 0, len(h.attrs)+record.NumAttrs())
	for _, attr := range h.attrs {
		parts = append(parts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
	}
	record.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, fmt.Sprintf("%s%s=%s", h.prefix, attr.Key, attr.Value))
		return true
	})
	if len(parts) == 0 {
		return record.Message
	}
	return record.Message + " (" + strings.Join(parts, ", ") + ")"
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := *h
	derived.attrs = slices.Clone(h.attrs)
	for _, attr := range attrs {
		attr.Key = h.prefix + attr.Key
		derived.attrs = append(derived.attrs, attr)
	}
	return &derived
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	derived := *h
	derived.attrs = slices.Clone(h.attrs)
	derived.prefix = h.prefix + name + "."
	return &derived
}
