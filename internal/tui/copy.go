package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/hashgait/internal/clipboard"
)

// copier tracks which value was copied last. Each copy bumps seq, so a
// reset scheduled by an older copy cannot clear a newer indicator.
type copier struct {
	clip   clipboard.Writer
	reset  time.Duration
	logger *slog.Logger
	seq    int
	copied string
}

type copyResetMsg struct{ seq int }

type copyResultMsg struct {
	id  string
	err error
}

func newCopier(e *env) copier {
	return copier{clip: e.clip, reset: e.cfg.Timing.CopiedReset, logger: e.logger}
}

// copy writes text to the clipboard and marks id as copied until the
// reset delay passes.
func (c *copier) copy(sc *scope, id, text string) tea.Cmd {
	c.seq++
	c.copied = id
	clip := c.clip
	return tea.Batch(
		func() tea.Msg { return copyResultMsg{id: id, err: clip.WriteText(text)} },
		sc.after(c.reset, copyResetMsg{seq: c.seq}),
	)
}

// update consumes copier messages. ok is false for anything else.
func (c *copier) update(msg tea.Msg) (cmd tea.Cmd, ok bool) {
	switch msg := msg.(type) {
	case copyResetMsg:
		if msg.seq == c.seq {
			c.copied = ""
		}
		return nil, true
	case copyResultMsg:
		if msg.err == nil {
			return nil, true
		}
		c.logger.Warn("clipboard write failed", "item", msg.id, "error", msg.err)
		if c.copied == msg.id {
			c.copied = ""
		}
		return notify(slog.LevelWarn, "Copy failed: clipboard unavailable"), true
	}
	return nil, false
}

func (c *copier) isCopied(id string) bool {
	return id != "" && c.copied == id
}
