package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// scope bounds the lifetime of a screen's timers. Closing it stops every
// pending timer started through after, and the App drops any message that
// was produced under a closed scope.
type scope struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func newScope(parent context.Context) *scope {
	ctx, cancel := context.WithCancel(parent)
	return &scope{ctx: ctx, cancel: cancel}
}

// child derives a scope that closes with s or on its own.
func (s *scope) child() *scope {
	return newScope(s.ctx)
}

func (s *scope) close() {
	s.cancel()
}

func (s *scope) closed() bool {
	return s.ctx.Err() != nil
}

// after delivers msg once d has elapsed, or nothing if the scope closes
// first. The timer is released either way.
func (s *scope) after(d time.Duration, msg tea.Msg) tea.Cmd {
	ctx := s.ctx
	return func() tea.Msg {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			if ctx.Err() != nil {
				return nil
			}
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}

// scopedMsg tags a message with the scope that produced it.
type scopedMsg struct {
	from *scope
	msg  tea.Msg
}

// guard tags whatever cmd produces with s.
func (s *scope) guard(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		if msg == nil {
			return nil
		}
		return scopedMsg{from: s, msg: msg}
	}
}

// unwrap re-guards the members of a batch so they stay tagged once the
// runtime fans them out.
func (s *scope) unwrap(batch tea.BatchMsg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(batch))
	for _, cmd := range batch {
		cmds = append(cmds, s.guard(cmd))
	}
	return tea.Batch(cmds...)
}
