package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/hashgait/internal/clipboard"
	"github.com/jask/hashgait/internal/config"
	"github.com/jask/hashgait/internal/mock"
	"github.com/jask/hashgait/internal/nav"
)

// env is shared by every screen for the life of the App. styles is
// swapped in place when the theme toggles.
type env struct {
	cfg    config.Config
	gen    *mock.Generator
	clip   clipboard.Writer
	logger *slog.Logger
	keys   *keyRegistry
	styles *styles
	now    func() time.Time
}

// screen is one step of the flow. update never blocks; a non-nil event
// asks the App to navigate, which closes this screen's scope before the
// next screen starts.
type screen interface {
	init() tea.Cmd
	update(msg tea.Msg) (tea.Cmd, nav.Event)
	view(width int) string
	scope() *scope
	keyScope() string
}

// lookupKey resolves a key message against the screen's current key scope.
func (e *env) lookupKey(msg tea.KeyMsg, s screen) action {
	if b := e.keys.lookup(msg.String(), s.keyScope()); b != nil {
		return b.action
	}
	return ""
}

// notify shows text in the status bar.
func notify(level slog.Level, text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text, level: level} }
}
