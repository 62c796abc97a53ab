package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/hashgait/internal/clipboard"
	"github.com/jask/hashgait/internal/config"
	"github.com/jask/hashgait/internal/mock"
	"github.com/jask/hashgait/internal/nav"
	"github.com/jask/hashgait/internal/widgets"
)

const noticeFadeDelay = 5 * time.Second

type noticeFadeMsg struct{ seq int }

// Options configure an App. Zero values fall back to quiet defaults.
type Options struct {
	Config    config.Config
	Clipboard clipboard.Writer
	Logger    *slog.Logger
	Generator *mock.Generator
	Dark      bool
	Now       func() time.Time
}

// App is the root model. It owns the navigator state and exactly one live
// screen; every transition closes the outgoing screen's scope before the
// next screen is built.
type App struct {
	ctx    context.Context
	env    *env
	state  nav.State
	active screen
	help   help.Model

	width  int
	height int

	notice      string
	noticeLevel slog.Level
	noticeSeq   int
	quitting    bool
}

func New(ctx context.Context, opts Options) *App {
	opts.Config.Validate()
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.NewOSC52()
	}
	if opts.Generator == nil {
		opts.Generator = mock.New(opts.Config.Mock.Randomize, opts.Config.Mock.Seed)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	st := newStyles(ThemeFor(opts.Dark))
	a := &App{
		ctx: ctx,
		env: &env{
			cfg:    opts.Config,
			gen:    opts.Generator,
			clip:   opts.Clipboard,
			logger: opts.Logger,
			keys:   newKeyRegistry(),
			styles: &st,
			now:    opts.Now,
		},
		state: nav.Initial(),
		help:  help.New(),
	}
	a.active = a.build(a.state)
	a.applyHelpStyles()
	return a
}

func (a *App) Init() tea.Cmd {
	return a.active.scope().guard(a.active.init())
}

// Screen reports the navigator's current screen.
func (a *App) Screen() nav.Screen { return a.state.Screen }

// Session returns a copy of the current session, if any.
func (a *App) Session() (nav.Session, bool) {
	if a.state.Session == nil {
		return nav.Session{}, false
	}
	return *a.state.Session, true
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		switch a.env.lookupKey(m, a.active) {
		case actionQuit:
			a.quitting = true
			a.active.scope().close()
			return a, tea.Quit
		case actionTheme:
			a.toggleTheme()
			return a, nil
		}
	case scopedMsg:
		if m.from.closed() {
			return a, nil
		}
		if batch, ok := m.msg.(tea.BatchMsg); ok {
			return a, m.from.unwrap(batch)
		}
		msg = m.msg
	}

	switch m := msg.(type) {
	case noticeMsg:
		return a, a.setNotice(m)
	case noticeFadeMsg:
		if m.seq == a.noticeSeq {
			a.notice = ""
		}
		return a, nil
	}

	cmd, ev := a.active.update(msg)
	cmd = a.active.scope().guard(cmd)
	if ev == nil {
		return a, cmd
	}
	return a, tea.Batch(cmd, a.navigate(ev))
}

// navigate applies ev. Events the navigator rejects leave the current
// screen running.
func (a *App) navigate(ev nav.Event) tea.Cmd {
	next := nav.Reduce(a.state, ev)
	if next.Screen == a.state.Screen {
		a.env.logger.Debug("navigation event ignored", "screen", a.state.Screen, "event", ev)
		return nil
	}
	a.active.scope().close()
	a.env.logger.Debug("navigate", "from", a.state.Screen, "to", next.Screen)
	a.state = next
	a.active = a.build(next)
	return a.active.scope().guard(a.active.init())
}

func (a *App) build(s nav.State) screen {
	sc := newScope(a.ctx)
	switch s.Screen {
	case nav.Capture:
		return newCaptureScreen(a.env, sc)
	case nav.Result:
		return newResultScreen(a.env, sc)
	case nav.Banking:
		return newBankingScreen(a.env, sc, s.Session)
	default:
		return newLoginScreen(a.env, sc)
	}
}

func (a *App) setNotice(m noticeMsg) tea.Cmd {
	a.noticeSeq++
	a.notice = strings.ReplaceAll(m.text, "\n", " ")
	a.noticeLevel = m.level
	seq := a.noticeSeq
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg { return noticeFadeMsg{seq: seq} })
}

func (a *App) toggleTheme() {
	next := newStyles(a.env.styles.theme.toggled())
	*a.env.styles = next
	a.applyHelpStyles()
	a.env.logger.Debug("theme changed", "theme", next.theme.Name)
}

func (a *App) applyHelpStyles() {
	st := a.env.styles
	a.help.Styles.ShortKey = st.helpKey
	a.help.Styles.ShortDesc = st.helpDesc
	a.help.Styles.ShortSeparator = st.faint
}

// Theme is the active palette name.
func (a *App) Theme() string { return a.env.styles.theme.Name }

func (a *App) columnWidth() int {
	w := a.env.cfg.UI.Width
	if a.width > 0 && a.width-2 < w {
		w = max(24, a.width-2)
	}
	return w
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	width := a.columnWidth()
	body := a.active.view(width)

	var status string
	switch {
	case a.notice == "":
		a.help.Width = width - 2
		status = a.env.styles.footer.Render(a.help.ShortHelpView(a.env.keys.helpBindings(a.active.keyScope())))
	case a.noticeLevel >= slog.LevelError:
		status = a.env.styles.noticeErr.Render(widgets.PadRight(a.notice, width-2))
	case a.noticeLevel >= slog.LevelWarn:
		status = a.env.styles.noticeWarn.Render(widgets.PadRight(a.notice, width-2))
	default:
		status = a.env.styles.statusBar.Render(widgets.PadRight(a.notice, width-2))
	}

	column := body + "\n\n" + status
	if a.width == 0 || a.height == 0 {
		return column
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, column)
}
