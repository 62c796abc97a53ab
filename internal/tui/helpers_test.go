package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/hashgait/internal/clipboard"
	"github.com/jask/hashgait/internal/config"
	"github.com/jask/hashgait/internal/mock"
)

var fixedNow = time.Date(2026, 2, 3, 14, 34, 0, 0, time.Local)

func testConfig() config.Config {
	cfg := config.Defaults()
	cfg.Timing.LoginDelay = time.Millisecond
	cfg.Timing.CaptureSeconds = 3
	cfg.Timing.CaptureTick = time.Millisecond
	cfg.Timing.CaptureSettle = time.Millisecond
	cfg.Timing.SensorInterval = time.Millisecond
	cfg.Timing.CopiedReset = 5 * time.Millisecond
	return cfg
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEnv(t *testing.T) (*env, *clipboard.Recorder) {
	t.Helper()
	rec := &clipboard.Recorder{}
	st := newStyles(ThemeFor(true))
	return &env{
		cfg:    testConfig(),
		gen:    mock.New(false, 1),
		clip:   rec,
		logger: quietLogger(),
		keys:   newKeyRegistry(),
		styles: &st,
		now:    func() time.Time { return fixedNow },
	}, rec
}

func testScope(t *testing.T) *scope {
	t.Helper()
	sc := newScope(context.Background())
	t.Cleanup(sc.close)
	return sc
}

func press(k string) tea.KeyMsg {
	special := map[string]tea.KeyType{
		"enter":     tea.KeyEnter,
		"esc":       tea.KeyEsc,
		"tab":       tea.KeyTab,
		"shift+tab": tea.KeyShiftTab,
		"up":        tea.KeyUp,
		"down":      tea.KeyDown,
		"ctrl+c":    tea.KeyCtrlC,
		"ctrl+l":    tea.KeyCtrlL,
		"ctrl+r":    tea.KeyCtrlR,
		"ctrl+s":    tea.KeyCtrlS,
		"ctrl+t":    tea.KeyCtrlT,
		"ctrl+y":    tea.KeyCtrlY,
	}
	if kt, ok := special[k]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func typeText(s string) []tea.KeyMsg {
	out := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

// drain runs cmd and any batch members once, returning the messages in
// completion order of a sequential walk.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// findMsg returns the first message of type T.
func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// driver feeds an App the way the bubbletea runtime does: commands run on
// their own goroutines and their messages are applied one at a time.
type driver struct {
	t    *testing.T
	app  *App
	msgs chan tea.Msg
}

func newDriver(t *testing.T, app *App) *driver {
	d := &driver{t: t, app: app, msgs: make(chan tea.Msg, 4096)}
	d.exec(app.Init())
	return d
}

func (d *driver) exec(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() { d.msgs <- cmd() }()
}

func (d *driver) send(msg tea.Msg) {
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			d.exec(c)
		}
		return
	}
	_, cmd := d.app.Update(msg)
	d.exec(cmd)
}

func (d *driver) press(keys ...string) {
	for _, k := range keys {
		d.send(press(k))
	}
}

// waitFor pumps messages until cond holds or the timeout passes.
func (d *driver) waitFor(cond func() bool) bool {
	d.t.Helper()
	deadline := time.After(5 * time.Second)
	for !cond() {
		select {
		case m := <-d.msgs:
			if m != nil {
				d.send(m)
			}
		case <-deadline:
			return false
		}
	}
	return true
}

func newTestApp(t *testing.T) (*App, *clipboard.Recorder) {
	t.Helper()
	rec := &clipboard.Recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	app := New(ctx, Options{
		Config:    testConfig(),
		Clipboard: rec,
		Logger:    quietLogger(),
		Generator: mock.New(false, 1),
		Dark:      true,
		Now:       func() time.Time { return fixedNow },
	})
	return app, rec
}
