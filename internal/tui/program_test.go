package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/hashgait/internal/clipboard"
	"github.com/jask/hashgait/internal/mock"
	"github.com/jask/hashgait/internal/nav"
)

// watchedApp reports the screen after every update and every notice it
// receives, so a test can follow a real program without touching its state.
type watchedApp struct {
	*App
	screens chan nav.Screen
	notices chan string
}

func (w *watchedApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if n, ok := msg.(noticeMsg); ok {
		select {
		case w.notices <- n.text:
		default:
		}
	}
	_, cmd := w.App.Update(msg)
	select {
	case w.screens <- w.App.Screen():
	default:
	}
	return w, cmd
}

func within[T any](t *testing.T, ch <-chan T, what string, ok func(T) bool) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case v := <-ch:
			if ok(v) {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s", what)
		}
	}
}

// deliver sends msg to p and fails if the event loop never takes it.
func deliver(t *testing.T, p *tea.Program, msg tea.Msg) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		p.Send(msg)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("program stopped reading messages; %T not delivered", msg)
	}
}

func TestProgramKeepsRunningWhileScreensLog(t *testing.T) {
	tests := []struct {
		name    string
		level   slog.Level
		clipErr error
		notice  string
	}{
		{name: "debug navigation", level: slog.LevelDebug, notice: "navigate"},
		{name: "clipboard failure at warn", level: slog.LevelWarn, clipErr: io.ErrClosedPipe, notice: "clipboard write failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			h := NewLogHandler(tt.level)
			app := New(ctx, Options{
				Config:    testConfig(),
				Clipboard: &clipboard.Recorder{Err: tt.clipErr},
				Logger:    slog.New(h),
				Generator: mock.New(false, 1),
				Dark:      true,
				Now:       func() time.Time { return fixedNow },
			})
			w := &watchedApp{App: app, screens: make(chan nav.Screen, 4096), notices: make(chan string, 256)}
			p := tea.NewProgram(w, tea.WithInput(nil), tea.WithoutRenderer(), tea.WithContext(ctx))
			h.SetProgram(p)

			finished := make(chan tea.Model, 1)
			go func() {
				m, _ := p.Run()
				finished <- m
			}()

			deliver(t, p, press("enter"))
			within(t, w.screens, "result screen", func(s nav.Screen) bool { return s == nav.Result })
			if tt.clipErr != nil {
				deliver(t, p, press("c"))
			}
			within(t, w.notices, "log notice", func(text string) bool { return strings.Contains(text, tt.notice) })

			deliver(t, p, tea.Quit())
			select {
			case m := <-finished:
				require.NotNil(t, m)
				assert.Equal(t, nav.Result, m.(*watchedApp).Screen())
			case <-time.After(5 * time.Second):
				t.Fatal("program did not exit after quit")
			}
		})
	}
}
