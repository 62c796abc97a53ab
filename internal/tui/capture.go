package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/hashgait/internal/nav"
	"github.com/jask/hashgait/internal/widgets"
)

const (
	animFrameInterval = 150 * time.Millisecond
	walkDots          = 5
	sensorLines       = 6
)

type captureTickMsg struct{}

// captureSettledMsg fires once the countdown has rested at zero.
type captureSettledMsg struct{}

type animFrameMsg struct{}

// captureScreen counts down a simulated gait recording. Exactly one of
// CaptureCompleted or CaptureCancelled leaves this screen.
type captureScreen struct {
	env       *env
	sc        *scope
	total     int
	remaining int
	frame     int
	done      bool
	bar       progress.Model
}

func newCaptureScreen(e *env, sc *scope) *captureScreen {
	return &captureScreen{
		env:       e,
		sc:        sc,
		total:     e.cfg.Timing.CaptureSeconds,
		remaining: e.cfg.Timing.CaptureSeconds,
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

func (s *captureScreen) scope() *scope { return s.sc }

func (s *captureScreen) keyScope() string { return scopeCapture }

func (s *captureScreen) init() tea.Cmd {
	s.env.logger.Debug("capture started", "seconds", s.total)
	return tea.Batch(
		s.sc.after(s.env.cfg.Timing.CaptureTick, captureTickMsg{}),
		s.sc.after(animFrameInterval, animFrameMsg{}),
	)
}

func (s *captureScreen) capturing() bool {
	return !s.done && s.remaining > 0
}

func (s *captureScreen) update(msg tea.Msg) (tea.Cmd, nav.Event) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.env.lookupKey(msg, s) == actionCancel && !s.done {
			s.done = true
			s.sc.close()
			s.env.logger.Info("capture cancelled", "remaining", s.remaining)
			return nil, nav.CaptureCancelled{}
		}
	case captureTickMsg:
		if !s.capturing() {
			return nil, nil
		}
		s.remaining--
		if s.remaining == 0 {
			return s.sc.after(s.env.cfg.Timing.CaptureSettle, captureSettledMsg{}), nil
		}
		return s.sc.after(s.env.cfg.Timing.CaptureTick, captureTickMsg{}), nil
	case captureSettledMsg:
		if s.done {
			return nil, nil
		}
		s.done = true
		s.env.logger.Info("capture complete")
		return nil, nav.CaptureCompleted{}
	case animFrameMsg:
		if !s.capturing() {
			return nil, nil
		}
		s.frame++
		return s.sc.after(animFrameInterval, animFrameMsg{}), nil
	}
	return nil, nil
}

func (s *captureScreen) progress() float64 {
	if s.total <= 0 {
		return 1
	}
	return float64(s.total-s.remaining) / float64(s.total)
}

func (s *captureScreen) view(width int) string {
	st := s.env.styles
	inner := max(8, width-4)
	center := func(str string) widgets.Widget {
		return widgets.Text(lipgloss.PlaceHorizontal(inner, lipgloss.Center, str))
	}

	status := st.accent.Render(fmt.Sprintf("Recording... %ds", s.remaining))
	hint := "Walk naturally while holding your device"
	if !s.capturing() {
		status = st.success.Render("Processing gait signature...")
		hint = "Hold still"
	}

	s.bar.Width = inner
	body := widgets.VStack{Widgets: []widgets.Widget{
		center(st.title.Render("Gait Authentication")),
		center(st.subtle.Render(hint)),
		widgets.Text(""),
		center(s.walker()),
		widgets.Text(""),
		center(st.brand.Render(fmt.Sprintf("%d", s.remaining))),
		widgets.Text(""),
		widgets.Text(s.sensorTrace(inner)),
		center(st.faint.Render("Analyzing touch, motion, behavior...")),
		widgets.Text(""),
		widgets.Text(s.bar.ViewAs(s.progress())),
		center(status),
	}}.Render(inner)

	return widgets.Card{Body: body, Border: st.theme.Accent}.Render(width)
}

// walker is a row of dots with one lifted per frame.
func (s *captureScreen) walker() string {
	st := s.env.styles
	top := make([]string, walkDots)
	bottom := make([]string, walkDots)
	lifted := s.frame % walkDots
	for i := range walkDots {
		if i == lifted && s.capturing() {
			top[i], bottom[i] = st.accent.Render("●"), " "
		} else {
			top[i], bottom[i] = " ", st.subtle.Render("●")
		}
	}
	return strings.Join(top, " ") + "\n" + strings.Join(bottom, " ")
}

// sensorTrace draws scrolling pseudo-signal lines, one per sensor axis.
func (s *captureScreen) sensorTrace(width int) string {
	st := s.env.styles
	glyphs := []rune("▁▂▃▄▅▆▇█▇▆▅▄▃▂")
	lines := make([]string, sensorLines)
	for l := range lines {
		var b strings.Builder
		for x := range width {
			if !s.capturing() {
				b.WriteRune('─')
				continue
			}
			b.WriteRune(glyphs[(x+s.frame*(l+1)+l*3)%len(glyphs)])
		}
		style := st.faint
		if l%2 == 0 {
			style = st.code
		}
		lines[l] = style.Render(b.String())
	}
	return strings.Join(lines, "\n")
}
