package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/hashgait/internal/nav"
	"github.com/jask/hashgait/internal/widgets"
)

const (
	fieldUsername = iota
	fieldPassword
)

// loginDoneMsg ends the simulated sign-in delay.
type loginDoneMsg struct{ username string }

type loginScreen struct {
	env     *env
	sc      *scope
	inputs  [2]textinput.Model
	focus   int
	reveal  bool
	loading bool
	spin    spinner.Model
}

func newLoginScreen(e *env, sc *scope) *loginScreen {
	user := textinput.New()
	user.Prompt = ""
	user.Placeholder = "Enter your username"
	user.CharLimit = 64

	pass := textinput.New()
	pass.Prompt = ""
	pass.Placeholder = "Enter your password"
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	pass.CharLimit = 128

	return &loginScreen{
		env:    e,
		sc:     sc,
		inputs: [2]textinput.Model{user, pass},
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (s *loginScreen) scope() *scope { return s.sc }

func (s *loginScreen) keyScope() string { return scopeLogin }

func (s *loginScreen) init() tea.Cmd {
	return s.inputs[s.focus].Focus()
}

func (s *loginScreen) update(msg tea.Msg) (tea.Cmd, nav.Event) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.loading {
			return nil, nil
		}
		switch s.env.lookupKey(msg, s) {
		case actionSubmit:
			return s.submit(), nil
		case actionField:
			return s.setFocus(1 - s.focus), nil
		case actionReveal:
			s.reveal = !s.reveal
			if s.reveal {
				s.inputs[fieldPassword].EchoMode = textinput.EchoNormal
			} else {
				s.inputs[fieldPassword].EchoMode = textinput.EchoPassword
			}
			return nil, nil
		}
	case loginDoneMsg:
		s.loading = false
		name := strings.TrimSpace(msg.username)
		if name == "" {
			name = s.env.cfg.UI.DefaultUsername
		}
		s.env.logger.Info("signed in", "user", name)
		return nil, nav.LoggedIn{Session: nav.NewSession(name, s.env.now())}
	case spinner.TickMsg:
		if !s.loading {
			return nil, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return cmd, nil
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd, nil
}

// submit accepts any credentials after the configured delay.
func (s *loginScreen) submit() tea.Cmd {
	s.loading = true
	s.inputs[s.focus].Blur()
	s.env.logger.Debug("sign in requested", "delay", s.env.cfg.Timing.LoginDelay)
	return tea.Batch(
		s.spin.Tick,
		s.sc.after(s.env.cfg.Timing.LoginDelay, loginDoneMsg{username: s.inputs[fieldUsername].Value()}),
	)
}

func (s *loginScreen) setFocus(i int) tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = i
	return s.inputs[s.focus].Focus()
}

func (s *loginScreen) view(width int) string {
	st := s.env.styles
	inner := max(8, width-4)
	field := func(i int, label string) string {
		s.inputs[i].Width = inner - 4
		border := st.theme.Border
		if i == s.focus && !s.loading {
			border = st.theme.Focus
		}
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Width(inner - 2).
			Render(s.inputs[i].View())
		return st.label.Render(label) + "\n" + box
	}

	passLabel := "Password"
	if s.reveal {
		passLabel += st.faint.Render("  (visible)")
	}

	var button string
	if s.loading {
		button = s.spin.View() + " " + st.accent.Render("Authenticating...")
	} else {
		button = st.accent.Render("[ Sign In ]")
	}

	body := widgets.VStack{Widgets: []widgets.Widget{
		widgets.Text(lipgloss.PlaceHorizontal(inner, lipgloss.Center, st.brand.Render("◆ HashGait"))),
		widgets.Text(lipgloss.PlaceHorizontal(inner, lipgloss.Center, st.subtle.Render("Secure Banking Portal"))),
		widgets.Text(""),
		widgets.Text(field(fieldUsername, "Username")),
		widgets.Text(field(fieldPassword, passLabel)),
		widgets.Text(""),
		widgets.Text(lipgloss.PlaceHorizontal(inner, lipgloss.Center, button)),
		widgets.Text(lipgloss.PlaceHorizontal(inner, lipgloss.Center, st.faint.Render("Any username/password works (mock login)"))),
		widgets.Text(""),
		widgets.Text(lipgloss.PlaceHorizontal(inner, lipgloss.Center, st.faint.Render("Protected by gait biometric authentication"))),
	}}.Render(inner)

	return widgets.Card{Body: body, Border: st.theme.Border}.Render(width)
}
