package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/hashgait/internal/mock"
	"github.com/jask/hashgait/internal/nav"
	"github.com/jask/hashgait/internal/widgets"
)

const copyIDResultHash = "result-hash"

type resultScreen struct {
	env     *env
	sc      *scope
	verdict mock.Verdict
	copy    copier
}

func newResultScreen(e *env, sc *scope) *resultScreen {
	v := e.gen.Verdict()
	e.logger.Info("gait verified", "confidence", v.Confidence, "risk", v.Risk)
	return &resultScreen{env: e, sc: sc, verdict: v, copy: newCopier(e)}
}

func (s *resultScreen) scope() *scope { return s.sc }

func (s *resultScreen) keyScope() string { return scopeResult }

func (s *resultScreen) init() tea.Cmd { return nil }

func (s *resultScreen) update(msg tea.Msg) (tea.Cmd, nav.Event) {
	if cmd, ok := s.copy.update(msg); ok {
		return cmd, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}
	switch s.env.lookupKey(key, s) {
	case actionCopy:
		return s.copy.copy(s.sc, copyIDResultHash, s.verdict.Hash), nil
	case actionContinue:
		return nil, nav.Continued{}
	case actionRetry:
		return nil, nav.Retried{}
	}
	return nil, nil
}

func (s *resultScreen) view(width int) string {
	st := s.env.styles
	inner := max(8, width-4)
	center := func(str string) widgets.Widget {
		return widgets.Text(lipgloss.PlaceHorizontal(inner, lipgloss.Center, str))
	}

	copyLabel := st.faint.Render("press c to copy")
	if s.copy.isCopied(copyIDResultHash) {
		copyLabel = st.success.Render("✓ Copied")
	}
	hashCard := widgets.Card{
		Title:      "Authentication Hash",
		TitleStyle: st.label,
		Body:       st.code.Render(wrapHash(s.verdict.Hash, inner-4)) + "\n" + copyLabel,
		Border:     st.theme.Border,
	}

	tile := func(value, label string) widgets.Widget {
		return widgets.Text(st.accent.Render(value) + "\n" + st.faint.Render(label))
	}
	tiles := widgets.HStack{
		Widgets: []widgets.Widget{
			tile(fmt.Sprintf("%d%%", s.verdict.Confidence), "Confidence"),
			tile(s.verdict.Risk, "Risk Level"),
			tile("256-bit", "Encryption"),
			tile("< 2ms", "Response"),
		},
		Gap: 1,
	}

	body := widgets.VStack{Widgets: []widgets.Widget{
		center(st.success.Render("✓ Authentication Verified")),
		center(st.subtle.Render("Your gait pattern has been verified")),
		widgets.Text(""),
		center(widgets.Badge("Verified", st.theme.Success)),
		widgets.Text(""),
		hashCard,
		widgets.Text(""),
		tiles,
		widgets.Text(""),
		center(st.accent.Render("[ Continue to Banking ]")),
		center(st.faint.Render("r to re-authenticate")),
	}}.Render(inner)

	return widgets.Card{Body: body, Border: st.theme.Success}.Render(width)
}

// wrapHash breaks a hash into lines of at most width characters.
func wrapHash(hash string, width int) string {
	if width <= 0 || len(hash) <= width {
		return hash
	}
	var out string
	for len(hash) > width {
		out += hash[:width] + "\n"
		hash = hash[width:]
	}
	return out + hash
}
