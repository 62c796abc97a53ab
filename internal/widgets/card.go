package widgets

import (
	"github.com/charmbracelet/lipgloss"
)

// Card is a rounded box with an optional title line.
type Card struct {
	Title      string
	Body       string
	Border     lipgloss.TerminalColor
	TitleStyle lipgloss.Style
}

func (c Card) Render(width int) string {
	if width <= 4 {
		return ""
	}
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(width - 2)
	if c.Border != nil {
		style = style.BorderForeground(c.Border)
	}
	content := c.Body
	if c.Title != "" {
		content = c.TitleStyle.Render(c.Title) + "\n" + c.Body
	}
	return style.Render(content)
}

// Badge is a short inline label.
func Badge(label string, fg lipgloss.TerminalColor) string {
	return lipgloss.NewStyle().Foreground(fg).Bold(true).Render("[" + label + "]")
}
