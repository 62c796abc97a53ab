// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (cards, stacks, rows, gauges)
//
// Not allowed here:
// - key handling, navigation, timers or theme policy
package widgets

// Widget renders itself into a column of the given width.
type Widget interface {
	Render(width int) string
}

// Text is a pre-rendered block.
type Text string

func (t Text) Render(width int) string {
	if width <= 0 {
		return ""
	}
	return string(t)
}
