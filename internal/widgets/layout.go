package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type VStack struct {
	Widgets []Widget
	Spacing int
}

func (v VStack) Render(width int) string {
	if len(v.Widgets) == 0 || width <= 0 {
		return ""
	}
	parts := make([]string, 0, len(v.Widgets))
	for _, w := range v.Widgets {
		if w == nil {
			continue
		}
		parts = append(parts, w.Render(width))
	}
	return strings.Join(parts, strings.Repeat("\n", v.Spacing+1))
}

type HStack struct {
	Widgets []Widget
	Gap     int
}

func (h HStack) Render(width int) string {
	if len(h.Widgets) == 0 || width <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	usable := max(1, width-gapTotal)
	widths := SplitWidths(usable, len(h.Widgets))
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		part := strings.Split(w.Render(max(1, widths[i])), "\n")
		rendered[i] = part
		if len(part) > maxLines {
			maxLines = len(part)
		}
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = PadRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

// SplitWidths divides total into n columns. Leftover cells go to the
// leftmost columns.
func SplitWidths(total, n int) []int {
	if n <= 0 {
		return nil
	}
	width := total / n
	out := make([]int, n)
	for i := range out {
		out[i] = width
	}
	for i := 0; i < total%n; i++ {
		out[i]++
	}
	return out
}

// PadRight truncates or pads s to exactly width cells.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Row puts left and right on one line, right-aligned to width. The left
// side is cut with an ellipsis when both do not fit.
type Row struct {
	Left  string
	Right string
}

func (r Row) Render(width int) string {
	if width <= 0 {
		return ""
	}
	rw := ansi.StringWidth(r.Right)
	room := width - rw - 1
	if room < 1 {
		return PadRight(r.Right, width)
	}
	left := r.Left
	if ansi.StringWidth(left) > room {
		left = ansi.Truncate(left, room, "…")
	}
	gap := width - ansi.StringWidth(left) - rw
	return left + strings.Repeat(" ", max(1, gap)) + r.Right
}

// Rows renders each row on its own line.
func Rows(width int, rows ...Row) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.Render(width)
	}
	return strings.Join(lines, "\n")
}
