package widgets

import (
	"fmt"
	"strings"
)

// Gauge draws a value on a fixed scale [Min, Max] as a filled bar with the
// number printed after it.
type Gauge struct {
	Label string
	Value float64
	Min   float64
	Max   float64
	Unit  string
}

func (g Gauge) Render(width int) string {
	if width <= 0 {
		return ""
	}
	value := fmt.Sprintf("%+6.2f%s", g.Value, g.Unit)
	label := fmt.Sprintf("%-2s ", g.Label)
	barWidth := width - len([]rune(label)) - len([]rune(value)) - 3
	if barWidth < 1 {
		return PadRight(label+value, width)
	}
	return label + "[" + strings.Repeat("█", g.filled(barWidth)) + strings.Repeat("·", barWidth-g.filled(barWidth)) + "] " + value
}

func (g Gauge) filled(width int) int {
	span := g.Max - g.Min
	if span <= 0 {
		return 0
	}
	frac := (g.Value - g.Min) / span
	switch {
	case frac < 0:
		frac = 0
	case frac > 1:
		frac = 1
	}
	return int(frac*float64(width) + 0.5)
}

// Meter is a bare bar filled to Fraction of its width.
type Meter struct {
	Fraction float64
}

func (m Meter) Render(width int) string {
	if width <= 0 {
		return ""
	}
	n := Gauge{Value: m.Fraction, Max: 1}.filled(width)
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}
