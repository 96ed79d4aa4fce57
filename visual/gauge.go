// Package visual turns a percentage into a two-segment proportion for the
// gauge and the exported donut chart.
package visual

import (
	"fmt"
	"math"
	"strings"
)

// Proportion is a percentage clamped into [0, 100] and its complement.
type Proportion struct {
	Portion   float64
	Remaining float64
	Total     float64 // shown next to the gauge, not used for the split
}

// NewProportion clamps percentage into [0, 100]. Out-of-range values are
// clamped, not rejected. NaN counts as 0.
func NewProportion(percentage, total float64) Proportion {
	p := clamp(percentage)
	return Proportion{
		Portion:   p,
		Remaining: 100 - p,
		Total:     total,
	}
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(math.Max(v, 0), 100)
}

// Label renders the clamped percentage with one decimal place.
func (p Proportion) Label() string {
	return fmt.Sprintf("%.1f%%", p.Portion)
}

// Fraction is Portion scaled to [0, 1].
func (p Proportion) Fraction() float64 {
	return p.Portion / 100
}

const (
	FilledCell = "█"
	EmptyCell  = "░"
)

// FilledCells returns how many of width cells a fraction fills, rounded to
// the nearest cell.
func FilledCells(fraction float64, width int) int {
	if width <= 0 {
		return 0
	}
	n := int(math.Round(clamp(fraction*100) / 100 * float64(width)))
	return min(max(n, 0), width)
}

// Bar draws the gauge as filled and empty cells.
func Bar(fraction float64, width int) (filled, empty string) {
	n := FilledCells(fraction, width)
	return strings.Repeat(FilledCell, n), strings.Repeat(EmptyCell, max(width-n, 0))
}
