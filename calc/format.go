package calc

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Placeholder is shown in the result card when there is no result.
const Placeholder = "0.00"

// FormatValue renders v with at most two fraction digits and thousands
// separators. Non-finite values are rendered, not masked.
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}

	// From 1e15 up a float64 has no room for two fraction digits and v*100 is inexact.
	rounded := v
	if math.Abs(v) < 1e15 {
		rounded = math.Round(v*100) / 100
	}
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return humanize.CommafWithDigits(rounded, 2)
}

// FormatResult renders a value with the unit of its mode.
func FormatResult(mode Mode, v float64) string {
	return FormatValue(v) + mode.Unit()
}

// FormatOperand renders an input the way it was understood by the engine.
func FormatOperand(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	return humanize.Ftoa(v)
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
