package calc

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// decimalPattern is the accepted numeric syntax: optional sign, digits with an
// optional decimal point, optional exponent. strconv.ParseFloat alone would also
// accept "NaN", "Inf", hex floats and underscores.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Result is one successful computation. It is never mutated after creation.
type Result struct {
	Mode       Mode      `json:"mode"`
	A          float64   `json:"a"`
	B          float64   `json:"b"`
	Value      float64   `json:"-"`
	ComputedAt time.Time `json:"computed_at"`
}

// ParseInput parses a raw input field. The second return is false when the
// text is not a decimal number.
func ParseInput(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if !decimalPattern.MatchString(s) {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out-of-range literals come back as ±Inf with ErrRange.
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// Compute applies the formula for mode to already-parsed operands.
func Compute(mode Mode, a, b float64) float64 {
	switch mode {
	case Reverse:
		return (a / b) * 100
	case Change:
		return ((b - a) / a) * 100
	default:
		return (b / 100) * a
	}
}

// Evaluate parses both raw inputs and computes the result. ok is false when
// either input fails to parse; no error is ever raised.
func Evaluate(mode Mode, rawA, rawB string) (Result, bool) {
	a, okA := ParseInput(rawA)
	b, okB := ParseInput(rawB)
	if !okA || !okB {
		return Result{}, false
	}

	return Result{
		Mode:       mode,
		A:          a,
		B:          b,
		Value:      Compute(mode, a, b),
		ComputedAt: time.Now(),
	}, true
}
