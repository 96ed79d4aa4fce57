// Package calc implements the percentage calculation engine.
//
// The engine is a pure mapping from (mode, a, b) to a float64. It never
// guards zero denominators: Reverse with b == 0 and Change with a == 0
// produce ±Inf or NaN, and callers display those values as-is.
package calc

import (
	"fmt"
	"strings"
)

// Mode selects the formula and the input labels.
type Mode int

const (
	Standard Mode = iota // b percent of a
	Reverse              // a is what percent of b
	Change               // percent change from a to b
)

// Modes lists every mode in tab order.
var Modes = []Mode{Standard, Reverse, Change}

func (m Mode) String() string {
	switch m {
	case Standard:
		return "Standard"
	case Reverse:
		return "Reverse"
	case Change:
		return "Change"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Title is the tab caption shown in the mode selector.
func (m Mode) Title() string {
	switch m {
	case Reverse:
		return "Reverse %"
	default:
		return m.String()
	}
}

// LabelA returns the caption of the first input.
func (m Mode) LabelA() string {
	switch m {
	case Standard:
		return "Total Amount"
	case Reverse:
		return "Portion Value"
	default:
		return "Initial Value"
	}
}

// LabelB returns the caption of the second input.
func (m Mode) LabelB() string {
	switch m {
	case Standard:
		return "Percentage (%)"
	case Reverse:
		return "Total Amount"
	default:
		return "Final Value"
	}
}

// Unit is the suffix appended to results of this mode.
func (m Mode) Unit() string {
	if m == Reverse || m == Change {
		return "%"
	}
	return ""
}

// Next returns the following mode, wrapping around.
func (m Mode) Next() Mode {
	return Modes[(int(m)+1)%len(Modes)]
}

// Valid reports whether m is one of the three known modes.
func (m Mode) Valid() bool {
	return m >= Standard && m <= Change
}

// ParseMode accepts a mode name case-insensitively. "basic" is accepted as an
// alias of Standard.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "basic":
		return Standard, nil
	case "reverse":
		return Reverse, nil
	case "change":
		return Change, nil
	default:
		return Standard, fmt.Errorf("unknown mode: %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid mode: %d", int(m))
	}
	return []byte(strings.ToLower(m.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
