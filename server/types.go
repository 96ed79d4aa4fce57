package server

import (
	"time"

	"precisionpercent/calc"
	"precisionpercent/model"
)

// CalculateRequest is the body of POST /calculate. a and b are raw input
// text, parsed the same way as the terminal inputs.
type CalculateRequest struct {
	Mode string `json:"mode" validate:"required"`
	A    string `json:"a" validate:"max=64"`
	B    string `json:"b" validate:"max=64"`
}

// CalculateResponse reports one evaluation. Value is null when the inputs do
// not parse or the result is not finite; Display always carries the text the
// result card would show.
type CalculateResponse struct {
	Mode     calc.Mode `json:"mode"`
	A        string    `json:"a"`
	B        string    `json:"b"`
	Computed bool      `json:"computed"`
	Value    *float64  `json:"value"`
	Display  string    `json:"display"`
}

// HistoryItem is one entry of GET /history. Operands are rendered as text
// because they may be infinite.
type HistoryItem struct {
	ID         string    `json:"id"`
	Mode       calc.Mode `json:"mode"`
	A          string    `json:"a"`
	B          string    `json:"b"`
	Value      *float64  `json:"value"`
	Display    string    `json:"display"`
	ComputedAt time.Time `json:"computed_at"`
}

type HistoryResponse struct {
	Entries []HistoryItem `json:"entries"`
}

// AskRequest is the body of POST /ask.
type AskRequest struct {
	Question string `json:"question" validate:"required,max=4000"`
}

type AskResponse struct {
	Answer  string        `json:"answer"`
	Outcome model.Outcome `json:"outcome"`
}

// finiteOrNil returns nil for values JSON cannot carry.
func finiteOrNil(v float64) *float64 {
	if !calc.IsFinite(v) {
		return nil
	}
	return &v
}
