package model

import (
	"context"
	"errors"
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"precisionpercent/calc"
	"precisionpercent/config"
	"precisionpercent/visual"
)

// Query is the single question/answer slot.
type Query struct {
	Question string
	Answer   string
	Pending  bool
	Seq      uint64 // sequence number of the most recently dispatched question
	InFlight int    // dispatched questions whose answer has not been applied
}

// ErrQuestionPending is returned when the model is switched while a question
// is still being answered.
var ErrQuestionPending = errors.New("a question is still being answered")

// Model holds the calculator state and the transitions that change it. It is
// owned by the UI goroutine; only the commands it returns run elsewhere.
type Model struct {
	// Core dependencies
	Config    *config.Config
	Provider  Provider
	Assistant *Assistant

	// Calculator
	Mode    calc.Mode
	InputA  string
	InputB  string
	Result  *calc.Result // nil while either input does not parse
	History History

	// Assistant
	Query Query

	// Application metadata
	Version string
	License string
}

// NewModel creates a new Model. p may be nil; questions then settle with the
// error fallback.
func NewModel(cfg *config.Config, p Provider, version, license string) *Model {
	return &Model{
		Config:    cfg,
		Provider:  p,
		Assistant: NewAssistant(p),
		Mode:      calc.Standard,
		Version:   version,
		License:   license,
	}
}

// SetMode switches the formula and recomputes.
func (m *Model) SetMode(mode calc.Mode) {
	if !mode.Valid() {
		return
	}
	m.Mode = mode
	m.recompute()
}

func (m *Model) SetInputA(raw string) {
	m.InputA = raw
	m.recompute()
}

func (m *Model) SetInputB(raw string) {
	m.InputB = raw
	m.recompute()
}

// recompute runs on every input or mode change. Each successful computation
// is recorded, including repeats and non-finite values.
func (m *Model) recompute() {
	r, ok := calc.Evaluate(m.Mode, m.InputA, m.InputB)
	if !ok {
		m.Result = nil
		return
	}
	m.Result = &r
	m.History.Push(r)
}

// ResultText is the value shown in the result card.
func (m *Model) ResultText() string {
	if m.Result == nil {
		return calc.Placeholder
	}
	return calc.FormatValue(m.Result.Value)
}

// Proportion is what the gauge shows. Standard charts the entered percentage
// against the total; the other modes chart the result against input b.
func (m *Model) Proportion() visual.Proportion {
	b, okB := calc.ParseInput(m.InputB)
	if !okB {
		b = 0
	}

	if m.Mode == calc.Standard {
		a, okA := calc.ParseInput(m.InputA)
		if !okA {
			a = 0
		}
		return visual.NewProportion(b, a)
	}

	pct := 0.0
	if m.Result != nil {
		pct = m.Result.Value
	}
	return visual.NewProportion(pct, b)
}

// SubmitQuery starts a question. Blank questions are ignored and return nil.
// Any answer already shown is cleared; a question still in flight keeps
// running and is not cancelled.
func (m *Model) SubmitQuery(question string) tea.Cmd {
	if IsBlank(question) {
		return nil
	}

	m.Query.Seq++
	m.Query.InFlight++
	m.Query.Question = question
	m.Query.Answer = ""
	m.Query.Pending = true

	seq := m.Query.Seq
	assistant := m.Assistant

	if config.Debug {
		config.DebugLog.Debugw("dispatching question", "seq", seq)
	}

	return func() tea.Msg {
		return AnswerMsg{
			Seq:      seq,
			Question: question,
			Answer:   assistant.Resolve(context.Background(), question),
		}
	}
}

// ApplyAnswer stores a settled answer and reports whether it was shown. By
// default whichever answer settles last wins; with discard_stale_answers only
// the answer to the latest question is accepted.
func (m *Model) ApplyAnswer(msg AnswerMsg) bool {
	if m.Query.InFlight > 0 {
		m.Query.InFlight--
	}

	stale := msg.Seq != m.Query.Seq
	if stale && m.Config != nil && m.Config.DiscardStaleAnswers {
		if config.Debug {
			config.DebugLog.Debugw("discarding stale answer", "seq", msg.Seq, "latest", m.Query.Seq)
		}
		return false
	}

	m.Query.Answer = msg.Answer.Text
	m.Query.Pending = false
	return true
}

// ExportChart renders the current proportion to a PNG in the data directory.
func (m *Model) ExportChart() tea.Cmd {
	p := m.Proportion()
	dir := config.GetChartsDir(config.GetDefaultDataDir())
	if m.Config != nil {
		dir = config.GetChartsDir(m.Config.DataDir())
	}

	return func() tea.Msg {
		path, err := visual.ExportPNG(p, dir)
		if err != nil {
			config.DebugLog.Errorw("chart export failed", "error", err)
		}
		return ChartExportedMsg{Path: path, Err: err}
	}
}

// FetchModels lists the models of the active provider, sorted by name.
func (m *Model) FetchModels() tea.Cmd {
	p := m.Provider
	return func() tea.Msg {
		if p == nil {
			return ModelsListMsg{Err: errNoProvider}
		}

		models, err := p.ListModels(context.Background())
		if err != nil {
			if config.Debug {
				config.DebugLog.Debugw("failed to list models", "error", err)
			}
			return ModelsListMsg{Err: err}
		}

		sort.Slice(models, func(i, j int) bool {
			return models[i].Name < models[j].Name
		})
		return ModelsListMsg{Models: models}
	}
}

// SelectModel switches the active model and persists the choice. The
// provider is read by in-flight questions, so switching waits until every
// dispatched question has settled.
func (m *Model) SelectModel(internalName string) error {
	if m.Provider == nil {
		return errNoProvider
	}
	if m.Query.InFlight > 0 {
		return ErrQuestionPending
	}
	m.Provider.SetModel(internalName)
	if m.Config != nil {
		m.Config.Model = internalName
	}
	return config.SaveModel(internalName)
}

// ModelName is the active model for display.
func (m *Model) ModelName() string {
	if m.Provider == nil {
		return "no model"
	}
	return m.Provider.GetDisplayName()
}
