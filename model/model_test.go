package model_test

import (
	"context"
	"errors"
	"math"
	"os"
	"testing"

	"precisionpercent/calc"
	"precisionpercent/config"
	"precisionpercent/model"
	"precisionpercent/provider/testutil"
)

func newTestModel(t *testing.T, p model.Provider) *model.Model {
	t.Helper()
	cfg := &config.Config{DataDirectory: t.TempDir()}
	return model.NewModel(cfg, p, "test", "MIT")
}

func TestModelRecomputesOnEveryEdit(t *testing.T) {
	m := newTestModel(t, nil)

	m.SetInputA("100")
	if m.Result != nil {
		t.Fatal("no result expected with one input")
	}
	if m.ResultText() != calc.Placeholder {
		t.Errorf("ResultText() = %q, want placeholder", m.ResultText())
	}
	if m.History.Len() != 0 {
		t.Errorf("history recorded without a result")
	}

	m.SetInputB("20")
	if m.Result == nil || m.Result.Value != 20 {
		t.Fatalf("Standard(100, 20) = %+v, want 20", m.Result)
	}

	m.SetMode(calc.Reverse)
	if m.Result.Value != 500 {
		t.Errorf("Reverse(100, 20) = %v, want 500", m.Result.Value)
	}

	m.SetMode(calc.Change)
	if m.Result.Value != -80 {
		t.Errorf("Change(100, 20) = %v, want -80", m.Result.Value)
	}

	if m.History.Len() != 3 {
		t.Errorf("History.Len() = %d, want 3", m.History.Len())
	}
	if m.History.Entries()[0].Mode != calc.Change {
		t.Error("newest history entry should be the Change result")
	}
}

func TestModelInvalidInputClearsResult(t *testing.T) {
	m := newTestModel(t, nil)
	m.SetInputA("100")
	m.SetInputB("20")
	before := m.History.Len()

	m.SetInputB("abc")

	if m.Result != nil {
		t.Error("invalid input should clear the result")
	}
	if m.History.Len() != before {
		t.Error("invalid input must not add a history entry")
	}
}

func TestModelRecordsNonFiniteResults(t *testing.T) {
	m := newTestModel(t, nil)
	m.SetMode(calc.Reverse)
	m.SetInputA("5")
	m.SetInputB("0")

	if m.Result == nil || !math.IsInf(m.Result.Value, 1) {
		t.Fatalf("Reverse(5, 0) = %+v, want +Inf", m.Result)
	}
	if m.ResultText() != "∞" {
		t.Errorf("ResultText() = %q", m.ResultText())
	}
	if m.History.Len() != 1 {
		t.Errorf("non-finite results are still recorded, Len = %d", m.History.Len())
	}
}

func TestModelIgnoresInvalidMode(t *testing.T) {
	m := newTestModel(t, nil)
	m.SetMode(calc.Mode(42))
	if m.Mode != calc.Standard {
		t.Errorf("Mode = %v, want Standard", m.Mode)
	}
}

func TestModelProportion(t *testing.T) {
	tests := []struct {
		name      string
		mode      calc.Mode
		a, b      string
		wantLabel string
		wantTotal float64
	}{
		{"standard uses percentage input", calc.Standard, "250", "40", "40.0%", 250},
		{"standard clamps", calc.Standard, "250", "150", "100.0%", 250},
		{"reverse uses result", calc.Reverse, "20", "100", "20.0%", 100},
		{"change negative clamps to zero", calc.Change, "100", "70", "0.0%", 70},
		{"reverse division by zero", calc.Reverse, "5", "0", "100.0%", 0},
		{"change nan", calc.Change, "0", "0", "0.0%", 0},
		{"blank inputs", calc.Reverse, "", "", "0.0%", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, nil)
			m.SetMode(tt.mode)
			m.SetInputA(tt.a)
			m.SetInputB(tt.b)

			p := m.Proportion()
			if p.Label() != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", p.Label(), tt.wantLabel)
			}
			if p.Total != tt.wantTotal {
				t.Errorf("Total = %v, want %v", p.Total, tt.wantTotal)
			}
		})
	}
}

func TestSubmitQueryBlankIsNotDispatched(t *testing.T) {
	p := testutil.NewMockProvider("test-model")
	m := newTestModel(t, p)

	for _, q := range []string{"", "   ", "\n\t"} {
		if cmd := m.SubmitQuery(q); cmd != nil {
			t.Errorf("SubmitQuery(%q) returned a command", q)
		}
	}
	if m.Query.Pending || m.Query.Seq != 0 {
		t.Errorf("blank question changed state: %+v", m.Query)
	}
	if p.Calls() != 0 {
		t.Errorf("provider called %d times", p.Calls())
	}
}

func TestSubmitQueryRoundTrip(t *testing.T) {
	p := testutil.EchoProvider("36")
	m := newTestModel(t, p)
	m.Query.Answer = "previous answer"

	cmd := m.SubmitQuery("What is 15% of 240?")
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if !m.Query.Pending {
		t.Error("query should be pending")
	}
	if m.Query.Answer != "" {
		t.Error("starting a query clears the previous answer")
	}

	msg, ok := cmd().(model.AnswerMsg)
	if !ok {
		t.Fatalf("command returned %T", msg)
	}
	if !m.ApplyAnswer(msg) {
		t.Fatal("answer was not applied")
	}
	if m.Query.Answer != "36" || m.Query.Pending {
		t.Errorf("Query = %+v", m.Query)
	}
}

func TestSubmitQueryFailureResolvesToFallback(t *testing.T) {
	m := newTestModel(t, testutil.FailingProvider(testutil.ErrUnavailable))

	msg := m.SubmitQuery("What is 15% of 240?")().(model.AnswerMsg)
	m.ApplyAnswer(msg)

	if m.Query.Answer != model.FallbackError {
		t.Errorf("Answer = %q, want error fallback", m.Query.Answer)
	}
}

func overlappingAnswers(t *testing.T, m *model.Model) (first, second model.AnswerMsg) {
	t.Helper()
	cmd1 := m.SubmitQuery("first question")
	cmd2 := m.SubmitQuery("second question")
	return cmd1().(model.AnswerMsg), cmd2().(model.AnswerMsg)
}

func TestOverlappingQueriesLastWriteWins(t *testing.T) {
	m := newTestModel(t, testutil.NewMockProvider("test-model"))
	first, second := overlappingAnswers(t, m)

	// The newer answer settles first, then the older one lands on top.
	second.Answer.Text = "answer two"
	first.Answer.Text = "answer one"
	m.ApplyAnswer(second)
	if !m.ApplyAnswer(first) {
		t.Fatal("stale answer should be applied by default")
	}
	if m.Query.Answer != "answer one" {
		t.Errorf("Answer = %q, want the last settled answer", m.Query.Answer)
	}
}

func TestOverlappingQueriesDiscardStale(t *testing.T) {
	m := newTestModel(t, testutil.NewMockProvider("test-model"))
	m.Config.DiscardStaleAnswers = true
	first, second := overlappingAnswers(t, m)

	second.Answer.Text = "answer two"
	first.Answer.Text = "answer one"
	m.ApplyAnswer(second)
	if m.ApplyAnswer(first) {
		t.Error("stale answer should be dropped")
	}
	if m.Query.Answer != "answer two" {
		t.Errorf("Answer = %q, want the latest question's answer", m.Query.Answer)
	}
}

func TestOverlappingQueriesDiscardStaleKeepsPending(t *testing.T) {
	m := newTestModel(t, testutil.NewMockProvider("test-model"))
	m.Config.DiscardStaleAnswers = true
	first, _ := overlappingAnswers(t, m)

	m.ApplyAnswer(first)
	if !m.Query.Pending {
		t.Error("latest question is still in flight")
	}
}

func TestFetchModelsSorted(t *testing.T) {
	m := newTestModel(t, testutil.NewMockProvider("test-model"))

	msg := m.FetchModels()().(model.ModelsListMsg)
	if msg.Err != nil {
		t.Fatalf("Err = %v", msg.Err)
	}
	if len(msg.Models) != 2 || msg.Models[0].Name != "mock-model-1" {
		t.Errorf("models not sorted: %+v", msg.Models)
	}
}

func TestFetchModelsWithoutProvider(t *testing.T) {
	m := newTestModel(t, nil)
	msg := m.FetchModels()().(model.ModelsListMsg)
	if msg.Err == nil {
		t.Error("expected an error without a provider")
	}
}

func TestSelectModelPersists(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	p := testutil.NewMockProvider("old-model")
	m := newTestModel(t, p)

	if err := m.SelectModel("new-model"); err != nil {
		t.Fatalf("SelectModel() error = %v", err)
	}
	if p.GetModel() != "new-model" || m.ModelName() != "new-model" {
		t.Errorf("model not switched: %q", p.GetModel())
	}

	sys, err := config.LoadSystemConfig()
	if err != nil {
		t.Fatal(err)
	}
	if sys.Assistant.Model != "new-model" {
		t.Errorf("persisted model = %q", sys.Assistant.Model)
	}
}

func TestSelectModelWaitsForInFlightQuestion(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	p := testutil.NewMockProvider("old-model")
	started := make(chan struct{})
	release := make(chan struct{})
	p.GenerateFunc = func(ctx context.Context, prompt string, params model.GenerationParams) (string, error) {
		close(started)
		for i := 0; i < 100; i++ {
			_ = p.GetModel()
		}
		<-release
		return p.GetModel(), nil
	}
	m := newTestModel(t, p)

	cmd := m.SubmitQuery("What is 15% of 240?")
	answers := make(chan model.AnswerMsg, 1)
	go func() { answers <- cmd().(model.AnswerMsg) }()
	<-started

	if err := m.SelectModel("new-model"); !errors.Is(err, model.ErrQuestionPending) {
		t.Fatalf("SelectModel() during a question error = %v, want ErrQuestionPending", err)
	}
	close(release)

	msg := <-answers
	m.ApplyAnswer(msg)
	if msg.Answer.Text != "old-model" {
		t.Errorf("question answered by %q, want old-model", msg.Answer.Text)
	}
	if m.Query.InFlight != 0 {
		t.Errorf("InFlight = %d after the answer", m.Query.InFlight)
	}
	if err := m.SelectModel("new-model"); err != nil {
		t.Fatalf("SelectModel() after the answer error = %v", err)
	}
	if p.GetModel() != "new-model" {
		t.Errorf("GetModel() = %q", p.GetModel())
	}
}

func TestInFlightCountsStaleAnswers(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m := newTestModel(t, testutil.NewMockProvider("test-model"))
	m.Config.DiscardStaleAnswers = true
	first, second := overlappingAnswers(t, m)

	m.ApplyAnswer(second)
	if err := m.SelectModel("other"); !errors.Is(err, model.ErrQuestionPending) {
		t.Errorf("first question still running, SelectModel() error = %v", err)
	}
	m.ApplyAnswer(first)
	if err := m.SelectModel("other"); err != nil {
		t.Errorf("SelectModel() error = %v", err)
	}
}

func TestExportChart(t *testing.T) {
	m := newTestModel(t, nil)
	m.SetInputA("200")
	m.SetInputB("25")

	msg, ok := m.ExportChart()().(model.ChartExportedMsg)
	if !ok {
		t.Fatal("unexpected message type")
	}
	if msg.Err != nil {
		t.Fatalf("Err = %v", msg.Err)
	}
	if _, err := os.Stat(msg.Path); err != nil {
		t.Errorf("chart not written: %v", err)
	}
}

func TestAskWithCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if got := model.NewAssistant(testutil.FailingProvider(ctx.Err())).Ask(ctx, "q"); got != model.FallbackError {
		t.Errorf("Ask() = %q", got)
	}
}
