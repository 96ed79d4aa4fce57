package calc

import (
	"math"
	"testing"
)

func TestComputeExamples(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		a, b float64
		want float64
	}{
		{"standard 20 percent of 100", Standard, 100, 20, 20},
		{"reverse 20 of 100", Reverse, 20, 100, 20},
		{"change increase", Change, 100, 120, 20},
		{"change decrease", Change, 100, 80, -20},
		{"standard negative total", Standard, -50, 10, -5},
		{"reverse above whole", Reverse, 150, 100, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.mode, tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Compute(%s, %g, %g) = %g, want %g", tt.mode, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestComputeMatchesFormulas(t *testing.T) {
	operands := []float64{-250, -1.5, 0.1, 3, 42, 100, 1e6}

	for _, a := range operands {
		for _, b := range operands {
			if got, want := Compute(Standard, a, b), (b/100)*a; got != want {
				t.Errorf("Standard(%g, %g) = %g, want %g", a, b, got, want)
			}
			if got, want := Compute(Reverse, a, b), (a/b)*100; got != want {
				t.Errorf("Reverse(%g, %g) = %g, want %g", a, b, got, want)
			}
			if got, want := Compute(Change, a, b), ((b-a)/a)*100; got != want {
				t.Errorf("Change(%g, %g) = %g, want %g", a, b, got, want)
			}
		}
	}
}

func TestComputeZeroDenominatorPassesThrough(t *testing.T) {
	if got := Compute(Reverse, 5, 0); !math.IsInf(got, 1) {
		t.Errorf("Reverse(5, 0) = %g, want +Inf", got)
	}
	if got := Compute(Change, 0, 5); !math.IsInf(got, 1) {
		t.Errorf("Change(0, 5) = %g, want +Inf", got)
	}
	if got := Compute(Reverse, 0, 0); !math.IsNaN(got) {
		t.Errorf("Reverse(0, 0) = %g, want NaN", got)
	}
	if got := Compute(Change, 0, 0); !math.IsNaN(got) {
		t.Errorf("Change(0, 0) = %g, want NaN", got)
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{"100", 100, true},
		{"-12.5", -12.5, true},
		{"+3", 3, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1e3", 1000, true},
		{"2.5E-1", 0.25, true},
		{"  42  ", 42, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"0x10", 0, false},
		{"1_000", 0, false},
		{"1,000", 0, false},
		{"-", 0, false},
		{"1e", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseInput(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseInput(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseInput(%q) = %g, want %g", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseInputOverflowIsInfinite(t *testing.T) {
	got, ok := ParseInput("1e400")
	if !ok {
		t.Fatal("expected 1e400 to parse")
	}
	if !math.IsInf(got, 1) {
		t.Errorf("ParseInput(1e400) = %g, want +Inf", got)
	}
}

func TestEvaluate(t *testing.T) {
	res, ok := Evaluate(Standard, "100", "20")
	if !ok {
		t.Fatal("expected a result")
	}
	if res.Value != 20 || res.A != 100 || res.B != 20 || res.Mode != Standard {
		t.Errorf("unexpected result: %+v", res)
	}
	if res.ComputedAt.IsZero() {
		t.Error("ComputedAt not set")
	}

	if _, ok := Evaluate(Standard, "abc", "20"); ok {
		t.Error("expected no result for non-numeric first input")
	}
	if _, ok := Evaluate(Change, "10", ""); ok {
		t.Error("expected no result for empty second input")
	}

	res, ok = Evaluate(Reverse, "5", "0")
	if !ok {
		t.Fatal("division by zero must still produce a result")
	}
	if !math.IsInf(res.Value, 1) {
		t.Errorf("Reverse(5, 0) value = %g, want +Inf", res.Value)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	first, _ := Evaluate(Change, "80", "100")
	second, _ := Evaluate(Change, "80", "100")
	if first.Value != second.Value {
		t.Errorf("repeated evaluation differs: %g vs %g", first.Value, second.Value)
	}
}
