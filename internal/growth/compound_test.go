package growth

import (
	"math"
	"testing"
	"time"
)

func TestElapsedMonths(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	if got := ElapsedMonths(t0, t0.Add(MeanMonth)); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("one mean month: expected 1.0, got %v", got)
	}
	if got := ElapsedMonths(t0, t0.Add(MeanMonth/2)); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("half month: expected 0.5, got %v", got)
	}
	if got := ElapsedMonths(t0, t0); got != 0 {
		t.Errorf("zero span: expected 0, got %v", got)
	}
	if got := ElapsedMonths(t0, t0.Add(-time.Hour)); got != 0 {
		t.Errorf("negative span: expected 0, got %v", got)
	}
}

func TestCompound_OneMonth(t *testing.T) {
	got := Compound(1.0, 0.013, 1.0)
	if math.Abs(got-0.013) > 1e-12 {
		t.Errorf("expected growth 0.013, got %v", got)
	}
}

func TestCompound_Guards(t *testing.T) {
	tests := []struct {
		name    string
		balance float64
		months  float64
	}{
		{"zero balance", 0, 1},
		{"negative balance", -1, 1},
		{"zero months", 1, 0},
		{"negative months", 1, -1},
	}
	for _, tt := range tests {
		if got := Compound(tt.balance, 0.013, tt.months); got != 0 {
			t.Errorf("%s: expected 0, got %v", tt.name, got)
		}
	}
}

func TestCompound_TwoHalvesEqualOneMonth(t *testing.T) {
	// Applying two half-month steps sequentially must land on the same
	// balance as one full month.
	balance := 2.5
	b1 := balance + Compound(balance, 0.013, 0.5)
	b1 += Compound(b1, 0.013, 0.5)
	b2 := balance + Compound(balance, 0.013, 1.0)
	if math.Abs(b1-b2) > 1e-9 {
		t.Errorf("split compounding diverged: %v vs %v", b1, b2)
	}
}
