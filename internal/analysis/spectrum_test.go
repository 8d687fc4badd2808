package analysis

import (
	"math"
	"testing"
)

func sawtooth(period, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i % period
	}
	return out
}

func TestDominantPeriodSawtooth(t *testing.T) {
	tests := []struct {
		period, n int
	}{
		{8, 64},
		{5, 100},
		{16, 256},
		{3, 60},
	}

	for _, tt := range tests {
		p, ok := DominantPeriod(Ints(sawtooth(tt.period, tt.n)))
		if !ok {
			t.Errorf("period %d: no period found", tt.period)
			continue
		}
		if Round(p) != tt.period {
			t.Errorf("period %d over %d samples: got %.3f", tt.period, tt.n, p)
		}
	}
}

func TestDominantPeriodSine(t *testing.T) {
	data := make([]float64, 128)
	for i := range data {
		data[i] = math.Sin(2*math.Pi*float64(i)/16) + 0.2*math.Sin(2*math.Pi*float64(i)/4)
	}
	p, ok := DominantPeriod(data)
	if !ok || math.Abs(p-16) > 1e-9 {
		t.Errorf("got %v (%v), want 16", p, ok)
	}
}

func TestDominantPeriodFlat(t *testing.T) {
	if _, ok := DominantPeriod([]float64{3, 3, 3, 3}); ok {
		t.Error("flat series has no period")
	}
	if _, ok := DominantPeriod([]float64{1}); ok {
		t.Error("single sample has no period")
	}
	if _, ok := DominantPeriod(nil); ok {
		t.Error("empty series has no period")
	}
}

func TestPowerSpectrumLength(t *testing.T) {
	if got := len(PowerSpectrum(make([]float64, 10))); got != 6 {
		t.Errorf("len = %d, want 6", got)
	}
}
