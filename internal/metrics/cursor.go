package metrics

import "github.com/san-kum/trimosaic/internal/sim"

// CursorLaps counts how many times the cursor wrapped back to zero.
type CursorLaps struct {
	last  int
	laps  int
	ready bool
}

func NewCursorLaps() *CursorLaps { return &CursorLaps{} }

func (m *CursorLaps) Name() string { return "cursor_laps" }

func (m *CursorLaps) Observe(f sim.Frame) {
	idx, ok := f.Cycle.Cursor()
	if !ok {
		return
	}
	if m.ready && idx < m.last {
		m.laps++
	}
	if m.ready && idx == m.last && f.Cycle.Len() == 1 {
		m.laps++
	}
	m.last = idx
	m.ready = true
}

func (m *CursorLaps) Value() float64 { return float64(m.laps) }

func (m *CursorLaps) Reset() {
	m.last, m.laps, m.ready = 0, 0, false
}

// Defaults returns the metrics every run records.
func Defaults() []sim.Metric {
	return []sim.Metric{
		NewMeanScale(),
		NewSettled(),
		NewHueTravel(),
		NewCursorLaps(),
	}
}
