package metrics

import "github.com/san-kum/trimosaic/internal/sim"

// MeanScale is the average X scale over all shapes at the last frame.
type MeanScale struct {
	value float64
}

func NewMeanScale() *MeanScale { return &MeanScale{} }

func (m *MeanScale) Name() string { return "mean_scale" }

func (m *MeanScale) Observe(f sim.Frame) {
	shapes := f.Cycle.Shapes()
	if len(shapes) == 0 {
		m.value = 0
		return
	}
	sum := 0.0
	for _, s := range shapes {
		sum += s.Transform.Scale.X
	}
	m.value = sum / float64(len(shapes))
}

func (m *MeanScale) Value() float64 { return m.value }
func (m *MeanScale) Reset()         { m.value = 0 }

// Settled is the fraction of shapes whose easing has stopped, and the
// time at which every shape had settled.
type Settled struct {
	fraction float64
	at       float64
	done     bool
}

func NewSettled() *Settled { return &Settled{} }

func (m *Settled) Name() string { return "settled" }

func (m *Settled) Observe(f sim.Frame) {
	shapes := f.Cycle.Shapes()
	if len(shapes) == 0 {
		return
	}
	n := 0
	for _, s := range shapes {
		if s.Transform.Scale.X > 1 || s.Transform.Scale.Y > 1 {
			n++
		}
	}
	m.fraction = float64(n) / float64(len(shapes))
	if n == len(shapes) && !m.done {
		m.done = true
		m.at = f.Time
	}
}

func (m *Settled) Value() float64 { return m.fraction }

// At reports when the last shape settled.
func (m *Settled) At() (float64, bool) { return m.at, m.done }

func (m *Settled) Reset() {
	m.fraction, m.at, m.done = 0, 0, false
}
