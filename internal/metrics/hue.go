package metrics

import (
	"math"

	"github.com/san-kum/trimosaic/internal/anim"
	"github.com/san-kum/trimosaic/internal/sim"
)

// HueTravel accumulates the hue distance covered by the first shape, in
// degrees, across wraps.
type HueTravel struct {
	last    float64
	total   float64
	started bool
}

func NewHueTravel() *HueTravel { return &HueTravel{} }

func (m *HueTravel) Name() string { return "hue_travel" }

func (m *HueTravel) Observe(f sim.Frame) {
	shapes := f.Cycle.Shapes()
	if len(shapes) == 0 {
		return
	}
	h := anim.Hue(shapes[0].Stroke)
	if m.started {
		d := math.Mod(h-m.last+360, 360)
		m.total += d
	}
	m.last = h
	m.started = true
}

func (m *HueTravel) Value() float64 { return m.total }

func (m *HueTravel) Reset() {
	m.last, m.total, m.started = 0, 0, false
}
