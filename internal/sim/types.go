package sim

import (
	"fmt"

	"github.com/san-kum/trimosaic/internal/anim"
)

// Frame is what metrics and observers see after each step.
type Frame struct {
	Index uint64
	Time  float64
	Dt    float64
	Cycle *anim.Cycle
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f Frame)
}

type Config struct {
	TimeStep float64
	Duration float64
	// MaxFrames bounds a run regardless of Duration. Zero means no bound.
	MaxFrames int
}

func DefaultConfig() Config {
	return Config{
		TimeStep: 1.0 / 60,
		Duration: 10.0,
	}
}

// Frames is the number of steps a run of cfg takes.
func (c Config) Frames() int {
	n := int(c.Duration/c.TimeStep + 1e-9)
	if c.MaxFrames > 0 && n > c.MaxFrames {
		n = c.MaxFrames
	}
	return n
}

type Result struct {
	Frames  int
	Times   []float64
	Cursors []int
	Metrics map[string]float64
}

type SimError struct {
	Frame   int
	Time    float64
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("frame %d (t=%.4f): %s", e.Frame, e.Time, e.Message)
}
