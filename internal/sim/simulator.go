package sim

import (
	"context"
	"math"

	"github.com/san-kum/trimosaic/internal/anim"
)

// Simulator steps an animation cycle at a fixed time step.
type Simulator struct {
	cycle     *anim.Cycle
	metrics   []Metric
	observers []Observer
}

func New(cycle *anim.Cycle) *Simulator {
	return &Simulator{
		cycle:     cycle,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }
func (s *Simulator) Cycle() *anim.Cycle     { return s.cycle }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := cfg.Frames()
	result := &Result{
		Times:   make([]float64, 0, steps),
		Cursors: make([]int, 0, steps),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	Logger().Debug("run started", "shapes", s.cycle.Len(), "frames", steps, "dt", cfg.TimeStep)

	t := 0.0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		f := s.step(cfg.TimeStep, &t)

		cursor, _ := s.cycle.Cursor()
		result.Frames++
		result.Times = append(result.Times, t)
		result.Cursors = append(result.Cursors, cursor)

		for _, m := range s.metrics {
			m.Observe(f)
		}
		for _, obs := range s.observers {
			obs.OnFrame(f)
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	Logger().Debug("run finished", "frames", result.Frames, "elapsed", t)
	return result, nil
}

// RunWithCallback steps until the duration is reached or callback
// returns false.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(Frame) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	t := 0.0
	for i, steps := 0, cfg.Frames(); i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f := s.step(cfg.TimeStep, &t)
		if !callback(f) {
			return nil
		}
	}
	return nil
}

// Advance steps the cycle with dt until at least d seconds have passed.
// It returns the number of frames taken.
func (s *Simulator) Advance(d, dt float64) (int, error) {
	if err := s.validateConfig(Config{TimeStep: dt, Duration: d}); err != nil {
		return 0, err
	}
	n := int(math.Ceil(d/dt - 1e-9))
	t := 0.0
	for i := 0; i < n; i++ {
		s.step(dt, &t)
	}
	return n, nil
}

func (s *Simulator) step(dt float64, t *float64) Frame {
	s.cycle.Step(dt)
	*t += dt
	return Frame{Index: s.cycle.Frame(), Time: *t, Dt: dt, Cycle: s.cycle}
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.TimeStep <= 0 || math.IsNaN(cfg.TimeStep) || math.IsInf(cfg.TimeStep, 0) {
		return SimError{Message: "time step must be positive and finite"}
	}
	if cfg.Duration < 0 || math.IsNaN(cfg.Duration) || math.IsInf(cfg.Duration, 0) {
		return SimError{Message: "duration must be non-negative and finite"}
	}
	if cfg.MaxFrames < 0 {
		return SimError{Message: "max frames must not be negative"}
	}
	return nil
}
