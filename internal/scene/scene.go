// Package scene assembles a runnable mosaic from configuration: one
// generation pass, the visibility filter, materialized shapes and the
// animation cycle driving them.
package scene

import (
	"context"
	"fmt"

	"github.com/san-kum/trimosaic/internal/anim"
	"github.com/san-kum/trimosaic/internal/config"
	"github.com/san-kum/trimosaic/internal/export"
	"github.com/san-kum/trimosaic/internal/metrics"
	"github.com/san-kum/trimosaic/internal/mosaic"
	"github.com/san-kum/trimosaic/internal/sim"
)

// Scene is built once at startup. Geometry is never recomputed.
type Scene struct {
	cfg       *config.Config
	rings     int
	generated int
	visible   []mosaic.Triangle
	cycle     *anim.Cycle
	simulator *sim.Simulator
}

// New validates cfg and runs the generation pass.
func New(cfg *config.Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := cfg.Builder()
	rings, err := b.Rings()
	if err != nil {
		return nil, err
	}
	all, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("generate mosaic: %w", err)
	}
	visible := mosaic.Visible(all, cfg.Size())

	shapes := anim.Materialize(visible, cfg.Mosaic.Sides)
	cycle := anim.NewCycle(shapes, anim.WithHueRate(cfg.Animation.HueRate))

	sim.Logger().Info("scene built",
		"width", cfg.Window.Width, "height", cfg.Window.Height,
		"radius", cfg.TriangleRadius(), "rings", rings,
		"generated", len(all), "visible", len(visible))

	return &Scene{
		cfg:       cfg,
		rings:     rings,
		generated: len(all),
		visible:   visible,
		cycle:     cycle,
		simulator: sim.New(cycle),
	}, nil
}

func (s *Scene) Config() *config.Config         { return s.cfg }
func (s *Scene) Size() mosaic.Size              { return s.cfg.Size() }
func (s *Scene) Rings() int                     { return s.rings }
func (s *Scene) Generated() int                 { return s.generated }
func (s *Scene) Visible() []mosaic.Triangle     { return s.visible }
func (s *Scene) Cycle() *anim.Cycle             { return s.cycle }
func (s *Scene) Simulator() *sim.Simulator      { return s.simulator }
func (s *Scene) Shapes() []anim.Shape           { return s.cycle.Shapes() }
func (s *Scene) SimConfig() sim.Config          { return sim.Config{TimeStep: s.cfg.TimeStep, Duration: s.cfg.Duration} }
func (s *Scene) Style() export.Style            { return Style(s.cfg) }
func (s *Scene) AddMetric(m sim.Metric)         { s.simulator.AddMetric(m) }
func (s *Scene) AddObserver(o sim.Observer)     { s.simulator.AddObserver(o) }
func (s *Scene) Advance(t float64) (int, error) { return s.simulator.Advance(t, s.cfg.TimeStep) }

// Run steps the scene for the configured duration with the default
// metrics attached.
func (s *Scene) Run(ctx context.Context) (*sim.Result, error) {
	for _, m := range metrics.Defaults() {
		s.simulator.AddMetric(m)
	}
	return s.simulator.Run(ctx, s.SimConfig())
}

// Style converts the config's paint settings for the exporters.
func Style(cfg *config.Config) export.Style {
	return export.Style{
		Background: cfg.BackgroundColor(),
		LineWidth:  cfg.Style.LineWidth,
	}
}
