// Package automation runs scripted batches: scenario files that render a
// list of stills or animations, and sweeps over generation parameters.
package automation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/trimosaic/internal/config"
	"github.com/san-kum/trimosaic/internal/export"
	"github.com/san-kum/trimosaic/internal/scene"
	"github.com/san-kum/trimosaic/internal/sim"
)

var (
	ErrUnknownParam = errors.New("automation: unknown sweep parameter")
	ErrNoOutput     = errors.New("automation: step has no output")
)

// Scenario is a scripted list of renders.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step renders one file. Zero values keep the preset's setting.
type Step struct {
	Preset string  `yaml:"preset"`
	Config string  `yaml:"config"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Radius float64 `yaml:"radius"`
	GapX   float64 `yaml:"gap_x"`
	GapY   float64 `yaml:"gap_y"`
	// At is the animation time of a still, or the start of a recording.
	At float64 `yaml:"at"`
	// Duration is the length of a .gif recording.
	Duration float64 `yaml:"duration"`
	FPS      int     `yaml:"fps"`
	MaxWidth int     `yaml:"max_width"`
	Output   string  `yaml:"output"`
}

// StepResult summarizes one rendered step.
type StepResult struct {
	Output  string
	Visible int
	Frames  int
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("automation: parse %s: %w", path, err)
	}

	return &scenario, nil
}

// Resolve builds the configuration of a step: preset, then config file,
// then the step's own fields.
func (s Step) Resolve() (*config.Config, error) {
	cfg, err := config.Resolve(s.Preset, s.Config)
	if err != nil {
		return nil, err
	}
	if s.Width > 0 {
		cfg.Window.Width = s.Width
	}
	if s.Height > 0 {
		cfg.Window.Height = s.Height
	}
	if s.Radius != 0 {
		cfg.Mosaic.Radius = s.Radius
	}
	if s.GapX != 0 {
		cfg.Mosaic.GapX = s.GapX
	}
	if s.GapY != 0 {
		cfg.Mosaic.GapY = s.GapY
	}
	return cfg, nil
}

// RunScenario executes all steps in order. Relative outputs are written
// under dir.
func RunScenario(ctx context.Context, scenario *Scenario, dir string) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if step.Output == "" {
			return results, fmt.Errorf("step %d: %w", i+1, ErrNoOutput)
		}
		out := step.Output
		if !filepath.IsAbs(out) {
			out = filepath.Join(dir, out)
		}

		sim.Logger().Info("scenario step", "step", i+1, "of", len(scenario.Steps), "output", out)

		res, err := runStep(ctx, step, out)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		results = append(results, res)
	}

	return results, nil
}

func runStep(ctx context.Context, step Step, out string) (StepResult, error) {
	cfg, err := step.Resolve()
	if err != nil {
		return StepResult{}, err
	}
	sc, err := scene.New(cfg)
	if err != nil {
		return StepResult{}, err
	}
	if step.At > 0 {
		if _, err := sc.Advance(step.At); err != nil {
			return StepResult{}, err
		}
	}

	res := StepResult{Output: out, Visible: len(sc.Visible())}
	if strings.EqualFold(filepath.Ext(out), ".gif") {
		frames, err := Record(ctx, sc, step.Duration, step.FPS, step.MaxWidth, out)
		res.Frames = frames
		return res, err
	}

	res.Frames = 1
	return res, export.SaveFile(out, sc.Shapes(), sc.Size(), sc.Style())
}

// Record steps sc for duration seconds, capturing every frame, and writes
// the animation to path. It returns the number of frames written.
func Record(ctx context.Context, sc *scene.Scene, duration float64, fps, maxWidth int, path string) (int, error) {
	if fps <= 0 {
		fps = 25
	}
	if duration <= 0 {
		duration = 2
	}
	rec := export.NewRecorder(sc.Size(), sc.Style(), maxWidth, fps)

	cfg := sim.Config{TimeStep: 1 / float64(fps), Duration: duration}
	err := sc.Simulator().RunWithCallback(ctx, cfg, func(f sim.Frame) bool {
		if err := rec.Capture(f.Cycle.Shapes()); err != nil {
			sim.Logger().Error("capture failed", "frame", f.Index, "err", err)
			return false
		}
		return true
	})
	if err != nil {
		return rec.Len(), err
	}
	return rec.Len(), export.SaveGIF(path, rec)
}
