package automation

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/san-kum/trimosaic/internal/config"
	"github.com/san-kum/trimosaic/internal/mosaic"
	"github.com/san-kum/trimosaic/internal/sim"
)

// Sweep varies one generation parameter across a range.
type Sweep struct {
	Base     *config.Config
	Param    string // "gap", "gap_x", "gap_y", "radius" or "width"
	Min, Max float64
	Steps    int
	// Workers bounds concurrent generation passes. Zero uses NumCPU.
	Workers int
}

// SweepResult is the outcome of one generation pass in a sweep.
type SweepResult struct {
	Value     float64
	Rings     int
	Generated int
	Visible   int
	Err       error
}

// RunSweep runs one generation pass per value, in parallel. Results keep
// the order of the values. Invalid combinations are reported in the
// result rather than aborting the sweep.
func RunSweep(ctx context.Context, sw Sweep) ([]SweepResult, error) {
	if sw.Steps < 1 {
		sw.Steps = 1
	}
	base := sw.Base
	if base == nil {
		base = config.DefaultConfig()
	}
	if _, err := apply(*base, sw.Param, sw.Min); err != nil {
		return nil, err
	}

	step := 0.0
	if sw.Steps > 1 {
		step = (sw.Max - sw.Min) / float64(sw.Steps-1)
	}

	workers := sw.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	results := make([]SweepResult, sw.Steps)
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := 0; i < sw.Steps; i++ {
		if ctx.Err() != nil {
			break
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			v := sw.Min + float64(idx)*step
			cfg, _ := apply(*base, sw.Param, v)
			results[idx] = generate(cfg, v)

			r := results[idx]
			sim.Logger().Debug("sweep", "param", sw.Param, "value", v, "rings", r.Rings, "visible", r.Visible, "err", r.Err)
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func generate(cfg *config.Config, v float64) SweepResult {
	res := SweepResult{Value: v}
	b := cfg.Builder()
	if res.Rings, res.Err = b.Rings(); res.Err != nil {
		return res
	}
	all, err := b.Build()
	if err != nil {
		res.Err = err
		return res
	}
	res.Generated = len(all)
	res.Visible = len(mosaic.Visible(all, cfg.Size()))
	return res
}

func apply(cfg config.Config, param string, v float64) (*config.Config, error) {
	switch param {
	case "gap":
		cfg.Mosaic.GapX, cfg.Mosaic.GapY = v, v
	case "gap_x":
		cfg.Mosaic.GapX = v
	case "gap_y":
		cfg.Mosaic.GapY = v
	case "radius":
		cfg.Mosaic.Radius = v
	case "width":
		cfg.Window.Width = int(v)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownParam, param)
	}
	return &cfg, nil
}
