package scene

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/trimosaic/internal/config"
	"github.com/san-kum/trimosaic/internal/mosaic"
)

func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Window.Width, cfg.Window.Height = 100, 100
	cfg.Mosaic.Radius = 10
	cfg.Mosaic.GapX, cfg.Mosaic.GapY = 1, 1
	cfg.Duration = 0.5
	return cfg
}

func TestNew(t *testing.T) {
	s, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}

	if s.Rings() != 4 {
		t.Errorf("rings = %d, want 4", s.Rings())
	}
	if s.Generated() != 256 {
		t.Errorf("generated = %d, want 256", s.Generated())
	}
	if len(s.Visible()) == 0 || len(s.Visible()) > s.Generated() {
		t.Errorf("visible = %d out of %d", len(s.Visible()), s.Generated())
	}
	if s.Cycle().Len() != len(s.Visible()) {
		t.Errorf("cycle has %d shapes, want %d", s.Cycle().Len(), len(s.Visible()))
	}
	for _, sh := range s.Shapes() {
		if sh.Transform.Scale.X != 0 {
			t.Fatal("shapes must start at zero scale")
		}
	}
}

func TestNewInvalid(t *testing.T) {
	cfg := smallConfig()
	cfg.Mosaic.GapX = 0
	if _, err := New(cfg); !errors.Is(err, mosaic.ErrInvalidGap) {
		t.Errorf("expected ErrInvalidGap, got %v", err)
	}

	cfg = smallConfig()
	cfg.Mosaic.Sides = 4
	if _, err := New(cfg); !errors.Is(err, config.ErrUnsupportedSides) {
		t.Errorf("expected ErrUnsupportedSides, got %v", err)
	}
}

func TestNewRingLimit(t *testing.T) {
	cfg := smallConfig()
	cfg.Mosaic.MaxRings = 2
	if _, err := New(cfg); !errors.Is(err, mosaic.ErrRingLimit) {
		t.Errorf("expected ErrRingLimit, got %v", err)
	}
}

func TestRun(t *testing.T) {
	s, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}

	result, err := s.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if result.Frames != 30 {
		t.Errorf("frames = %d, want 30", result.Frames)
	}
	for _, name := range []string{"mean_scale", "settled", "hue_travel", "cursor_laps"} {
		if _, ok := result.Metrics[name]; !ok {
			t.Errorf("missing metric %s", name)
		}
	}
}

func TestAdvance(t *testing.T) {
	s, err := New(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	n, err := s.Advance(1)
	if err != nil {
		t.Fatal(err)
	}
	if n != 60 {
		t.Errorf("advanced %d frames, want 60", n)
	}
	if got := s.Cycle().Frame(); got != 60 {
		t.Errorf("cycle frame = %d", got)
	}
}

func TestStyle(t *testing.T) {
	cfg := smallConfig()
	cfg.Window.Background = "#ff0000"
	cfg.Style.LineWidth = 3

	st := Style(cfg)
	if st.Background != (mosaic.Color{R: 1, A: 1}) {
		t.Errorf("background = %+v", st.Background)
	}
	if st.LineWidth != 3 {
		t.Errorf("line width = %v", st.LineWidth)
	}
}
