package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/trimosaic/internal/anim"
	"github.com/san-kum/trimosaic/internal/mosaic"
)

const (
	DefaultTitle         = "Triangles"
	DefaultWidth         = 1920
	DefaultHeight        = 1080
	DefaultBackground    = "#000000"
	DefaultTimeStep      = 1.0 / 60
	DefaultDuration      = 10.0
	DefaultSides         = 3
	DefaultRadiusDivisor = 250.0
	DefaultGap           = 1.1
	DefaultStroke        = "transparent"
	DefaultFill          = "transparent"
	DefaultLineWidth     = 1.0
)

var (
	ErrUnsupportedSides = errors.New("config: only triangles (sides: 3) are supported")
	ErrInvalidWindow    = errors.New("config: window width and height must be positive")
	ErrInvalidTimeStep  = errors.New("config: time_step must be positive")
	ErrInvalidMaxRings  = errors.New("config: max_rings must not be negative")
	ErrUnknownPreset    = errors.New("config: unknown preset")
)

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	TimeStep  float64         `yaml:"time_step"`
	Duration  float64         `yaml:"duration"`
	Mosaic    MosaicConfig    `yaml:"mosaic"`
	Style     StyleConfig     `yaml:"style"`
	Animation AnimationConfig `yaml:"animation"`
}

type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
}

type MosaicConfig struct {
	Sides int `yaml:"sides"`
	// Radius of every triangle. Zero derives it from the window as
	// (width+height)/RadiusDivisor.
	Radius        float64 `yaml:"radius"`
	RadiusDivisor float64 `yaml:"radius_divisor"`
	GapX          float64 `yaml:"gap_x"`
	GapY          float64 `yaml:"gap_y"`
	Z             float64 `yaml:"z"`
	// MaxRings caps the expansion. Zero selects mosaic.DefaultMaxRings.
	MaxRings int `yaml:"max_rings"`
}

type StyleConfig struct {
	Stroke    string  `yaml:"stroke"`
	Fill      string  `yaml:"fill"`
	LineWidth float64 `yaml:"line_width"`
}

type AnimationConfig struct {
	HueRate float64 `yaml:"hue_rate"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      DefaultTitle,
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			Background: DefaultBackground,
		},
		TimeStep: DefaultTimeStep,
		Duration: DefaultDuration,
		Mosaic: MosaicConfig{
			Sides:         DefaultSides,
			RadiusDivisor: DefaultRadiusDivisor,
			GapX:          DefaultGap,
			GapY:          DefaultGap,
			MaxRings:      mosaic.DefaultMaxRings,
		},
		Style: StyleConfig{
			Stroke:    DefaultStroke,
			Fill:      DefaultFill,
			LineWidth: DefaultLineWidth,
		},
		Animation: AnimationConfig{
			HueRate: anim.DefaultHueRate,
		},
	}
}

// Load reads a YAML file over the defaults. Fields missing from the file
// keep their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve layers a preset and a config file over the defaults. Fields
// set in the file win over the preset.
func Resolve(preset, path string) (*Config, error) {
	cfg := DefaultConfig()
	if preset != "" {
		if cfg = GetPreset(preset); cfg == nil {
			return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, preset, ListPresets())
		}
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Size() mosaic.Size {
	return mosaic.Size{Width: float64(c.Window.Width), Height: float64(c.Window.Height)}
}

// TriangleRadius is the configured radius, or the window-derived one when unset.
func (c *Config) TriangleRadius() float64 {
	if c.Mosaic.Radius != 0 {
		return c.Mosaic.Radius
	}
	if c.Mosaic.RadiusDivisor <= 0 {
		return 0
	}
	return float64(c.Window.Width+c.Window.Height) / c.Mosaic.RadiusDivisor
}

func (c *Config) Gap() mosaic.Gap {
	return mosaic.Gap{X: c.Mosaic.GapX, Y: c.Mosaic.GapY}
}

func (c *Config) StrokeColor() mosaic.Color     { return ParseColor(c.Style.Stroke) }
func (c *Config) FillColor() mosaic.Color       { return ParseColor(c.Style.Fill) }
func (c *Config) BackgroundColor() mosaic.Color { return ParseColor(c.Window.Background) }

// Builder returns the generation pass described by the config.
func (c *Config) Builder() mosaic.Builder {
	maxRings := c.Mosaic.MaxRings
	if maxRings == 0 {
		maxRings = mosaic.DefaultMaxRings
	}
	return mosaic.NewBuilder().
		WithSize(float64(c.Window.Width), float64(c.Window.Height)).
		WithRadius(c.TriangleRadius()).
		WithGap(c.Mosaic.GapX, c.Mosaic.GapY).
		WithZ(c.Mosaic.Z).
		WithColors(c.StrokeColor(), c.FillColor()).
		WithMaxRings(maxRings)
}

func (c *Config) Validate() error {
	if c.Mosaic.Sides != DefaultSides {
		return fmt.Errorf("%w (got %d)", ErrUnsupportedSides, c.Mosaic.Sides)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w (got %dx%d)", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	if c.TimeStep <= 0 {
		return fmt.Errorf("%w (got %g)", ErrInvalidTimeStep, c.TimeStep)
	}
	if c.Mosaic.MaxRings < 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidMaxRings, c.Mosaic.MaxRings)
	}
	return mosaic.Validate(c.Size(), c.TriangleRadius(), c.Gap())
}

// ParseColor accepts "#rgb", "#rgba", "#rrggbb", "#rrggbbaa", or
// "none"/"transparent".
func ParseColor(s string) mosaic.Color {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "transparent":
		return mosaic.Transparent
	}
	c := gg.Hex(strings.TrimSpace(s))
	return mosaic.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
