package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"tight": with(func(c *Config) {
		c.Mosaic.GapX, c.Mosaic.GapY = 1.0, 1.0
	}),
	"sparse": with(func(c *Config) {
		c.Mosaic.GapX, c.Mosaic.GapY = 1.5, 1.5
	}),
	"fine": with(func(c *Config) {
		c.Mosaic.RadiusDivisor = 500
	}),
	"coarse": with(func(c *Config) {
		c.Mosaic.RadiusDivisor = 120
	}),
	"outline": with(func(c *Config) {
		c.Style.Stroke = "#ffffff"
		c.Style.LineWidth = 2
	}),
	"filled": with(func(c *Config) {
		c.Style.Fill = "#ffffff20"
	}),
	"small": with(func(c *Config) {
		c.Window.Width, c.Window.Height = 800, 600
	}),
	"slow": with(func(c *Config) {
		c.Animation.HueRate = 5
	}),
}

func with(apply func(*Config)) *Config {
	c := DefaultConfig()
	apply(c)
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var presetInfo = map[string]string{
	"default": "1920x1080, gap 1.1",
	"tight":   "edge to edge",
	"sparse":  "wide gaps",
	"fine":    "many small triangles",
	"coarse":  "few large triangles",
	"outline": "white outlines, thick lines",
	"filled":  "translucent white fill",
	"small":   "800x600 window",
	"slow":    "hue turns at 5°/s",
}

// Describe returns a one line summary of a preset.
func Describe(name string) string { return presetInfo[name] }
