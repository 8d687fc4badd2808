package mosaic

import "math"

// DefaultMaxRings caps a pass at 4^10 (about one million) triangles.
const DefaultMaxRings = 10

// deviations holds the three per-ring offsets.
type deviations struct {
	a, b, c Vec2
}

func newDeviations(radius float64, gap Gap) deviations {
	half := radius * math.Sqrt(3) / 2
	return deviations{
		a: Vec2{half * gap.X, radius / 2 * gap.Y},
		b: Vec2{-half * gap.X, radius / 2 * gap.Y},
		c: Vec2{0, -radius * gap.Y},
	}
}

// fits is the loop bound: the deviations still reach inside the viewport.
func (d deviations) fits(size Size) bool {
	return d.a.X <= size.Width &&
		d.a.Y <= size.Height &&
		d.b.X <= 0 &&
		d.b.Y <= size.Height &&
		d.c.Y <= size.Height
}

// grow pushes the deviations one ring outward, alternating the side in y.
func (d *deviations) grow() {
	d.a.X *= 2
	d.b.X *= 2
	d.a.Y *= -2
	d.b.Y *= -2
	d.c.Y *= -2
}

// Validate reports the first configuration fault in a pass, if any.
func Validate(size Size, radius float64, gap Gap) error {
	switch {
	case !finite(size.Width) || size.Width < 0:
		return &ConfigError{Field: "width", Value: size.Width, Wrapped: ErrInvalidViewport}
	case !finite(size.Height) || size.Height < 0:
		return &ConfigError{Field: "height", Value: size.Height, Wrapped: ErrInvalidViewport}
	case !finite(radius) || radius <= 0:
		return &ConfigError{Field: "radius", Value: radius, Wrapped: ErrInvalidRadius}
	case !finite(gap.X) || gap.X <= 0:
		return &ConfigError{Field: "gap_x", Value: gap.X, Wrapped: ErrInvalidGap}
	case !finite(gap.Y) || gap.Y <= 0:
		return &ConfigError{Field: "gap_y", Value: gap.Y, Wrapped: ErrInvalidGap}
	}
	return nil
}

// PlanRings returns how many rings a pass over size would run, stopping
// early once maxRings is exceeded. The result is maxRings+1 in that case.
func PlanRings(size Size, radius float64, gap Gap, maxRings int) (int, error) {
	if err := Validate(size, radius, gap); err != nil {
		return 0, err
	}
	d := newDeviations(radius, gap)
	rings := 0
	for d.fits(size) && rings <= maxRings {
		d.grow()
		rings++
	}
	return rings, nil
}

// Generate expands seed into the full mosaic for size using the default
// ring cap.
func Generate(size Size, seed Triangle, gap Gap) ([]Triangle, error) {
	return generate(size, seed, gap, DefaultMaxRings)
}

func generate(size Size, seed Triangle, gap Gap, maxRings int) ([]Triangle, error) {
	rings, err := PlanRings(size, seed.Radius, gap, maxRings)
	if err != nil {
		return nil, err
	}
	if rings > maxRings {
		return nil, &ConfigError{Field: "max_rings", Value: float64(maxRings), Wrapped: ErrRingLimit}
	}

	triangles := make([]Triangle, 1, Count(rings))
	triangles[0] = seed

	d := newDeviations(seed.Radius, gap)
	for i := 0; i < rings; i++ {
		n := len(triangles)
		for _, v := range [3]Vec2{d.a, d.b, d.c} {
			triangles = append(triangles, shift(triangles[:n], v)...)
		}
		d.grow()
	}
	return triangles, nil
}

// shift returns a mirrored copy of src moved by v.
func shift(src []Triangle, v Vec2) []Triangle {
	out := make([]Triangle, len(src))
	for i, t := range src {
		t = t.Flipped()
		t.X += v.X
		t.Y += v.Y
		out[i] = t
	}
	return out
}

// Count is the size of a pass that ran the given number of rings.
func Count(rings int) int {
	return 1 << (2 * rings)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
