package anim

import "github.com/san-kum/trimosaic/internal/mosaic"

// DefaultHueRate is the stroke hue speed in degrees per second.
const DefaultHueRate = 20.0

type Option func(*Cycle)

// WithHueRate sets the hue speed in degrees per second.
func WithHueRate(deg float64) Option {
	return func(c *Cycle) { c.hueRate = deg }
}

// Cycle is the per-frame animation state of a fixed shape set. It is not
// safe for concurrent use; one goroutine owns it and calls Step once per
// frame.
type Cycle struct {
	shapes  []Shape
	initial []mosaic.Color
	hueRate float64

	cursor    int
	hasCursor bool

	frame   uint64
	elapsed float64
}

func NewCycle(shapes []Shape, opts ...Option) *Cycle {
	initial := make([]mosaic.Color, len(shapes))
	for i, s := range shapes {
		initial[i] = s.Stroke
	}
	c := &Cycle{shapes: shapes, initial: initial, hueRate: DefaultHueRate}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Step advances the animation by dt seconds.
//
// The first call only places the cursor at 0. Every later call eases
// and recolours all shapes, then moves the cursor one position forward,
// wrapping at the end of the set. The cursor does not select which
// shapes animate.
func (c *Cycle) Step(dt float64) {
	c.frame++
	c.elapsed += dt

	if !c.hasCursor {
		c.cursor = 0
		c.hasCursor = true
		return
	}

	for i := range c.shapes {
		s := &c.shapes[i]
		if s.Transform.Scale.X <= 1 && s.Transform.Scale.Y <= 1 {
			s.Transform.Scale.X += dt
			s.Transform.Scale.Y += dt
		}
		s.Stroke = RotateHue(s.Stroke, dt*c.hueRate)
	}

	if n := len(c.shapes); c.cursor < n {
		c.cursor = (c.cursor + 1) % n
	}
}

// Cursor returns the cursor and whether it has been placed yet.
func (c *Cycle) Cursor() (int, bool) {
	return c.cursor, c.hasCursor
}

// Shapes exposes the live shape set. Views read it between steps.
func (c *Cycle) Shapes() []Shape { return c.shapes }

func (c *Cycle) Len() int         { return len(c.shapes) }
func (c *Cycle) Frame() uint64    { return c.frame }
func (c *Cycle) Elapsed() float64 { return c.elapsed }
func (c *Cycle) HueRate() float64 { return c.hueRate }

// Reset returns every shape to zero scale and its original stroke and
// removes the cursor.
func (c *Cycle) Reset() {
	for i := range c.shapes {
		c.shapes[i].Transform.Scale = Vec3{}
		c.shapes[i].Stroke = c.initial[i]
	}
	c.cursor, c.hasCursor = 0, false
	c.frame, c.elapsed = 0, 0
}
