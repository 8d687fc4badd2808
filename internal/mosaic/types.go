package mosaic

import "math"

// Orientations a generated triangle can take.
const (
	Upright  = 0.0
	Inverted = math.Pi
)

// Color is a straight-alpha RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Transparent is the zero colour, used for stroke and fill at generation time.
var Transparent = Color{}

// Size is the viewport extent in world units, centred on the origin.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Gap scales the spacing between neighbouring triangles. 1.0 tiles edge
// to edge; larger values open visible gaps.
type Gap struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Triangle is one regular 3-gon of the mosaic.
type Triangle struct {
	X, Y, Z float64
	Angle   float64
	Radius  float64
	Stroke  Color
	Fill    Color
}

// Side is the edge length of the triangle.
func (t Triangle) Side() float64 {
	return t.Radius * math.Sqrt(3)
}

// Center returns the triangle centre in the XY plane.
func (t Triangle) Center() Vec2 {
	return Vec2{t.X, t.Y}
}

// Flipped returns the mirrored copy used by ring expansion: orientation
// swapped and y negated.
func (t Triangle) Flipped() Triangle {
	if t.Angle == Upright {
		t.Angle = Inverted
	} else {
		t.Angle = Upright
	}
	t.Y = -t.Y
	return t
}

// Vertices returns the corners in y-up world space after scaling the
// unit shape by (sx, sy). An upright triangle points up.
func (t Triangle) Vertices(sx, sy float64) [3]Vec2 {
	var out [3]Vec2
	for i, p := range RegularPolygon(3, t.Radius) {
		out[i] = Transform(p, sx, sy, t.Angle).Add(t.Center())
	}
	return out
}

// RegularPolygon returns the corners of a regular polygon centred on the
// origin with its first corner pointing up.
func RegularPolygon(sides int, radius float64) []Vec2 {
	pts := make([]Vec2, sides)
	step := 2 * math.Pi / float64(sides)
	for i := range pts {
		a := math.Pi/2 + step*float64(i)
		pts[i] = Vec2{radius * math.Cos(a), radius * math.Sin(a)}
	}
	return pts
}

// Transform scales p, then rotates it by angle radians about the origin.
func Transform(p Vec2, sx, sy, angle float64) Vec2 {
	x, y := p.X*sx, p.Y*sy
	sin, cos := math.Sincos(angle)
	return Vec2{x*cos - y*sin, x*sin + y*cos}
}
