package viz

import (
	"math"

	"github.com/san-kum/trimosaic/internal/mosaic"
)

// Point is a dot position on a canvas.
type Point struct{ X, Y int }

// Projection maps y-up world coordinates centred on the origin onto
// canvas dots, fitting the whole viewport.
type Projection struct {
	scale  float64
	cx, cy float64
}

func NewProjection(viewport mosaic.Size, c *Canvas) Projection {
	w, h := float64(c.SubWidth()), float64(c.SubHeight())
	scale := 0.0
	if viewport.Width > 0 && viewport.Height > 0 {
		scale = math.Min(w/viewport.Width, h/viewport.Height)
	}
	return Projection{scale: scale, cx: w / 2, cy: h / 2}
}

func (p Projection) Scale() float64 { return p.scale }

func (p Projection) Point(v mosaic.Vec2) Point {
	return Point{
		X: int(math.Round(p.cx + v.X*p.scale)),
		Y: int(math.Round(p.cy - v.Y*p.scale)),
	}
}

func (p Projection) Points(vs []mosaic.Vec2) []Point {
	out := make([]Point, len(vs))
	for i, v := range vs {
		out[i] = p.Point(v)
	}
	return out
}
