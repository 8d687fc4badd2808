package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/trimosaic/internal/mosaic"
)

// drawShapes paints every shape with a visible stroke or fill. World
// space is y-up around the window centre.
func (a *App) drawShapes() {
	cx, cy := a.Viewport.Width/2, a.Viewport.Height/2
	thick := float32(a.Opts.LineWidth)

	for _, s := range a.Cycle.Shapes() {
		if s.Stroke.A <= 0 && s.Fill.A <= 0 {
			continue
		}
		pts := s.Vertices()
		if len(pts) != 3 {
			continue
		}
		v := [3]rl.Vector2{}
		for i, p := range pts {
			v[i] = rl.NewVector2(float32(cx+p.X), float32(cy-p.Y))
		}

		if s.Fill.A > 0 {
			// corners are counter-clockwise on screen, as raylib expects
			rl.DrawTriangle(v[0], v[1], v[2], toColor(s.Fill))
		}
		if s.Stroke.A <= 0 {
			continue
		}
		col := toColor(s.Stroke)
		if thick > 1 {
			for i := range v {
				rl.DrawLineEx(v[i], v[(i+1)%3], thick, col)
			}
		} else {
			rl.DrawTriangleLines(v[0], v[1], v[2], col)
		}
	}
}

func toColor(c mosaic.Color) rl.Color {
	return rl.NewColor(channel(c.R), channel(c.G), channel(c.B), channel(c.A))
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
