package anim

import "github.com/san-kum/trimosaic/internal/mosaic"

type Vec3 struct {
	X, Y, Z float64
}

// Transform places a shape: translate, rotate about Z, scale.
type Transform struct {
	Translation Vec3
	Rotation    float64
	Scale       Vec3
}

// Shape is a triangle handed to a view. Only Scale and Stroke change
// after materialization.
type Shape struct {
	Sides     int
	Radius    float64
	Transform Transform
	Stroke    mosaic.Color
	Fill      mosaic.Color
}

// Materialize turns visible triangles into shapes with zero scale.
func Materialize(triangles []mosaic.Triangle, sides int) []Shape {
	shapes := make([]Shape, len(triangles))
	for i, t := range triangles {
		shapes[i] = Shape{
			Sides:  sides,
			Radius: t.Radius,
			Transform: Transform{
				Translation: Vec3{t.X, t.Y, t.Z},
				Rotation:    t.Angle,
			},
			Stroke: t.Stroke,
			Fill:   t.Fill,
		}
	}
	return shapes
}

// Vertices returns the corners in y-up world space with the transform applied.
func (s Shape) Vertices() []mosaic.Vec2 {
	c := mosaic.Vec2{X: s.Transform.Translation.X, Y: s.Transform.Translation.Y}
	pts := mosaic.RegularPolygon(s.Sides, s.Radius)
	for i, p := range pts {
		pts[i] = mosaic.Transform(p, s.Transform.Scale.X, s.Transform.Scale.Y, s.Transform.Rotation).Add(c)
	}
	return pts
}
