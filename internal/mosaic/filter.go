package mosaic

// Intersects reports whether the triangle's bounding circle overlaps the
// viewport centred on the origin.
func (t Triangle) Intersects(size Size) bool {
	hw, hh := size.Width/2, size.Height/2
	return t.X+t.Radius > -hw &&
		t.X-t.Radius < hw &&
		t.Y+t.Radius > -hh &&
		t.Y-t.Radius < hh
}

// Visible returns the triangles that intersect the viewport, in their
// original order.
func Visible(triangles []Triangle, size Size) []Triangle {
	out := make([]Triangle, 0, len(triangles))
	for _, t := range triangles {
		if t.Intersects(size) {
			out = append(out, t)
		}
	}
	return out
}
