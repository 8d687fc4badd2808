package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/trimosaic/internal/anim"
	"github.com/san-kum/trimosaic/internal/mosaic"
)

// WriteSVG writes shapes as SVG polygons in the same screen layout Render
// uses.
func WriteSVG(w io.Writer, shapes []anim.Shape, size mosaic.Size, style Style) error {
	if size.Width <= 0 || size.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrEmptyFrame, size.Width, size.Height)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" %s/>
`, size.Width, size.Height, size.Width, size.Height, paint("fill", style.Background))

	lw := style.LineWidth
	if lw <= 0 {
		lw = 1
	}
	fmt.Fprintf(&sb, "<g stroke-width=\"%g\">\n", lw)

	cx, cy := size.Width/2, size.Height/2
	for _, s := range shapes {
		if s.Stroke.A <= 0 && s.Fill.A <= 0 {
			continue
		}
		sb.WriteString(`<polygon points="`)
		for i, p := range s.Vertices() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%.2f,%.2f", cx+p.X, cy-p.Y)
		}
		fmt.Fprintf(&sb, `" %s %s/>`+"\n", paint("fill", s.Fill), paint("stroke", s.Stroke))
	}

	sb.WriteString("</g>\n</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func paint(attr string, c mosaic.Color) string {
	if c.A <= 0 {
		return attr + `="none"`
	}
	s := fmt.Sprintf(`%s="rgb(%d,%d,%d)"`, attr, channel(c.R), channel(c.G), channel(c.B))
	if c.A < 1 {
		s += fmt.Sprintf(` %s-opacity="%.3f"`, attr, c.A)
	}
	return s
}

func channel(v float64) int {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return int(v*255 + 0.5)
}
