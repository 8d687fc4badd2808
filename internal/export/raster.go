package export

import (
	"fmt"
	"image"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"github.com/gogpu/gg"

	"github.com/san-kum/trimosaic/internal/anim"
	"github.com/san-kum/trimosaic/internal/mosaic"
	"github.com/san-kum/trimosaic/internal/sim"
)

// Style controls how shapes are painted.
type Style struct {
	Background mosaic.Color
	LineWidth  float64
}

// DefaultStyle paints one pixel strokes on black.
func DefaultStyle() Style {
	return Style{Background: mosaic.Color{A: 1}, LineWidth: 1}
}

// Image is a rendered still frame. Close releases the drawing context.
type Image struct {
	dc *gg.Context
}

// Render paints shapes into a raster the size of the viewport. World
// space is y-up with the origin at the centre of the image.
func Render(shapes []anim.Shape, size mosaic.Size, style Style) (*Image, error) {
	w, h := int(size.Width), int(size.Height)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyFrame, w, h)
	}

	dc := gg.NewContext(w, h)
	dc.ClearWithColor(rgba(style.Background))
	if style.LineWidth > 0 {
		dc.SetLineWidth(style.LineWidth)
	}

	cx, cy := size.Width/2, size.Height/2
	drawn := 0
	for _, s := range shapes {
		stroke, fill := s.Stroke.A > 0, s.Fill.A > 0
		if !stroke && !fill {
			continue
		}
		pts := s.Vertices()
		if len(pts) == 0 {
			continue
		}
		dc.MoveTo(cx+pts[0].X, cy-pts[0].Y)
		for _, p := range pts[1:] {
			dc.LineTo(cx+p.X, cy-p.Y)
		}
		dc.ClosePath()

		if fill {
			dc.SetColor(rgba(s.Fill).Color())
			var err error
			if stroke {
				err = dc.FillPreserve()
			} else {
				err = dc.Fill()
			}
			if err != nil {
				dc.Close()
				return nil, fmt.Errorf("fill shape %d: %w", drawn, err)
			}
		}
		if stroke {
			dc.SetColor(rgba(s.Stroke).Color())
			if err := dc.Stroke(); err != nil {
				dc.Close()
				return nil, fmt.Errorf("stroke shape %d: %w", drawn, err)
			}
		}
		drawn++
	}

	sim.Logger().Debug("frame rendered", "shapes", len(shapes), "drawn", drawn, "width", w, "height", h)
	return &Image{dc: dc}, nil
}

func (im *Image) Image() image.Image { return im.dc.Image() }

func (im *Image) EncodePNG(w io.Writer) error { return im.dc.EncodePNG(w) }

func (im *Image) EncodeWebP(w io.Writer) error {
	return nativewebp.Encode(w, im.dc.Image(), nil)
}

func (im *Image) Close() error { return im.dc.Close() }

func rgba(c mosaic.Color) gg.RGBA {
	return gg.RGBA2(c.R, c.G, c.B, c.A)
}
