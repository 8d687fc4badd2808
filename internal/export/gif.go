package export

import (
	"image"
	"image/color/palette"
	"image/gif"
	"io"

	"golang.org/x/image/draw"

	"github.com/san-kum/trimosaic/internal/anim"
	"github.com/san-kum/trimosaic/internal/mosaic"
	"github.com/san-kum/trimosaic/internal/sim"
)

// Recorder collects frames of a running cycle into an animated GIF.
type Recorder struct {
	size     mosaic.Size
	style    Style
	maxWidth int
	delay    int
	frames   []*image.Paletted
}

// NewRecorder records frames of the given viewport. Frames wider than
// maxWidth are downscaled; fps sets the playback rate.
func NewRecorder(size mosaic.Size, style Style, maxWidth, fps int) *Recorder {
	delay := 2
	if fps > 0 {
		delay = 100 / fps
		if delay < 1 {
			delay = 1
		}
	}
	return &Recorder{size: size, style: style, maxWidth: maxWidth, delay: delay}
}

// Capture renders the current state of shapes as the next frame.
func (r *Recorder) Capture(shapes []anim.Shape) error {
	im, err := Render(shapes, r.size, r.style)
	if err != nil {
		return err
	}
	defer im.Close()

	src := Downscale(im.Image(), r.maxWidth)
	pal := image.NewPaletted(src.Bounds(), palette.WebSafe)
	draw.FloydSteinberg.Draw(pal, pal.Bounds(), src, src.Bounds().Min)
	r.frames = append(r.frames, pal)
	return nil
}

func (r *Recorder) Len() int { return len(r.frames) }

// Reset drops all captured frames.
func (r *Recorder) Reset() { r.frames = nil }

// Encode writes the captured frames as a looping GIF.
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	g := gif.GIF{LoopCount: 0}
	for _, f := range r.frames {
		g.Image = append(g.Image, f)
		g.Delay = append(g.Delay, r.delay)
	}
	sim.Logger().Debug("gif encoded", "frames", len(r.frames), "delay", r.delay)
	return gif.EncodeAll(w, &g)
}
