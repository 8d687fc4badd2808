package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/trimosaic/internal/anim"
	"github.com/san-kum/trimosaic/internal/mosaic"
	"github.com/san-kum/trimosaic/internal/sim"
)

// Formats lists the still image extensions SaveFile understands.
var Formats = []string{".png", ".webp", ".svg"}

// SaveFile writes a still frame to path, choosing the encoder from the
// file extension.
func SaveFile(path string, shapes []anim.Shape, size mosaic.Size, style Style) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".webp", ".svg":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if ext == ".svg" {
		err = WriteSVG(f, shapes, size, style)
	} else {
		err = writeRaster(f, ext, shapes, size, style)
	}
	if err != nil {
		return err
	}

	sim.Logger().Info("frame saved", "path", path, "shapes", len(shapes))
	return f.Close()
}

func writeRaster(f *os.File, ext string, shapes []anim.Shape, size mosaic.Size, style Style) error {
	im, err := Render(shapes, size, style)
	if err != nil {
		return err
	}
	defer im.Close()

	if ext == ".webp" {
		return im.EncodeWebP(f)
	}
	return im.EncodePNG(f)
}

// SaveGIF writes the recorder's frames to path.
func SaveGIF(path string, r *Recorder) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := r.Encode(f); err != nil {
		return err
	}
	sim.Logger().Info("animation saved", "path", path, "frames", r.Len())
	return f.Close()
}
