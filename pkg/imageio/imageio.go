// Package imageio loads and saves RGB images in common container formats.
// It is the boundary between image files on disk and the raw frame codec;
// all failures are reported as one of the frame error kinds.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	_ "image/gif"

	_ "golang.org/x/image/webp"

	"github.com/mediakit/nv12/pkg/frame"
)

const jpegQuality = 95

// Load decodes the image at path into RGBA pixels. JPEG, PNG, GIF, BMP,
// TIFF and WebP inputs are recognized by content, not by extension.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", frame.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", frame.ErrIO, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot decode %s: %v", frame.ErrFormat, path, err)
	}
	return toRGBA(src), nil
}

// Save encodes img to path, picking the container format from the extension
// (.png, .jpg, .jpeg, .bmp, .tif, .tiff). The file is written atomically,
// a failed encode leaves nothing behind.
func Save(img image.Image, path string) error {
	var buf bytes.Buffer
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		err = png.Encode(&buf, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	case ".bmp":
		err = bmp.Encode(&buf, img)
	case ".tif", ".tiff":
		err = tiff.Encode(&buf, img, nil)
	default:
		return fmt.Errorf("%w: unsupported output extension %q", frame.ErrFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", frame.ErrIO, err)
	}
	return WriteFileAtomic(path, buf.Bytes())
}

// ReadFile reads the whole file at path, mapping boundary failures onto the
// frame error kinds. A partial read is impossible: either the full content
// comes back or an error does.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", frame.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", frame.ErrIO, err)
	}
	return data, nil
}

// toRGBA converts src to *image.RGBA
func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}

	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)

	i := 0
	for yi := bounds.Min.Y; yi < bounds.Max.Y; yi++ {
		for xi := bounds.Min.X; xi < bounds.Max.X; xi++ {
			r, g, b, a := src.At(xi, yi).RGBA()
			dst.Pix[i+0] = uint8(r / 0x100)
			dst.Pix[i+1] = uint8(g / 0x100)
			dst.Pix[i+2] = uint8(b / 0x100)
			dst.Pix[i+3] = uint8(a / 0x100)
			i += 4
		}
	}
	return dst
}
