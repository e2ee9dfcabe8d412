// Package nv12info inspects files that may hold raw NV12 frames.
//
// The NV12 layout has no header, so everything here is a best-effort guess
// from the byte count and the file extension. Nothing in this package is
// authoritative and the codec itself never depends on it.
package nv12info

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/mediakit/nv12/pkg/frame"
)

// Dimension is one candidate (width, height) pair for a raw frame file.
type Dimension struct {
	Width  int
	Height int
}

func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Info describes a file as far as it can be known without out-of-band data.
type Info struct {
	Path        string
	Size        int64
	Format      string
	IsImage     bool
	Width       int // image files only, 0 when unknown
	Height      int
	TotalPixels int64       // raw frame files only
	Suggested   []Dimension // raw frame files only, advisory
}

// Known image container extensions and their display names. Extension checks
// are advisory: they catch the common mistake of pointing the raw-frame
// reader at an image file, nothing more.
var imageFormats = map[string]string{
	".jpg":  "JPEG Image",
	".jpeg": "JPEG Image",
	".png":  "PNG Image",
	".bmp":  "BMP Image",
	".gif":  "GIF Image",
	".tif":  "TIFF Image",
	".tiff": "TIFF Image",
	".webp": "WebP Image",
}

// IsImageExt reports whether path carries a known image container extension.
func IsImageExt(path string) bool {
	_, ok := imageFormats[strings.ToLower(filepath.Ext(path))]
	return ok
}

const (
	maxSuggestedWidth = 10000
	maxSuggestions    = 5
)

// SuggestDimensions lists even (width, height) pairs whose NV12 frame size
// equals byteCount, in ascending width order, at most limit entries. Many
// pairs share a byte count; the caller has to know which one is right.
func SuggestDimensions(byteCount int64, limit int) []Dimension {
	if limit <= 0 || byteCount <= 0 || byteCount%3 != 0 {
		return nil
	}
	pixels := byteCount * 2 / 3

	var dims []Dimension
	for w := int64(2); w <= maxSuggestedWidth && len(dims) < limit; w += 2 {
		if pixels%w != 0 {
			continue
		}
		h := pixels / w
		if h%2 != 0 {
			continue
		}
		dims = append(dims, Dimension{Width: int(w), Height: int(h)})
	}
	return dims
}

// Inspect stats and classifies the file at path. Files with a known image
// extension are probed with image.DecodeConfig for their dimensions; every
// other file is assumed to be a raw NV12 frame.
func Inspect(path string) (*Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", frame.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", frame.ErrIO, err)
	}

	info := &Info{
		Path: path,
		Size: st.Size(),
	}

	ext := strings.ToLower(filepath.Ext(path))
	if name, ok := imageFormats[ext]; ok {
		info.IsImage = true
		info.Format = name
		if w, h, err := decodeConfig(path); err == nil {
			info.Width = w
			info.Height = h
		}
		return info, nil
	}

	info.Format = "YUV420 NV12"
	info.TotalPixels = info.Size * 2 / 3
	info.Suggested = SuggestDimensions(info.Size, maxSuggestions)
	return info, nil
}

func decodeConfig(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
