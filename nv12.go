// Package nv12 converts images to and from the raw YUV420 NV12 pixel
// layout: full-range BT.601 color, 4:2:0 chroma subsampling, one Y plane
// followed by one interleaved UV plane, no header.
//
// The functions here tie the image-file boundary to the frame codec. Code
// that already holds pixel buffers should use pkg/frame directly.
package nv12

import (
	"image"

	"github.com/mediakit/nv12/pkg/frame"
	"github.com/mediakit/nv12/pkg/imageio"
)

// ConvertImage encodes the image file at imagePath into an NV12 frame file
// at outPath and returns the frame dimensions. The output is written
// atomically; a failed conversion leaves no file behind.
//
// Both dimensions must be even or the conversion fails with
// frame.ErrOddDimensions before anything is written.
func ConvertImage(imagePath, outPath string) (width, height int, err error) {
	img, err := imageio.Load(imagePath)
	if err != nil {
		return 0, 0, err
	}

	enc, err := frame.NewEncoder(frame.FormatNV12)
	if err != nil {
		return 0, 0, err
	}
	buf, err := enc.Encode(img)
	if err != nil {
		return 0, 0, err
	}

	if err := imageio.WriteFileAtomic(outPath, buf); err != nil {
		return 0, 0, err
	}
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}

// ReadFile decodes the NV12 frame file at path into an RGB image. The
// layout stores no dimensions, so width and height must be supplied by the
// caller; a byte count that disagrees with them fails with
// frame.ErrSizeMismatch.
func ReadFile(path string, width, height int) (image.Image, error) {
	data, err := imageio.ReadFile(path)
	if err != nil {
		return nil, err
	}

	dec, err := frame.NewDecoder(frame.FormatNV12)
	if err != nil {
		return nil, err
	}
	img, _, err := dec.Decode(data, width, height)
	if err != nil {
		return nil, err
	}
	return img, nil
}
