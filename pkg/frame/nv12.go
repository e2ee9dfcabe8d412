package frame

import (
	"fmt"
	"image"
)

// encodeNV12 serializes img into the NV12 byte layout: the full-resolution
// Y plane in row-major order, then one row-major half-resolution plane of
// interleaved U,V pairs. The output is exactly width*height*3/2 bytes.
//
// Validation happens before any conversion work, so a failed call produces
// no output at all.
func encodeNV12(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width%2 != 0 || height%2 != 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrOddDimensions, width, height)
	}

	rgba := toRGBA(img)
	yi := width * height

	y := make([]byte, yi)
	u := make([]byte, yi)
	v := make([]byte, yi)

	i := 0
	for row := 0; row < height; row++ {
		o := rgba.PixOffset(rgba.Rect.Min.X, rgba.Rect.Min.Y+row)
		for col := 0; col < width; col++ {
			px := rgba.Pix[o : o+4 : o+4]
			y[i], u[i], v[i] = rgbToYUV(px[0], px[1], px[2])
			i++
			o += 4
		}
	}

	uSub := subsamplePlane(u, width, height)
	vSub := subsamplePlane(v, width, height)

	out := make([]byte, yi+yi/2)
	copy(out, y)
	for j, o := 0, yi; j < len(uSub); j++ {
		out[o] = uSub[j]
		out[o+1] = vSub[j]
		o += 2
	}
	return out, nil
}

// decodeNV12 parses an NV12 frame buffer into an RGB image. The layout
// carries no header, so width and height must be supplied by the caller and
// the buffer length must match them exactly.
//
// Two dimension pairs with the same product are indistinguishable from the
// bytes alone; decoding with a plausible but wrong pair succeeds and yields
// a scrambled image. That is a limitation of the format, not of the decoder.
func decodeNV12(frame []byte, width, height int) (image.Image, func(), error) {
	if width%2 != 0 || height%2 != 0 {
		return nil, func() {}, fmt.Errorf("%w: got %dx%d", ErrOddDimensions, width, height)
	}

	yi := width * height
	fi := yi + yi/2
	if len(frame) != fi {
		return nil, func() {}, fmt.Errorf("%w: expected %d bytes for %dx%d, got %d",
			ErrSizeMismatch, fi, width, height, len(frame))
	}

	halfW := width / 2
	halfH := height / 2

	uSub := make([]byte, halfW*halfH)
	vSub := make([]byte, halfW*halfH)
	slow := 0
	for i := yi; i < fi; i += 2 {
		uSub[slow] = frame[i]
		vSub[slow] = frame[i+1]
		slow++
	}

	u := upsamplePlane(uSub, halfW, halfH)
	v := upsamplePlane(vSub, halfW, halfH)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for p := 0; p < yi; p++ {
		r, g, b := yuvToRGB(frame[p], u[p], v[p])
		o := p * 4
		img.Pix[o+0] = r
		img.Pix[o+1] = g
		img.Pix[o+2] = b
		img.Pix[o+3] = 0xFF
	}
	return img, func() {}, nil
}
