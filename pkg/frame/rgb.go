package frame

import "image"

// toRGBA converts src to *image.RGBA
// Note: no-op when src already is one
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
