package imageio

import (
	"image"

	"golang.org/x/image/draw"
)

// Scaler represents scaling algorithm
type Scaler draw.Scaler

// List of scaling algorithms
var (
	ScalerNearestNeighbor = Scaler(draw.NearestNeighbor)
	ScalerApproxBiLinear  = Scaler(draw.ApproxBiLinear)
	ScalerBiLinear        = Scaler(draw.BiLinear)
	ScalerCatmullRom      = Scaler(draw.CatmullRom)
)

// FitEven returns img unchanged when both dimensions are already even,
// otherwise a copy scaled down by one pixel on each odd axis. Setting
// scaler=nil to use default scaler. (ScalerApproxBiLinear)
func FitEven(img image.Image, scaler Scaler) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w%2 == 0 && h%2 == 0 {
		return img
	}
	if w < 2 || h < 2 {
		return img
	}
	if scaler == nil {
		scaler = ScalerApproxBiLinear
	}

	dst := image.NewRGBA(image.Rect(0, 0, w&^1, h&^1))
	scaler.Scale(dst, dst.Rect, img, bounds, draw.Over, nil)
	return dst
}
