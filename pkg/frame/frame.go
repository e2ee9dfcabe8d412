package frame

import "image"

// Decoder parses a raw frame buffer into an image. The returned release
// function must be called once the image is no longer used.
type Decoder interface {
	Decode(frame []byte, width, height int) (image.Image, func(), error)
}

// decoderFunc is a proxy type for Decoder
type decoderFunc func(frame []byte, width, height int) (image.Image, func(), error)

func (f decoderFunc) Decode(frame []byte, width, height int) (image.Image, func(), error) {
	return f(frame, width, height)
}

// Encoder serializes an image into a raw frame buffer.
type Encoder interface {
	Encode(img image.Image) ([]byte, error)
}

// encoderFunc is a proxy type for Encoder
type encoderFunc func(img image.Image) ([]byte, error)

func (f encoderFunc) Encode(img image.Image) ([]byte, error) {
	return f(img)
}
