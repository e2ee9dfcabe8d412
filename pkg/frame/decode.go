package frame

import (
	"fmt"
)

func NewDecoder(f Format) (Decoder, error) {
	switch f {
	case FormatNV12:
		return decoderFunc(decodeNV12), nil
	default:
		return nil, fmt.Errorf("%w: %s is not supported", ErrFormat, f)
	}
}

func NewEncoder(f Format) (Encoder, error) {
	switch f {
	case FormatNV12:
		return encoderFunc(encodeNV12), nil
	default:
		return nil, fmt.Errorf("%w: %s is not supported", ErrFormat, f)
	}
}
