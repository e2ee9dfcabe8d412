package frame

type Format string

const (
	// FormatNV12 https://www.fourcc.org/pixel-format/yuv-nv12/
	//
	// Full-resolution Y plane followed by one interleaved half-resolution
	// chroma plane (U,V,U,V,...). Samples are full-range BT.601.
	FormatNV12 Format = "NV12"
)
