package frame

// Return a function to get the number of bytes a frame will occupy in the given format
var FrameSizeMap = map[Format]frameSizeFunc{
	FormatNV12: frameSizeNV12,
}

type frameSizeFunc func(width, height int) uint

func frameSizeNV12(width, height int) uint {
	yi := width * height
	ci := yi + yi/2
	return uint(ci)
}
