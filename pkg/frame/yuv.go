package frame

// Full-range BT.601 conversion. Each channel is computed in float32, clamped
// to [0,255], then truncated to uint8. Values outside the range saturate,
// they never wrap. The two directions are not bit-exact inverses; the
// quantization loss is inherent to the format.

func rgbToYUV(r, g, b uint8) (uint8, uint8, uint8) {
	rf := float32(r)
	gf := float32(g)
	bf := float32(b)

	y := 0.299*rf + 0.587*gf + 0.114*bf
	u := -0.168736*rf - 0.331264*gf + 0.5*bf + 128
	v := 0.5*rf - 0.418688*gf - 0.081312*bf + 128

	return clampU8(y), clampU8(u), clampU8(v)
}

func yuvToRGB(y, u, v uint8) (uint8, uint8, uint8) {
	yf := float32(y)
	uf := float32(u) - 128
	vf := float32(v) - 128

	r := yf + 1.402*vf
	g := yf - 0.344136*uf - 0.714136*vf
	b := yf + 1.772*uf

	return clampU8(r), clampU8(g), clampU8(b)
}

func clampU8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
