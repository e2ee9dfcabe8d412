package frame

// subsamplePlane reduces a width x height plane to half resolution in both
// dimensions by keeping the top-left sample of each 2x2 block. Point
// sampling, not block averaging: files already written with this layout
// depend on these exact bytes.
func subsamplePlane(plane []byte, width, height int) []byte {
	halfW := width / 2
	halfH := height / 2
	out := make([]byte, halfW*halfH)

	i := 0
	for y := 0; y < height; y += 2 {
		row := plane[y*width : y*width+width]
		for x := 0; x < width; x += 2 {
			out[i] = row[x]
			i++
		}
	}
	return out
}

// upsamplePlane expands a halfW x halfH plane back to full resolution by
// replicating every sample into its 2x2 block.
func upsamplePlane(plane []byte, halfW, halfH int) []byte {
	width := 2 * halfW
	out := make([]byte, width*2*halfH)

	for y := 0; y < halfH; y++ {
		src := plane[y*halfW : y*halfW+halfW]
		top := out[2*y*width : 2*y*width+width]
		for x, s := range src {
			top[2*x] = s
			top[2*x+1] = s
		}
		copy(out[(2*y+1)*width:(2*y+2)*width], top)
	}
	return out
}
