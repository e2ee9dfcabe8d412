package nv12

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediakit/nv12/pkg/frame"
	"github.com/mediakit/nv12/pkg/imageio"
)

func writeTestImage(t *testing.T, path string, width, height int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	require.NoError(t, imageio.Save(img, path))
}

func TestConvertImageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.png")
	frameFile := filepath.Join(dir, "frame.yuv")
	writeTestImage(t, input, 8, 6, color.RGBA{R: 255, A: 255})

	width, height, err := ConvertImage(input, frameFile)
	require.NoError(t, err)
	assert.Equal(t, 8, width)
	assert.Equal(t, 6, height)

	st, err := os.Stat(frameFile)
	require.NoError(t, err)
	assert.EqualValues(t, 8*6*3/2, st.Size())

	img, err := ReadFile(frameFile, width, height)
	require.NoError(t, err)

	rgba := img.(*image.RGBA)
	const tolerance = 2
	for i := 0; i < len(rgba.Pix); i += 4 {
		assert.InDelta(t, 255, rgba.Pix[i+0], tolerance)
		assert.InDelta(t, 0, rgba.Pix[i+1], tolerance)
		assert.InDelta(t, 0, rgba.Pix[i+2], tolerance)
	}
}

func TestConvertImageOddDimensions(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "odd.png")
	frameFile := filepath.Join(dir, "odd.yuv")
	writeTestImage(t, input, 5, 4, color.RGBA{R: 255, A: 255})

	_, _, err := ConvertImage(input, frameFile)
	require.ErrorIs(t, err, frame.ErrOddDimensions)

	// A failed conversion must not leave an output file behind.
	_, err = os.Stat(frameFile)
	assert.True(t, os.IsNotExist(err))
}

func TestConvertImageMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, _, err := ConvertImage(filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.yuv"))
	require.ErrorIs(t, err, frame.ErrNotFound)
}

func TestReadFileWrongDimensions(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.png")
	frameFile := filepath.Join(dir, "frame.yuv")
	writeTestImage(t, input, 8, 6, color.RGBA{G: 255, A: 255})

	_, _, err := ConvertImage(input, frameFile)
	require.NoError(t, err)

	_, err = ReadFile(frameFile, 10, 10)
	require.ErrorIs(t, err, frame.ErrSizeMismatch)

	_, err = ReadFile(filepath.Join(dir, "missing.yuv"), 8, 6)
	require.ErrorIs(t, err, frame.ErrNotFound)
}
