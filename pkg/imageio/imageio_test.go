package imageio

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediakit/nv12/pkg/frame"
)

func testImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 40),
				G: uint8(y * 40),
				B: uint8((x + y) * 20),
				A: 255,
			})
		}
	}
	return img
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	require.ErrorIs(t, err, frame.ErrNotFound)
}

func TestLoadUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, frame.ErrFormat)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := testImage(6, 4)

	// PNG and BMP are lossless, pixels must survive exactly.
	for _, name := range []string{"out.png", "out.bmp"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(src, path))

		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, src.Bounds(), got.Bounds(), name)
		assert.Equal(t, src.Pix, got.Pix, name)
	}
}

func TestSaveUnknownExtension(t *testing.T) {
	err := Save(testImage(2, 2), filepath.Join(t.TempDir(), "out.xyz"))
	require.ErrorIs(t, err, frame.ErrFormat)
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.yuv")
	data := []byte{1, 2, 3, 4}

	require.NoError(t, WriteFileAtomic(path, data))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// No temp files may survive the rename.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "frame.yuv", entries[0].Name())
}

func TestFitEven(t *testing.T) {
	even := testImage(4, 4)
	assert.Equal(t, image.Image(even), FitEven(even, nil), "even input must pass through untouched")

	fitted := FitEven(testImage(5, 4), nil)
	assert.Equal(t, image.Rect(0, 0, 4, 4), fitted.Bounds())

	fitted = FitEven(testImage(5, 7), ScalerNearestNeighbor)
	assert.Equal(t, image.Rect(0, 0, 4, 6), fitted.Bounds())
}
