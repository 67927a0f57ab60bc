package imageio

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 17), G: uint8(y * 13), B: 128, A: 255})
		}
	}
	return img
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := testImage(8, 6)

	for _, ext := range []string{".png", ".jpg", ".bmp", ".tiff"} {
		name := filepath.Join(dir, "out"+ext)
		require.NoError(t, Save(name, src), ext)

		got, err := Load(name)
		require.NoError(t, err, ext)
		assert.Equal(t, src.Bounds().Size(), got.Bounds().Size(), ext)
	}
}

func TestSaveUnsupportedExtension(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "out.webp"), testImage(2, 2))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestCrop(t *testing.T) {
	got := Crop(testImage(10, 10), image.Rect(2, 2, 6, 8))
	assert.Equal(t, image.Pt(4, 6), got.Bounds().Size())
}

func TestResize(t *testing.T) {
	got := Resize(testImage(10, 10), 25, 5)
	assert.Equal(t, image.Pt(25, 5), got.Bounds().Size())
}

func TestGrayscale(t *testing.T) {
	got := Grayscale(testImage(4, 4))
	px := got.RGBAAt(1, 2)
	assert.Equal(t, px.R, px.G)
	assert.Equal(t, px.G, px.B)
}

func TestFlip(t *testing.T) {
	src := testImage(4, 4)
	h := FlipH(src)
	assert.Equal(t, src.RGBAAt(0, 1), h.RGBAAt(3, 1))
	v := FlipV(src)
	assert.Equal(t, src.RGBAAt(1, 0), v.RGBAAt(1, 3))
}
