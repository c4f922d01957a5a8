package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"golang.org/x/image/bmp"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func writeImage(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	switch filepath.Ext(path) {
	case ".png":
		require.NoError(t, png.Encode(f, img))
	case ".bmp":
		require.NoError(t, bmp.Encode(f, img))
	default:
		t.Fatalf("no encoder for %s", path)
	}
}

func TestDecodeFileFormats(t *testing.T) {
	dir := t.TempDir()
	c := color.RGBA{R: 10, G: 200, B: 30, A: 255}

	for _, name := range []string{"frame.png", "frame.bmp"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			writeImage(t, path, solid(8, 4, c))

			img, err := DecodeFile(path)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())
			assert.Equal(t, c, img.RGBAAt(3, 2))
		})
	}
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "nope.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte("not an image"), "bad.png")
	assert.Error(t, err)
}

func TestToRGBAConvertsAndRebases(t *testing.T) {
	gray := image.NewGray(image.Rect(2, 3, 6, 5))
	gray.SetGray(2, 3, color.Gray{Y: 77})

	rgba := ToRGBA(gray)
	assert.Equal(t, image.Rect(0, 0, 4, 2), rgba.Bounds())
	assert.Equal(t, color.RGBA{R: 77, G: 77, B: 77, A: 255}, rgba.RGBAAt(0, 0))
}

func TestToRGBAPassThrough(t *testing.T) {
	src := solid(2, 2, White)
	assert.Same(t, src, ToRGBA(src))
}

func TestFit(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		maxSize int
		wantW   int
		wantH   int
	}{
		{"unlimited", 64, 32, 0, 64, 32},
		{"already small", 16, 8, 32, 16, 8},
		{"landscape", 64, 32, 16, 16, 8},
		{"portrait", 32, 128, 64, 16, 64},
		{"thin keeps one pixel", 256, 1, 16, 16, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Fit(solid(tt.w, tt.h, White), tt.maxSize)
			assert.Equal(t, tt.wantW, out.Bounds().Dx())
			assert.Equal(t, tt.wantH, out.Bounds().Dy())
		})
	}
}

func TestFitKeepsSolidColour(t *testing.T) {
	c := color.RGBA{R: 40, G: 80, B: 160, A: 255}
	out := Fit(solid(32, 32, c), 8)
	got := out.RGBAAt(4, 4)
	assert.InDelta(t, c.R, got.R, 1)
	assert.InDelta(t, c.G, got.G, 1)
	assert.InDelta(t, c.B, got.B, 1)
	assert.InDelta(t, c.A, got.A, 1)
}

func TestPlaceholder(t *testing.T) {
	img := Placeholder(FlatNormal)
	assert.Equal(t, image.Rect(0, 0, 1, 1), img.Bounds())
	assert.Equal(t, FlatNormal, img.RGBAAt(0, 0))
}

func TestLoadImagesSubstitutesPlaceholder(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "1.png")
	writeImage(t, good, solid(4, 4, White))

	imgs, err := LoadImages([]string{good, filepath.Join(dir, "2.png")}, Options{Fallback: FlatHeight})
	require.NoError(t, err)
	require.Len(t, imgs, 2)
	assert.Equal(t, 4, imgs[0].Bounds().Dx())
	assert.Equal(t, 1, imgs[1].Bounds().Dx())
	assert.Equal(t, FlatHeight, imgs[1].RGBAAt(0, 0))
}

func TestLoadImagesStrictReportsEveryFailure(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "1.png")
	writeImage(t, good, solid(4, 4, White))

	missing := []string{filepath.Join(dir, "2.png"), filepath.Join(dir, "3.png")}
	imgs, err := LoadImages([]string{good, missing[0], missing[1]}, Options{Strict: true})
	require.Error(t, err)
	assert.Nil(t, imgs)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "2.png")
	assert.Contains(t, errs[1].Error(), "3.png")
}

func TestLoadImagesAppliesMaxSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.png")
	writeImage(t, path, solid(64, 64, White))

	imgs, err := LoadImages([]string{path}, Options{MaxSize: 16})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 16), imgs[0].Bounds())
}
