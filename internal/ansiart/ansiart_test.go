package ansiart

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRenderDimensions(t *testing.T) {
	art, err := Render(solid(30, 40, color.RGBA{R: 200, A: 255}), 4, 3)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		require.Equal(t, 4, strings.Count(line, string(halfBlock)))
	}
}

func TestCell(t *testing.T) {
	fg, _ := colorful.MakeColor(color.RGBA{R: 255, G: 10, B: 0, A: 255})
	bg, _ := colorful.MakeColor(color.RGBA{B: 255, A: 255})

	require.Equal(t, "\x1b[38;2;255;10;0m\x1b[48;2;0;0;255m▀\x1b[0m", cell(fg, bg))
}

func TestRenderFileCaches(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "card.png")
	cacheDir := filepath.Join(dir, "cache")

	f, err := os.Create(imagePath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solid(8, 8, color.White)))
	require.NoError(t, f.Close())

	art, err := RenderFile(imagePath, cacheDir, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 4, strings.Count(art, string(halfBlock)))

	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// the cached copy is served even without the source image
	require.NoError(t, os.Remove(imagePath))
	cached, err := RenderFile(imagePath, cacheDir, 2, 2)
	require.NoError(t, err)
	require.Equal(t, art, cached)

	_, err = RenderFile(imagePath, "", 2, 2)
	require.Error(t, err)
}

func TestRenderFileRejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))

	_, err := RenderFile(path, "", 2, 2)
	require.Error(t, err)
}

func TestRenderRejectsInvalidSize(t *testing.T) {
	img := solid(4, 4, color.White)

	testCases := []struct {
		name          string
		width, height int
	}{
		{name: "negative", width: -1, height: -1},
		{name: "zero width", width: 0, height: 3},
		{name: "zero height", width: 3, height: 0},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			_, err := Render(img, test.width, test.height)
			require.ErrorIs(t, err, ErrInvalidSize)

			_, err = RenderFile("card.png", "", test.width, test.height)
			require.ErrorIs(t, err, ErrInvalidSize)
		})
	}
}
