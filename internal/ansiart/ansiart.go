// Package ansiart renders card images as terminal art using upper half block
// characters, two pixel rows per text row.
package ansiart

import (
	"crypto/md5"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

const (
	DefaultWidth  = 40
	DefaultHeight = 29 // card images are roughly 59:86

	halfBlock = '▀'
)

var ErrInvalidSize = errors.New("art size must be at least 1x1")

// Render converts img into width x height cells of 24-bit colour art.
func Render(img image.Image, width, height int) (string, error) {
	if width < 1 || height < 1 {
		return "", fmt.Errorf("%w (got %dx%d)", ErrInvalidSize, width, height)
	}
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var b strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			top := average(colorAt(resized, x, y), colorAt(resized, x+1, y))
			bottom := average(colorAt(resized, x, y+1), colorAt(resized, x+1, y+1))
			b.WriteString(cell(top, bottom))
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

// RenderFile renders the image at path, reusing an earlier rendering stored
// in cacheDir. An empty cacheDir disables caching.
func RenderFile(path, cacheDir string, width, height int) (string, error) {
	if width < 1 || height < 1 {
		return "", fmt.Errorf("%w (got %dx%d)", ErrInvalidSize, width, height)
	}

	var cachePath string
	if cacheDir != "" {
		key := fmt.Sprintf("%s:%dx%d", path, width, height)
		cachePath = filepath.Join(cacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))
		if data, err := os.ReadFile(cachePath); err == nil {
			return string(data), nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}
	art, err := Render(img, width, height)
	if err != nil {
		return "", err
	}

	if cachePath != "" {
		if err := os.MkdirAll(cacheDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create ANSI cache directory: %w", err)
		}
		if err := os.WriteFile(cachePath, []byte(art), 0644); err != nil {
			return "", fmt.Errorf("failed to write ANSI art to file: %w", err)
		}
	}
	return art, nil
}

func colorAt(img image.Image, x, y int) colorful.Color {
	var c color.Color = color.Black
	if (image.Point{X: x, Y: y}).In(img.Bounds()) {
		c = img.At(x, y)
	}
	cf, _ := colorful.MakeColor(c)
	return cf
}

func average(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: (a.R + b.R) / 2, G: (a.G + b.G) / 2, B: (a.B + b.B) / 2}
}

func cell(fg, bg colorful.Color) string {
	r1, g1, b1 := fg.Clamped().RGB255()
	r2, g2, b2 := bg.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m", r1, g1, b1, r2, g2, b2, halfBlock)
}
