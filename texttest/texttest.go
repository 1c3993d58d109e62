// Package texttest provides helpers for tests that build frames and compare
// rendered frame text.
package texttest

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Frame joins rows into rendered frame text, terminating every row with LF.
//
// Example:
//
//	want := texttest.Frame(
//		"█ ",
//		" █",
//	) // -> "█ \n █\n"
func Frame(rows ...string) string {
	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(r)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Image builds a w x h RGBA image from row-major pixels. It panics when the
// pixel count does not match.
func Image(w, h int, pixels ...color.RGBA) *image.RGBA {
	if len(pixels) != w*h {
		panic(fmt.Sprintf("texttest: got %d pixels for %dx%d image", len(pixels), w, h))
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, p := range pixels {
		img.SetRGBA(i%w, i/w, p)
	}

	return img
}

// Fill returns a w x h image filled with c.
func Fill(w, h int, c color.RGBA) *image.RGBA {
	pixels := make([]color.RGBA, w*h)
	for i := range pixels {
		pixels[i] = c
	}

	return Image(w, h, pixels...)
}

// Gray returns an opaque gray color.
func Gray(v uint8) color.RGBA {
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// Rows splits frame text into its rows, dropping the final LF terminator.
func Rows(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
