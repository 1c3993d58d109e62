package render

import (
	"image"
	"strings"

	"go.jacobcolvin.com/asciiplay/palette"
)

// Text renders img as glyph text: one line per pixel row, top to bottom, each
// terminated by "\n", with one glyph per pixel, left to right.
func Text(img *image.RGBA, p *palette.Palette) string {
	var sb strings.Builder

	writeText(&sb, img, p)

	return sb.String()
}

// TextAll renders every frame with [Text].
func TextAll(frames []*image.RGBA, p *palette.Palette) []string {
	out := make([]string, 0, len(frames))

	var sb strings.Builder

	for _, f := range frames {
		sb.Reset()
		writeText(&sb, f, p)
		out = append(out, sb.String())
	}

	return out
}

func writeText(sb *strings.Builder, img *image.RGBA, p *palette.Palette) {
	b := img.Bounds()

	// Block glyphs are three bytes in UTF-8.
	sb.Grow(b.Dy() * (b.Dx()*3 + 1))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := img.RGBAAt(x, y)
			sb.WriteString(p.Nearest(palette.Color{R: px.R, G: px.G, B: px.B}).Glyph)
		}

		sb.WriteByte('\n')
	}
}
