package palette

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

var (
	// ErrEmpty indicates a palette without any shades.
	ErrEmpty = errors.New("palette has no shades")
	// ErrInvalidGlyph indicates a glyph that is not exactly one single-cell
	// printable character.
	ErrInvalidGlyph = errors.New("invalid glyph")
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Gray returns a [Color] with all three channels set to v.
func Gray(v uint8) Color {
	return Color{R: v, G: v, B: v}
}

// Shade pairs a glyph with the reference color it stands for.
type Shade struct {
	Glyph string
	Color Color
}

// Palette is an ordered, non-empty list of shades.
//
// Create instances with [New] or [Default]. The zero value is empty and
// [Palette.Nearest] panics on it.
type Palette struct {
	shades []Shade
}

// New validates shades and returns a [Palette] holding a copy of them.
// Every glyph must be exactly one rune occupying one terminal cell.
func New(shades ...Shade) (*Palette, error) {
	if len(shades) == 0 {
		return nil, ErrEmpty
	}

	for i, s := range shades {
		err := validateGlyph(s.Glyph)
		if err != nil {
			return nil, fmt.Errorf("shade %d: %w", i, err)
		}
	}

	return &Palette{shades: append([]Shade(nil), shades...)}, nil
}

// Default returns the built-in block palette, ordered darkest to lightest.
func Default() *Palette {
	return &Palette{shades: []Shade{
		{Glyph: "█", Color: Gray(0)},
		{Glyph: "▓", Color: Gray(51)},
		{Glyph: "▒", Color: Gray(153)},
		{Glyph: "░", Color: Gray(204)},
		{Glyph: " ", Color: Gray(255)},
	}}
}

// Shades returns a copy of the palette's shades in order.
func (p *Palette) Shades() []Shade {
	return append([]Shade(nil), p.shades...)
}

// Len returns the number of shades.
func (p *Palette) Len() int {
	return len(p.shades)
}

// Nearest returns the shade closest to c by [Distance]. A later shade only
// replaces the current best when it is strictly closer, so the earliest
// shade wins ties.
func (p *Palette) Nearest(c Color) Shade {
	if len(p.shades) == 0 {
		panic(ErrEmpty)
	}

	best := p.shades[0]
	bestDist := Distance(c, best.Color)

	for _, s := range p.shades[1:] {
		d := Distance(c, s.Color)
		if d < bestDist {
			best, bestDist = s, d
		}
	}

	return best
}

// Distance returns the saturating squared distance from pixel to ref.
// Each channel contributes (pixel-ref)² when pixel > ref and 0 otherwise.
func Distance(pixel, ref Color) uint32 {
	return satSq(pixel.R, ref.R) + satSq(pixel.G, ref.G) + satSq(pixel.B, ref.B)
}

func satSq(a, b uint8) uint32 {
	if a <= b {
		return 0
	}

	d := uint32(a - b)

	return d * d
}

func validateGlyph(g string) error {
	if utf8.RuneCountInString(g) != 1 {
		return fmt.Errorf("%w: %q must be a single character", ErrInvalidGlyph, g)
	}

	r, _ := utf8.DecodeRuneInString(g)
	if r == utf8.RuneError {
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidGlyph, g)
	}

	if ansi.StringWidth(g) != 1 {
		return fmt.Errorf("%w: %q must occupy exactly one terminal cell", ErrInvalidGlyph, g)
	}

	return nil
}
