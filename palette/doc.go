// Package palette maps pixel colors to printable glyphs.
//
// A [Palette] is an ordered, non-empty list of [Shade] values, each pairing a
// single-cell glyph with a reference [Color]. [Palette.Nearest] picks the
// shade whose reference color is closest to a pixel according to [Distance].
//
// [Distance] is a saturating squared distance: for each channel the
// difference pixel-reference is clamped at zero before squaring. A pixel is
// therefore never penalized for being darker than a reference color on some
// channel, which biases matches toward the earlier (darker) shades of a
// palette ordered darkest to lightest. Ties go to the shade that appears
// first.
//
// Palettes can be built in code with [New], taken from [Default], or loaded
// from a YAML file with [Load]. Files are validated against [Schema] before
// decoding:
//
//	shades:
//	  - glyph: "█"
//	    color: "#000000"
//	  - glyph: " "
//	    color: "#ffffff"
package palette
