// Package render turns decoded frames into monochrome glyph text.
//
// [Resize] stretches a frame to the glyph grid, one pixel per terminal cell,
// using bilinear interpolation. [Text] then replaces each pixel with the
// glyph of its nearest palette shade, producing one line per pixel row.
//
// Every line of the result holds exactly as many glyphs as the grid is wide,
// so consecutive frames can be drawn over each other without clearing the
// screen.
package render
