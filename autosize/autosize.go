// Package autosize derives the glyph grid from the terminal size.
//
// Terminal cells are roughly twice as tall as they are wide, and the grid
// keeps a fixed 4:1 column to row ratio.
package autosize

import (
	"golang.org/x/term"
)

// Aspect is the number of glyph columns per glyph row.
const Aspect = 4

// Detector reports the terminal size in cells.
type Detector func() (width, height int, err error)

// Terminal returns a [Detector] for the terminal attached to fd.
func Terminal(fd int) Detector {
	return func() (int, int, error) {
		return term.GetSize(fd)
	}
}

// Compute returns the grid for a terminal of width x height cells. The grid
// is sized from the width first; when that needs more rows than the terminal
// has, it is sized from the height instead.
func Compute(width, height int) (cols, rows int) {
	rows = width / Aspect
	cols = rows * Aspect

	if rows > height {
		rows = height
		cols = rows * Aspect
	}

	return cols, rows
}

// Resolve computes the grid from the size reported by d. When d fails, the
// explicit cols and rows are returned unchanged and ok is false.
func Resolve(d Detector, cols, rows int) (int, int, bool) {
	width, height, err := d()
	if err != nil {
		return cols, rows, false
	}

	c, r := Compute(width, height)

	return c, r, true
}
