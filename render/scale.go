package render

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ErrScale indicates a frame could not be resized to the requested grid.
var ErrScale = errors.New("scale frame")

// Resize stretches img to exactly cols x rows pixels with bilinear
// interpolation. Aspect ratio is not preserved.
func Resize(img image.Image, cols, rows int) (*image.RGBA, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: invalid target size %dx%d", ErrScale, cols, rows)
	}

	srcBounds := img.Bounds()
	if srcBounds.Empty() {
		return nil, fmt.Errorf("%w: empty source frame", ErrScale)
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols, rows))
	draw.BiLinear.Scale(dst, dst.Rect, img, srcBounds, draw.Src, nil)

	return dst, nil
}

// ResizeAll resizes every frame to cols x rows, stopping at the first error.
func ResizeAll[T image.Image](frames []T, cols, rows int) ([]*image.RGBA, error) {
	out := make([]*image.RGBA, 0, len(frames))

	for i, f := range frames {
		img, err := Resize(f, cols, rows)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}

		out = append(out, img)
	}

	return out, nil
}
