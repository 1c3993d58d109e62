package video

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // Register JPEG frames.
	_ "image/png"  // Register PNG frames.
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP frames.
	_ "golang.org/x/image/webp" // Register WebP frames.
)

// FrameExtensions lists the file extensions read from image sequence
// directories.
var FrameExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".webp"}

// loadDir decodes all frame images in dir, sorted by filename.
func loadDir(dir string) ([]*image.RGBA, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		if slices.Contains(FrameExtensions, strings.ToLower(filepath.Ext(e.Name()))) {
			names = append(names, e.Name())
		}
	}

	slices.Sort(names)

	frames := make([]*image.RGBA, 0, len(names))

	for _, name := range names {
		img, err := decodeImage(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}

		frames = append(frames, toRGBA(img))
	}

	return frames, nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // Frame paths come from the user's input directory.
	if err != nil {
		return nil, err
	}

	defer func() {
		closeErr := f.Close()
		if closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: closing %s: %v\n", path, closeErr)
		}
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	return img, nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)

	return dst
}
