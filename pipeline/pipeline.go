package pipeline

import (
	"image"
	"log/slog"
	"time"

	"go.jacobcolvin.com/asciiplay/palette"
	"go.jacobcolvin.com/asciiplay/render"
	"go.jacobcolvin.com/asciiplay/video"
)

// Pipeline turns an input path into frame text for a fixed grid.
//
// Create instances with [Config.NewPipeline].
type Pipeline struct {
	source  *video.Source
	palette *palette.Palette
	logger  *slog.Logger
	cols    int
	rows    int
	stride  int
	delay   time.Duration
}

// Option configures a [Pipeline].
type Option func(*Pipeline)

// WithSource replaces the frame source.
func WithSource(s *video.Source) Option {
	return func(p *Pipeline) {
		p.source = s
	}
}

// WithLogger sets the logger used for stage output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// Size returns the grid width and height in glyphs.
func (p *Pipeline) Size() (cols, rows int) {
	return p.cols, p.rows
}

// Delay returns the pause between displayed frames.
func (p *Pipeline) Delay() time.Duration {
	return p.delay
}

// Palette returns the palette used by [Pipeline.Text].
func (p *Pipeline) Palette() *palette.Palette {
	return p.palette
}

// Frames decodes path, drops frames by stride and resizes the rest to the
// grid.
func (p *Pipeline) Frames(path string) ([]*image.RGBA, error) {
	start := time.Now()

	raw, err := p.source.Open(path)
	if err != nil {
		return nil, err
	}

	selected := video.Select(raw, p.stride)

	p.logger.Debug("selected frames",
		slog.Int("decoded", len(raw)),
		slog.Int("kept", len(selected)),
		slog.Int("stride", p.stride),
	)

	scaled, err := render.ResizeAll(selected, p.cols, p.rows)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("resized frames",
		slog.Int("frames", len(scaled)),
		slog.Int("cols", p.cols),
		slog.Int("rows", p.rows),
		slog.Duration("elapsed", time.Since(start)),
	)

	return scaled, nil
}

// Text renders one resized frame.
func (p *Pipeline) Text(frame *image.RGBA) string {
	return render.Text(frame, p.palette)
}

// TextAll renders every resized frame.
func (p *Pipeline) TextAll(frames []*image.RGBA) []string {
	return render.TextAll(frames, p.palette)
}
