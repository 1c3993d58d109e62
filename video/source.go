package video

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"

	vidio "github.com/AlexEidt/Vidio"
)

// ErrSource indicates the input could not be opened or decoded.
var ErrSource = errors.New("video source")

// Decoder reads frames sequentially into a shared RGBA frame buffer.
// [*vidio.Video] satisfies it.
type Decoder interface {
	Width() int
	Height() int
	// Read decodes the next frame into the frame buffer and reports whether
	// a frame was read.
	Read() bool
	FrameBuffer() []byte
	Close()
}

// DecoderFunc opens a [Decoder] for a video file.
type DecoderFunc func(path string) (Decoder, error)

// Source opens inputs and returns every frame they contain.
//
// Create instances with [NewSource].
type Source struct {
	decode DecoderFunc
	logger *slog.Logger
}

// Option configures a [Source].
type Option func(*Source)

// WithDecoder replaces the Vidio decoder used for video files.
func WithDecoder(fn DecoderFunc) Option {
	return func(s *Source) {
		s.decode = fn
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}

// NewSource creates a [Source] that decodes files with Vidio.
func NewSource(opts ...Option) *Source {
	s := &Source{
		decode: openVidio,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Open returns all frames of the video file or image directory at path, in
// order.
func (s *Source) Open(path string) ([]*image.RGBA, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSource, err)
	}

	var frames []*image.RGBA

	if info.IsDir() {
		frames, err = loadDir(path)
	} else {
		frames, err = s.decodeFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSource, path, err)
	}

	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: %s: no frames decoded", ErrSource, path)
	}

	s.logger.Debug("decoded frames",
		slog.String("path", path),
		slog.Int("frames", len(frames)),
		slog.Int("width", frames[0].Rect.Dx()),
		slog.Int("height", frames[0].Rect.Dy()),
	)

	return frames, nil
}

func (s *Source) decodeFile(path string) ([]*image.RGBA, error) {
	dec, err := s.decode(path)
	if err != nil {
		return nil, fmt.Errorf("opening decoder: %w", err)
	}

	defer dec.Close()

	return ReadAll(dec)
}

// ReadAll reads frames from dec until it reports end of stream. Each frame is
// copied out of the decoder's shared buffer.
func ReadAll(dec Decoder) ([]*image.RGBA, error) {
	w, h := dec.Width(), dec.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", w, h)
	}

	size := w * h * 4

	var frames []*image.RGBA

	for dec.Read() {
		buf := dec.FrameBuffer()
		if len(buf) < size {
			return nil, fmt.Errorf("frame %d: short buffer: got %d bytes, want %d", len(frames), len(buf), size)
		}

		img := image.NewRGBA(image.Rect(0, 0, w, h))
		copy(img.Pix, buf[:size])

		frames = append(frames, img)
	}

	return frames, nil
}

func openVidio(path string) (Decoder, error) {
	v, err := vidio.NewVideo(path)
	if err != nil {
		return nil, err
	}

	return v, nil
}
