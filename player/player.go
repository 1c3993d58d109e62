package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/x/ansi"
)

var (
	// ErrOutput indicates writing to the terminal failed.
	ErrOutput = errors.New("terminal output")
	// ErrInvalidRate indicates a frame rate that is not a positive number.
	ErrInvalidRate = errors.New("invalid frame rate")
)

// Delay converts a frame rate to the per-frame delay, rounded to the nearest
// millisecond.
func Delay(fps float64) (time.Duration, error) {
	if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRate, fps)
	}

	return time.Duration(math.Round(1000/fps)) * time.Millisecond, nil
}

// Player writes frames to a terminal.
//
// Create instances with [New].
type Player struct {
	out   io.Writer
	buf   *bufio.Writer
	sleep func(time.Duration)
}

// Option configures a [Player].
type Option func(*Player)

// WithSleep replaces [time.Sleep] between frames.
func WithSleep(fn func(time.Duration)) Option {
	return func(p *Player) {
		p.sleep = fn
	}
}

// New creates a [Player] writing to w.
func New(w io.Writer, opts ...Option) *Player {
	p := &Player{
		out:   w,
		buf:   bufio.NewWriter(w),
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Play shows frames in order, sleeping delay after each one.
func (p *Player) Play(frames []string, delay time.Duration) (err error) {
	_, err = io.WriteString(p.out, ansi.HideCursor)
	if err != nil {
		return fmt.Errorf("%w: hiding cursor: %w", ErrOutput, err)
	}

	defer func() {
		// Bypass the buffer: it keeps any earlier write error.
		_, showErr := io.WriteString(p.out, ansi.ShowCursor)
		if showErr != nil {
			err = errors.Join(err, fmt.Errorf("%w: showing cursor: %w", ErrOutput, showErr))
		}
	}()

	for i, frame := range frames {
		err = p.draw(frame)
		if err != nil {
			return fmt.Errorf("%w: frame %d: %w", ErrOutput, i, err)
		}

		p.sleep(delay)
	}

	return nil
}

func (p *Player) draw(frame string) error {
	_, err := p.buf.WriteString(ansi.CursorHomePosition)
	if err != nil {
		return err
	}

	_, err = p.buf.WriteString(frame)
	if err != nil {
		return err
	}

	return p.buf.Flush()
}
