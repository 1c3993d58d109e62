package pipeline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.jacobcolvin.com/asciiplay/autosize"
	"go.jacobcolvin.com/asciiplay/palette"
	"go.jacobcolvin.com/asciiplay/player"
	"go.jacobcolvin.com/asciiplay/video"
)

// ErrInvalidConfig indicates flag values that cannot produce a [Pipeline].
var ErrInvalidConfig = errors.New("invalid config")

// Flags holds CLI flag names for pipeline configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	FPS      string
	Autosize string
	SizeX    string
	SizeY    string
	Skip     string
	Palette  string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for the frame pipeline.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewPipeline] to create a [Pipeline].
type Config struct {
	Flags Flags

	// Palette is a YAML palette file; empty selects [palette.Default].
	Palette string

	FPS      float64
	SizeX    int
	SizeY    int
	Skip     int
	Autosize bool
}

// NewConfig returns a new [Config] with default flag names and zero values.
// Use [Config.RegisterFlags] to add CLI flags and defaults.
func NewConfig() *Config {
	f := Flags{
		FPS:      "fps",
		Autosize: "autosize",
		SizeX:    "size-x",
		SizeY:    "size-y",
		Skip:     "skip",
		Palette:  "palette",
	}

	return f.NewConfig()
}

// RegisterFlags adds pipeline flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.Float64VarP(&c.FPS, c.Flags.FPS, "f", 30, "playback frames per second")
	flags.BoolVarP(&c.Autosize, c.Flags.Autosize, "a", false,
		fmt.Sprintf("size the grid from the terminal (%d:1 columns to rows), overriding --%s and --%s",
			autosize.Aspect, c.Flags.SizeX, c.Flags.SizeY))
	flags.IntVar(&c.SizeX, c.Flags.SizeX, 120, "grid width in characters")
	flags.IntVar(&c.SizeY, c.Flags.SizeY, 40, "grid height in characters")
	flags.IntVar(&c.Skip, c.Flags.Skip, 0, "drop every Nth decoded frame, starting with the first (0 keeps all)")
	flags.StringVar(&c.Palette, c.Flags.Palette, "", "YAML palette file (default built-in block shades)")
}

// RegisterCompletions registers shell completions for pipeline flags on cmd.
// Numeric flags disable file completion; the palette flag completes YAML
// files.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.FPS, c.Flags.SizeX, c.Flags.SizeY, c.Flags.Skip} {
		err := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	err := cmd.RegisterFlagCompletionFunc(c.Flags.Palette,
		cobra.FixedCompletions([]string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Palette, err)
	}

	return nil
}

// NewPipeline validates c and creates a [Pipeline]. When autosizing is
// enabled, detect supplies the terminal size; if detection fails the explicit
// size is used.
func (c *Config) NewPipeline(detect autosize.Detector, opts ...Option) (*Pipeline, error) {
	delay, err := player.Delay(c.FPS)
	if err != nil {
		return nil, fmt.Errorf("%w: --%s: %w", ErrInvalidConfig, c.Flags.FPS, err)
	}

	if c.Skip < 0 {
		return nil, fmt.Errorf("%w: --%s must not be negative", ErrInvalidConfig, c.Flags.Skip)
	}

	pal := palette.Default()
	if c.Palette != "" {
		pal, err = palette.Load(c.Palette)
		if err != nil {
			return nil, fmt.Errorf("%w: --%s: %w", ErrInvalidConfig, c.Flags.Palette, err)
		}
	}

	p := &Pipeline{
		palette: pal,
		cols:    c.SizeX,
		rows:    c.SizeY,
		stride:  c.Skip,
		delay:   delay,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if c.Autosize && detect != nil {
		cols, rows, ok := autosize.Resolve(detect, c.SizeX, c.SizeY)
		if ok {
			p.cols, p.rows = cols, rows
		} else {
			p.logger.Warn("terminal size unavailable, using explicit size",
				slog.Int("cols", cols),
				slog.Int("rows", rows),
			)
		}
	}

	if p.source == nil {
		p.source = video.NewSource(video.WithLogger(p.logger))
	}

	return p, nil
}
