package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/asciiplay/autosize"
	"go.jacobcolvin.com/asciiplay/log"
	"go.jacobcolvin.com/asciiplay/pipeline"
	"go.jacobcolvin.com/asciiplay/player"
	"go.jacobcolvin.com/asciiplay/profile"
	"go.jacobcolvin.com/asciiplay/version"
)

// app holds the streams and configuration shared by all commands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	detect autosize.Detector
	logger *slog.Logger

	logCfg      *log.Config
	pipelineCfg *pipeline.Config
	profileCfg  *profile.Config

	// sleep overrides the pause between frames when set.
	sleep func(time.Duration)

	// interactive is true when stdin and stdout are terminals; it enables
	// the conversion progress view and the start prompt.
	interactive bool
	wait        bool
}

func (a *app) newRootCmd() *cobra.Command {
	a.logCfg = log.NewConfig()
	a.pipelineCfg = pipeline.NewConfig()
	a.profileCfg = profile.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "asciiplay [flags] <video_file|frame_directory>",
		Short: "Play a video in the terminal as text",
		Long: `asciiplay decodes a video (or a directory of frame images), stretches every
frame to a grid of character cells and draws each cell with the palette glyph
nearest to its color. Frames are converted up front and then played back in
place at a fixed frame rate.`,
		Version:       version.String(),
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := a.logCfg.NewLogger(a.stderr)
			if err != nil {
				return err
			}

			a.logger = logger
			slog.SetDefault(logger)

			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return a.play(args[0])
		},
	}

	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	a.logCfg.RegisterFlags(rootCmd.PersistentFlags())
	a.pipelineCfg.RegisterFlags(rootCmd.Flags())
	a.profileCfg.RegisterFlags(rootCmd.Flags())
	rootCmd.Flags().BoolVar(&a.wait, "wait", true, "wait for enter after conversion before playing")

	for _, register := range []func(*cobra.Command) error{
		a.logCfg.RegisterCompletions,
		a.pipelineCfg.RegisterCompletions,
		a.profileCfg.RegisterCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(a.stderr, "register completions: %v\n", err)
		}
	}

	rootCmd.AddCommand(a.newPaletteCmd())

	return rootCmd
}

func (a *app) play(path string) (err error) {
	if a.profileCfg.Enabled() {
		prof := a.profileCfg.NewProfiler()

		err = prof.Start()
		if err != nil {
			return err
		}

		defer func() {
			err = errors.Join(err, prof.Stop())
		}()
	}

	p, err := a.pipelineCfg.NewPipeline(a.detect, pipeline.WithLogger(a.logger))
	if err != nil {
		return err
	}

	frames, err := p.Frames(path)
	if err != nil {
		return err
	}

	texts, err := a.convert(p, frames)
	if err != nil {
		return err
	}

	var opts []player.Option
	if a.sleep != nil {
		opts = append(opts, player.WithSleep(a.sleep))
	}

	start := time.Now()

	err = player.New(a.stdout, opts...).Play(texts, p.Delay())
	if err != nil {
		return err
	}

	a.logger.Debug("playback finished",
		slog.Int("frames", len(texts)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}
