// Package pipeline wires the frame stages together: decode, stride
// selection, resize and glyph quantization.
//
// Stages run as a batch. Each one finishes for every frame before the next
// starts, and frames only move forward.
//
// Typical usage creates a [Config], registers flags, then builds a [Pipeline]
// once flags are parsed:
//
//	cfg := pipeline.NewConfig()
//	cfg.RegisterFlags(rootCmd.Flags())
//	cfg.RegisterCompletions(rootCmd)
//
//	p, err := cfg.NewPipeline(autosize.Terminal(int(os.Stdout.Fd())))
//	frames, err := p.Frames(path)
//	texts := p.TextAll(frames)
package pipeline
