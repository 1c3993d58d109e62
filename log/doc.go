// Package log builds [log/slog] handlers from CLI flags.
//
// It supports three output formats ([FormatJSON], [FormatLogfmt] and
// [FormatText]) and four levels ([LevelError], [LevelWarn], [LevelInfo] and
// [LevelDebug]). The text format is rendered by [charm.land/log/v2]; the
// others use the standard library handlers.
//
// Typical usage creates a [Config], registers flags, then installs a handler
// once flags are parsed:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
package log
