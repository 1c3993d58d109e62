package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	charmlog "charm.land/log/v2"
)

// Handler is the [slog.Handler] produced by this package.
type Handler = slog.Handler

// Level is a log severity name.
type Level string

// Supported levels.
const (
	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

// Format is a log output format name.
type Format string

// Supported formats.
const (
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs in logfmt format.
	FormatLogfmt Format = "logfmt"
	// FormatText outputs human-readable, colorized lines.
	FormatText Format = "text"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

var (
	allLevels  = []Level{LevelError, LevelWarn, LevelInfo, LevelDebug}
	allFormats = []Format{FormatJSON, FormatLogfmt, FormatText}
)

// Slog returns the [slog.Level] for l. Unknown levels map to info.
func (l Level) Slog() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
	}

	return slog.LevelInfo
}

// NewHandlerFromStrings parses level and format and creates a [Handler].
func NewHandlerFromStrings(w io.Writer, level, format string) (Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	f, err := ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, lvl, f), nil
}

// NewHandler creates a [Handler] writing to w at the given level and format.
// Unknown formats fall back to [FormatText].
func NewHandler(w io.Writer, level Level, format Format) Handler {
	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     level.Slog(),
		})

	case FormatLogfmt:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     level.Slog(),
		})

	case FormatText:
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(level.Slog()),
		ReportTimestamp: true,
	})
}

// ParseLevel parses a log level string, case-insensitively. "warning" is
// accepted for [LevelWarn].
func ParseLevel(level string) (Level, error) {
	l := Level(strings.ToLower(level))
	if l == "warning" {
		return LevelWarn, nil
	}

	if slices.Contains(allLevels, l) {
		return l, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
}

// ParseFormat parses a log format string, case-insensitively.
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if slices.Contains(allFormats, f) {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
}

// GetAllLevelStrings returns the accepted level names.
func GetAllLevelStrings() []string {
	out := make([]string, 0, len(allLevels))
	for _, l := range allLevels {
		out = append(out, string(l))
	}

	return out
}

// GetAllFormatStrings returns the accepted format names.
func GetAllFormatStrings() []string {
	out := make([]string, 0, len(allFormats))
	for _, f := range allFormats {
		out = append(out, string(f))
	}

	return out
}
