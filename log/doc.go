// Package log provides a simplified logging interface based on [log/slog].
//
// Loggers are immutable values. Configuration is applied at creation time
// using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText))
//
// Attributes can be attached to be included in all subsequent log messages
// using the [Logger.With] method:
//
//	logger = logger.With(slog.String("file", path))
//	logger.Info("parsed module") // includes file=...
//
// Each logging level has both a context-aware and context-unaware variant.
// The package supports five log levels, [LevelTrace] through [LevelError],
// and two output formats, [FormatText] (default) and [FormatJSON].
// Text output is colorized unless disabled with [WithPretty].
package log
