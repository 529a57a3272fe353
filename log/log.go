package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger provides a simplified logging interface over [slog.Logger].
// The zero value discards all messages.
type Logger struct {
	*slog.Logger
	config
}

// Make creates a new [Logger] that writes to the specified writer.
//
// Optional configuration can be applied using functional options like
// [WithFormat], [WithLevel], [WithTimeLayout], and [WithCaller].
func Make(w io.Writer, opts ...Option) Logger {
	cfg := makeConfig(w, opts...)

	return Logger{
		config: cfg,
		Logger: slog.New(cfg.handler()),
	}
}

// Wrap returns a new [Logger] with the provided options applied on top of
// the receiver's configuration.
func (l Logger) Wrap(opts ...Option) Logger {
	cfg := l.config

	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return Logger{
		config: cfg,
		Logger: slog.New(cfg.handler()),
	}
}

// With returns a new [Logger] that includes the given attributes in each
// log message.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil {
		return l
	}

	return Logger{
		config: l.config,
		Logger: slog.New(l.Logger.Handler().WithAttrs(attrs)),
	}
}

// Level returns the minimum log level.
func (l Logger) Level() Level {
	if l.Logger == nil {
		return DefaultLevel
	}

	return l.level
}

// Format returns the log output format.
func (l Logger) Format() Format {
	if l.Logger == nil {
		return DefaultFormat
	}

	return l.format
}

func (l Logger) logContext(
	ctx context.Context,
	level Level,
	msg string,
	attrs ...slog.Attr,
) {
	if l.Logger == nil {
		return
	}

	l.Logger.LogAttrs(ctx, slog.Level(level), msg, attrs...)
}

// TraceContext logs a message at Trace level with the provided context.
func (l Logger) TraceContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelTrace, msg, attrs...)
}

// Trace logs a message at Trace level.
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.TraceContext(context.Background(), msg, attrs...)
}

// DebugContext logs a message at Debug level with the provided context.
func (l Logger) DebugContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelDebug, msg, attrs...)
}

// Debug logs a message at Debug level.
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.DebugContext(context.Background(), msg, attrs...)
}

// InfoContext logs a message at Info level with the provided context.
func (l Logger) InfoContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelInfo, msg, attrs...)
}

// Info logs a message at Info level.
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.InfoContext(context.Background(), msg, attrs...)
}

// WarnContext logs a message at Warn level with the provided context.
func (l Logger) WarnContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelWarn, msg, attrs...)
}

// Warn logs a message at Warn level.
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.WarnContext(context.Background(), msg, attrs...)
}

// ErrorContext logs a message at Error level with the provided context.
func (l Logger) ErrorContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelError, msg, attrs...)
}

// Error logs a message at Error level.
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.ErrorContext(context.Background(), msg, attrs...)
}

//nolint:gochecknoglobals
var defaultLogger atomic.Pointer[Logger]

//nolint:gochecknoinits
func init() {
	l := Make(os.Stderr)
	defaultLogger.Store(&l)
}

// Default returns the package-level [Logger].
func Default() Logger {
	return *defaultLogger.Load()
}

// SetDefault replaces the package-level [Logger].
func SetDefault(l Logger) {
	defaultLogger.Store(&l)
}

// Config applies options on top of the package-level [Logger]'s current
// configuration.
func Config(opts ...Option) {
	SetDefault(Default().Wrap(opts...))
}

// Trace logs a message at Trace level using the package-level [Logger].
func Trace(msg string, attrs ...slog.Attr) {
	Default().Trace(msg, attrs...)
}

// TraceContext logs at Trace level using the package-level [Logger].
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().TraceContext(ctx, msg, attrs...)
}

// Debug logs a message at Debug level using the package-level [Logger].
func Debug(msg string, attrs ...slog.Attr) {
	Default().Debug(msg, attrs...)
}

// DebugContext logs at Debug level using the package-level [Logger].
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().DebugContext(ctx, msg, attrs...)
}

// Info logs a message at Info level using the package-level [Logger].
func Info(msg string, attrs ...slog.Attr) {
	Default().Info(msg, attrs...)
}

// InfoContext logs at Info level using the package-level [Logger].
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().InfoContext(ctx, msg, attrs...)
}

// Warn logs a message at Warn level using the package-level [Logger].
func Warn(msg string, attrs ...slog.Attr) {
	Default().Warn(msg, attrs...)
}

// WarnContext logs at Warn level using the package-level [Logger].
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().WarnContext(ctx, msg, attrs...)
}

// Error logs a message at Error level using the package-level [Logger].
func Error(msg string, attrs ...slog.Attr) {
	Default().Error(msg, attrs...)
}

// ErrorContext logs at Error level using the package-level [Logger].
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().ErrorContext(ctx, msg, attrs...)
}
