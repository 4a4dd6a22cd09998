// Package logger provides structured logging on top of log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
)

// Level is a logging severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoggerInterface is the logging contract shared across bounded contexts.
// Fields are passed as alternating key/value pairs, same as slog.
type LoggerInterface interface {
	Debug(ctx context.Context, msg string, kv ...interface{})
	Info(ctx context.Context, msg string, kv ...interface{})
	Warn(ctx context.Context, msg string, kv ...interface{})
	Error(ctx context.Context, msg string, kv ...interface{})
	With(kv ...interface{}) LoggerInterface
}

// Logger is the LoggerInterface implementation backed by slog.
type Logger struct {
	sl *slog.Logger
}

// New creates a Logger writing JSON records to w at the given level.
// name becomes the "service" field on every record. fields are additional
// static key/value attributes attached to every record (nil for none).
func New(w io.Writer, level Level, name string, fields map[string]interface{}) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level.slogLevel()})
	sl := slog.New(handler).With("service", name)
	for k, v := range fields {
		sl = sl.With(k, v)
	}
	return &Logger{sl: sl}
}

func (l *Logger) Debug(ctx context.Context, msg string, kv ...interface{}) {
	l.sl.DebugContext(ctx, msg, kv...)
}

func (l *Logger) Info(ctx context.Context, msg string, kv ...interface{}) {
	l.sl.InfoContext(ctx, msg, kv...)
}

func (l *Logger) Warn(ctx context.Context, msg string, kv ...interface{}) {
	l.sl.WarnContext(ctx, msg, kv...)
}

func (l *Logger) Error(ctx context.Context, msg string, kv ...interface{}) {
	l.sl.ErrorContext(ctx, msg, kv...)
}

// With returns a child Logger with additional static fields attached.
func (l *Logger) With(kv ...interface{}) LoggerInterface {
	return &Logger{sl: l.sl.With(kv...)}
}
