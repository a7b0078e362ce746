// Package log sets up structured logging for the binaries of this module.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps a slog.Logger. A nil *Logger is valid: debug and info
// messages are discarded, warnings and errors go to the default slog logger.
type Logger struct {
	*slog.Logger
	LogFile string
	LogDir  string
	Start   time.Time
}

// ParseLevel maps one of "debug", "info", "warn" and "error" to its level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%s: invalid log level", level)
	}
}

// New returns a logger at the given level. If dir is empty, records are
// written to stderr as text. Otherwise they are written as JSON to a
// rotated file in dir.
func New(level string, dir string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
		return &Logger{Logger: slog.New(h), Start: time.Now()}, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "frenet.slog"),
		MaxSize:    32, // MB
		MaxBackups: 1,
	}
	if lvl == slog.LevelDebug {
		w.MaxSize = 512
	}
	l := newLogger(w, lvl)
	l.LogFile = w.Filename
	l.LogDir = dir
	return l, nil
}

func newLogger(w io.Writer, lvl slog.Level) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	l := &Logger{
		Logger: slog.New(h),
		Start:  time.Now(),
	}

	l.Info("Hello logging", slog.Time("start", l.Start))
	l.Info("System information",
		slog.String("GOARCH", runtime.GOARCH),
		slog.String("GOOS", runtime.GOOS),
		slog.Int("NumCPUs", runtime.NumCPU()))

	if bi, ok := debug.ReadBuildInfo(); ok {
		var deps []any
		for _, dep := range bi.Deps {
			deps = append(deps, slog.String(dep.Path, dep.Version))
		}
		l.Info("Build",
			slog.String("Go version", bi.GoVersion),
			slog.String("Path", bi.Path),
			slog.Group("Dependencies", deps...))
	}
	return l
}

// Slog returns the underlying slog.Logger, or nil for a nil *Logger.
func (l *Logger) Slog() *slog.Logger {
	if l == nil {
		return nil
	}
	return l.Logger
}

func (l *Logger) Debug(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(context.Background(), slog.LevelDebug) {
		l.Logger.Debug(msg, args...)
	}
}

// Debugf is a convenience wrapper that logs just a message and allows
// printf-style formatting of the provided args.
func (l *Logger) Debugf(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(context.Background(), slog.LevelDebug) {
		l.Logger.Debug(fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Info(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(context.Background(), slog.LevelInfo) {
		l.Logger.Info(msg, args...)
	}
}

func (l *Logger) Infof(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(context.Background(), slog.LevelInfo) {
		l.Logger.Info(fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Warn(msg string, args ...any) {
	if l == nil {
		slog.Warn(msg, args...)
	} else {
		l.Logger.Warn(msg, args...)
	}
}

func (l *Logger) Warnf(msg string, args ...any) {
	l.Warn(fmt.Sprintf(msg, args...))
}

func (l *Logger) Error(msg string, args ...any) {
	if l == nil {
		slog.Error(msg, args...)
	} else {
		l.Logger.Error(msg, args...)
	}
}

func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		Logger:  l.Logger.With(args...),
		LogFile: l.LogFile,
		LogDir:  l.LogDir,
		Start:   l.Start,
	}
}
