// Package diag builds the zap logger used for tailview's diagnostic trace.
package diag

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select where diagnostics go.
type Options struct {
	// Path is a log file to append to. It takes precedence over Writer.
	Path string
	// Writer receives diagnostics when Path is empty.
	Writer io.Writer
	// Verbose lowers the level to debug, which records every payload.
	Verbose bool
}

// New returns a logger and a function that releases its output. With neither
// Path nor Writer set the logger discards everything.
func New(opts Options) (*zap.Logger, func() error, error) {
	noop := func() error { return nil }

	var (
		sink    zapcore.WriteSyncer
		closeFn = noop
	)
	switch {
	case strings.TrimSpace(opts.Path) != "":
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, noop, fmt.Errorf("create diag dir: %w", err)
		}
		file, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("open diag log %s: %w", opts.Path, err)
		}
		sink = zapcore.AddSync(file)
		closeFn = file.Close
	case opts.Writer != nil:
		sink = zapcore.AddSync(opts.Writer)
	default:
		return zap.NewNop(), noop, nil
	}

	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(encoder(), sink, level)
	logger := zap.New(core, zap.AddCaller())

	return logger, func() error {
		_ = logger.Sync()
		return closeFn()
	}, nil
}

func encoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()

	// HH:MM:SS keeps trace lines short.
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("15:04:05"))
	}
	cfg.EncodeLevel = func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(strings.ToUpper(level.String()[:1]))
	}
	cfg.EncodeCaller = zapcore.ShortCallerEncoder

	return zapcore.NewConsoleEncoder(cfg)
}
