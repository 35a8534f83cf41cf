package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a new zap logger based on the configuration.
// The console destination is attached only in development.
// The returned function flushes the logger and closes the log files.
func New(cfg *Config, development bool) (*zap.Logger, func(), error) {
	return newLogger(cfg, development, zapcore.Lock(os.Stdout))
}

func newLogger(cfg *Config, development bool, console zapcore.WriteSyncer) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var cores []zapcore.Core
	var closers []func()
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	if cfg.Dir != "" {
		var enc zapcore.Encoder
		switch cfg.Format {
		case FormatText, "":
			enc = newTextEncoder(false)
		case FormatJSON:
			enc = newJSONEncoder()
		default:
			return nil, nil, fmt.Errorf("unknown log format %q", cfg.Format)
		}

		errSink, closeErr, err := openSink(cfg.ErrorFile())
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, closeErr)

		infoSink, closeInfo, err := openSink(cfg.InfoFile())
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, closeInfo)

		cores = append(cores,
			zapcore.NewCore(enc, errSink, zapcore.ErrorLevel),
			zapcore.NewCore(enc.Clone(), infoSink, level),
		)
	}

	if development {
		cores = append(cores, zapcore.NewCore(newTextEncoder(true), console, level))
	}

	// Write failures are reported on stderr and never reach the caller.
	l := zap.New(zapcore.NewTee(cores...), zap.ErrorOutput(zapcore.Lock(os.Stderr)))

	return l, func() {
		_ = l.Sync()
		closeAll()
	}, nil
}

func openSink(path string) (zapcore.WriteSyncer, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	ws, closeFn, err := zap.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return ws, closeFn, nil
}

// ResolveDir resolves a relative log directory against the directory of the
// running executable.
func ResolveDir(dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	exe, err := os.Executable()
	if err != nil {
		return dir
	}
	return filepath.Join(filepath.Dir(exe), dir)
}

// Log writes msg at the given level. Strings and errors become the log
// message; any other value is a structured message, printed as indented JSON
// by text destinations and nested under "message" by JSON destinations.
func Log(l *zap.Logger, level zapcore.Level, msg any, fields ...zap.Field) {
	switch m := msg.(type) {
	case string:
		l.Log(level, m, fields...)
	case error:
		l.Log(level, m.Error(), fields...)
	default:
		l.Log(level, "", append([]zap.Field{zap.Reflect(MessageKey, m)}, fields...)...)
	}
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	rid := c.Locals("ray_id")
	if str, ok := rid.(string); ok && str != "" {
		return l.With(zap.String("ray_id", str))
	}
	return l
}
