package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"waterdrops/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 50
	defaultMaxBackups = 3
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	out := io.Writer(os.Stdout)
	if rotator := newRotator(params.Config.Env.Log); rotator != nil {
		out = io.MultiWriter(os.Stdout, rotator)
		params.Append(fx.StopHook(rotator.Close))
	}

	return newLogger(out, level, params.Config.Env.Log.Pretty), nil
}

func newLogger(out io.Writer, level slog.Level, pretty bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if pretty {
		return slog.New(slog.NewTextHandler(out, opts))
	}

	return slog.New(slog.NewJSONHandler(out, opts))
}

// newRotator returns nil when file logging is disabled.
func newRotator(cfg config.Log) *lumberjack.Logger {
	if strings.TrimSpace(cfg.File) == "" {
		return nil
	}

	maxSize := cfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := cfg.MaxBackups
	if maxBackups <= 0 {
		maxBackups = defaultMaxBackups
	}

	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		Compress:   true,
	}
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
