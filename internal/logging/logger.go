package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// File is the JSON log path, rotated by size. Empty disables it.
	File string
	// Level is a zap level name such as "info" or "debug".
	Level string
	// Console adds a human-readable core. The TUI leaves it off since it
	// owns the terminal.
	Console bool
	// ConsoleLevel overrides Level for the console core.
	ConsoleLevel string
	// ConsoleWriter defaults to stderr.
	ConsoleWriter io.Writer
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// New builds the process logger. With neither a file nor a console it
// returns a no-op logger.
func New(opts Options) (*zap.Logger, error) {
	level, err := parseLevel(opts.Level, zapcore.InfoLevel)
	if err != nil {
		return nil, err
	}
	consoleLevel, err := parseLevel(opts.ConsoleLevel, level)
	if err != nil {
		return nil, err
	}

	var cores []zapcore.Core
	if opts.File != "" {
		if dir := filepath.Dir(opts.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create log dir: %w", err)
			}
		}
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     14,
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), fileWriter, level))
	}
	if opts.Console {
		w := opts.ConsoleWriter
		if w == nil {
			w = os.Stderr
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(w), consoleLevel))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)), nil
}

func parseLevel(name string, fallback zapcore.Level) (zapcore.Level, error) {
	if name == "" {
		return fallback, nil
	}
	l, err := zapcore.ParseLevel(name)
	if err != nil {
		return fallback, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
