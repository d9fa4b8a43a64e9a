package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init sets up the global logger. Development gets human-readable text
// at debug level, everything else JSON at info level.
func Init(env string) {
	level := slog.LevelInfo
	if env == "development" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "development" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

func instance() *slog.Logger {
	if log == nil {
		return slog.Default()
	}
	return log
}

// normalize lets call sites pass a bare error (or any single value)
// instead of a key-value pair.
func normalize(args []any) []any {
	if len(args) != 1 {
		return args
	}
	switch v := args[0].(type) {
	case slog.Attr:
		return args
	case error:
		return []any{slog.Any("error", v)}
	default:
		return []any{slog.Any("detail", v)}
	}
}

func Debug(msg string, args ...any) {
	instance().Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	instance().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	instance().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	instance().Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	instance().Error(msg, normalize(args)...)
	os.Exit(1)
}
