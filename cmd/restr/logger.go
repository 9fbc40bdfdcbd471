package main

import (
	"io"
	"log/slog"

	multi "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// parseLevel maps a -log-level value to a slog level; unknown names mean info.
func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger logs text to stderr and, when file is set, JSON to a rotating
// log file as well. The returned function closes the file.
func newLogger(stderr io.Writer, level, file string) (*slog.Logger, func() error) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	text := slog.NewTextHandler(stderr, opts)
	if file == "" {
		return slog.New(text), func() error { return nil }
	}

	logFile := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    16,
		MaxBackups: 4,
		MaxAge:     30,
		Compress:   true,
	}
	return slog.New(
		multi.Fanout(
			text,
			slog.NewJSONHandler(logFile, opts),
		),
	), logFile.Close
}
