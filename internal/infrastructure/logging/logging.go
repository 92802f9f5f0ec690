package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/remaimber-it/matchdrill/internal/infrastructure/config"
)

// New builds the process logger: JSON on stdout, teed into a rotating file
// when LogFile is set.
func New(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(Writer(cfg, os.Stdout), &slog.HandlerOptions{
		Level: ParseLevel(cfg.LogLevel),
	}))
}

// Writer returns out, or out teed into a lumberjack file.
func Writer(cfg *config.Config, out io.Writer) io.Writer {
	if cfg.LogFile == "" {
		return out
	}
	return io.MultiWriter(out, &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    100, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	})
}

// ParseLevel maps a level name onto slog; unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
