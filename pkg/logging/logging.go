package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"termnote/pkg/config"
	"termnote/pkg/version"

	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "termnote.log"
const (
	maxLogSizeMB  = 5
	maxLogBackups = 5
	maxLogAgeDays = 14
)

// Init configures slog to write structured logs to a rotated file.
// When the log directory cannot be created, the returned logger discards
// everything and the error is returned alongside it.
func Init(cfg config.Config) (*slog.Logger, error) {
	level := ParseLevel(cfg.LogLevel)
	handlerOptions := &slog.HandlerOptions{Level: level}

	logPath := strings.TrimSpace(cfg.LogFile)
	if logPath == "" {
		logPath = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		logger := slog.New(newHandler(cfg.LogFormat, io.Discard, handlerOptions))
		slog.SetDefault(logger)
		return logger, err
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}

	logger := slog.New(newHandler(cfg.LogFormat, writer, handlerOptions)).With(
		slog.String("app", "termnote"),
		slog.String("version", version.Summary()),
	)
	slog.SetDefault(logger)
	return logger, nil
}

// DefaultLogPath returns ~/.termnote/logs/termnote.log.
func DefaultLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(homeDir) == "" {
		return filepath.Join(".termnote", "logs", defaultLogFile)
	}
	return filepath.Join(homeDir, ".termnote", "logs", defaultLogFile)
}

// ParseLevel maps a config level name to a slog level. Unknown names map to
// info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text":
		return slog.NewTextHandler(out, opts)
	default:
		return slog.NewJSONHandler(out, opts)
	}
}
