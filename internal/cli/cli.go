// Package cli holds the bootstrap shared by the skill binaries.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"teoskills/internal/config"
	"teoskills/internal/log"
)

// Setup loads the optional .env file, reads configuration from the
// environment, and builds the process logger. Skills run fine with
// zero configuration.
func Setup(component string) (*config.Config, *log.Logger) {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := log.New(log.Config{
		Level:     ParseLevel(cfg.LogLevel),
		Component: component,
	})
	log.SetDefault(logger)
	return cfg, logger
}

// ParseLevel maps a config log level to slog. Unknown values fall back
// to warn.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Arg returns the single argument of a skill invocation.
func Arg() (string, bool) {
	if len(os.Args) < 2 {
		return "", false
	}
	return os.Args[1], true
}
