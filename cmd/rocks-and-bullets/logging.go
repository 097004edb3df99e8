package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/rocks-and-bullets/config"
)

const (
	logFileName     = "rocks.log"
	metricsFileName = "metrics.jsonl"
	maxLogSize      = 10 * 1024 * 1024 // 10MB
)

// setupLogging opens the log file and returns a logger tagged with a per-run session id
// The terminal owns stdout, so nothing is ever logged there
// Returns a nil file and a disabled logger when logging is off
func setupLogging(cfg config.LogConfig) (*os.File, zerolog.Logger, error) {
	if !cfg.Enabled {
		return nil, zerolog.Nop(), nil
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}

	f, err := openLogFile(cfg.Dir, logFileName)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	logger := zerolog.New(f).
		Level(level).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
	return f, logger, nil
}

// openLogFile opens dir/name for appending, moving an oversized file aside first
func openLogFile(dir, name string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(name)
		rotated := filepath.Join(dir, fmt.Sprintf("%s_%s%s",
			strings.TrimSuffix(name, ext), time.Now().Format("20060102_150405"), ext))
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("rotate %s: %w", name, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, nil
}
