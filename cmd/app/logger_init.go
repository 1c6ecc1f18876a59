package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/BrandishRewards_Go/internal/config"
	"github.com/osse101/BrandishRewards_Go/internal/logger"
)

// keepSessionLogs is how many session log files survive a restart
const keepSessionLogs = 9

// initLogger initializes the logger using centralized app configuration.
// When LogDir is set, output is teed to a timestamped session file there.
// The caller must close the returned closer.
func initLogger(cfg *config.Config) (io.Closer, error) {
	// Determine if we should add source info (only in dev)
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	if cfg.LogDir == "" {
		logger.InitLogger(loggerConfig)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}
	cleanupLogs(cfg.LogDir, keepSessionLogs)

	name := filepath.Join(cfg.LogDir, fmt.Sprintf("session_%s.log", time.Now().Format("2006-01-02_15-04-05")))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger.InitLoggerWithWriter(loggerConfig, io.MultiWriter(os.Stdout, f))
	return f, nil
}

// cleanupLogs removes the oldest session logs until at most keep remain
func cleanupLogs(dir string, keep int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".log") {
			names = append(names, e.Name())
		}
	}
	// Timestamped names sort chronologically
	sort.Strings(names)

	for len(names) >= keep+1 {
		if err := os.Remove(filepath.Join(dir, names[0])); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete old log file %s: %v\n", names[0], err)
		}
		names = names[1:]
	}
}
