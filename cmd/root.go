// Package cmd wires the tgstats command surface.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/PopFlamingo/TelegramStats/config"
	"github.com/PopFlamingo/TelegramStats/export"
	"github.com/PopFlamingo/TelegramStats/model"
)

var rootCmd = &cobra.Command{
	Use:           "tgstats",
	Short:         "Analyze Telegram chat exports",
	Long:          "tgstats reads a Telegram chat export (result.json) and produces word-frequency or hourly-activity reports.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	config.RegisterPersistentFlags(rootCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setupLogger builds the run logger from the shared configuration, optionally
// teeing output to a timestamped file under cfg.LogDir.
func setupLogger(cfg config.Config) (*slog.Logger, func() error, error) {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)

	switch cfg.LogLevel {
	case "debug":
		level.Set(slog.LevelDebug)
	case "info":
		level.Set(slog.LevelInfo)
	case "warn":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	}

	opts := &slog.HandlerOptions{Level: level}
	cleanup := func() error { return nil }

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
			return nil, cleanup, err
		}

		logFilePath := filepath.Join(cfg.LogDir, fmt.Sprintf("tgstats-%s.log", time.Now().Format("20060102T150405")))
		file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, cleanup, err
		}

		handler := slog.NewTextHandler(io.MultiWriter(os.Stderr, file), opts)
		cleanup = func() error {
			return file.Close()
		}
		return slog.New(handler), cleanup, nil
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler), cleanup, nil
}

// readArchive loads and decodes the export document at path.
func readArchive(path string, logger *slog.Logger) (*model.Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	archive, err := export.Parse(data)
	if err != nil {
		return nil, err
	}

	logger.Info("parsed export", "name", archive.Name, "type", archive.Type, "messages", len(archive.Messages))
	return archive, nil
}
