// Package config converts parsed CLI flags into validated run configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/PopFlamingo/TelegramStats/filter"
)

// Config captures all options for one analysis run. Pointer fields are nil
// when the corresponding flag was not set.
type Config struct {
	ExportPath string
	LogLevel   string
	LogDir     string
	NoColor    bool

	// words command
	From    *string
	Limit   *int
	JSON    bool
	Reverse bool

	// activity command
	Timezone  string
	Scale     int
	StartDate *time.Time
	EndDate   *time.Time
}

// FileDefaults are optional defaults read from a TOML file given via
// --config. Explicitly set flags always win over file values.
type FileDefaults struct {
	LogLevel string `toml:"log_level"`
	Timezone string `toml:"timezone"`
	Scale    int    `toml:"scale"`
	Limit    int    `toml:"limit"`
}

// RegisterPersistentFlags attaches the flags shared by every subcommand.
func RegisterPersistentFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("log-level", "info", "Logging level: debug, info, warn, error")
	flags.String("log-dir", "", "Directory for log files (disabled when empty)")
	flags.String("config", "", "Path to a TOML file with default options")
	flags.Bool("no-color", false, "Disable colored output")
}

// RegisterWordsFlags attaches the word-frequency report flags.
func RegisterWordsFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntP("limit", "n", 0, "Truncate the report to the first N entries")
	flags.String("from", "", "Only count messages whose sender matches exactly")
	flags.Bool("json", false, "Emit the report as a JSON array instead of text")
	flags.Bool("reverse", false, "Sort counts ascending instead of descending")
}

// RegisterActivityFlags attaches the hourly-activity report flags.
func RegisterActivityFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("timezone", "z", "", "IANA timezone for hour bucketing (default UTC)")
	flags.String("from", "", "Only count messages whose sender matches exactly")
	flags.String("start-date", "", "Earliest calendar date to include, as DD/MM/YYYY")
	flags.String("end-date", "", "Latest calendar date to include, as DD/MM/YYYY")
	flags.Int("scale", 1, "Histogram bar multiplier")
}

// LoadWords builds the configuration for the words subcommand.
func LoadWords(cmd *cobra.Command, exportPath string) (Config, error) {
	cfg, defaults, err := loadShared(cmd, exportPath)
	if err != nil {
		return Config{}, err
	}

	flags := cmd.Flags()
	jsonOut, err := flags.GetBool("json")
	if err != nil {
		return Config{}, err
	}
	reverse, err := flags.GetBool("reverse")
	if err != nil {
		return Config{}, err
	}
	cfg.JSON = jsonOut
	cfg.Reverse = reverse

	if flags.Changed("from") {
		from, err := flags.GetString("from")
		if err != nil {
			return Config{}, err
		}
		cfg.From = &from
	}

	if flags.Changed("limit") {
		limit, err := flags.GetInt("limit")
		if err != nil {
			return Config{}, err
		}
		cfg.Limit = &limit
	} else if defaults != nil && defaults.Limit > 0 {
		limit := defaults.Limit
		cfg.Limit = &limit
	}

	return cfg, nil
}

// LoadActivity builds the configuration for the activity subcommand.
func LoadActivity(cmd *cobra.Command, exportPath string) (Config, error) {
	cfg, defaults, err := loadShared(cmd, exportPath)
	if err != nil {
		return Config{}, err
	}

	flags := cmd.Flags()
	timezone, err := flags.GetString("timezone")
	if err != nil {
		return Config{}, err
	}
	scale, err := flags.GetInt("scale")
	if err != nil {
		return Config{}, err
	}
	startDate, err := flags.GetString("start-date")
	if err != nil {
		return Config{}, err
	}
	endDate, err := flags.GetString("end-date")
	if err != nil {
		return Config{}, err
	}

	if timezone == "" && defaults != nil {
		timezone = defaults.Timezone
	}
	if !flags.Changed("scale") && defaults != nil && defaults.Scale > 0 {
		scale = defaults.Scale
	}

	cfg.Timezone = timezone
	cfg.Scale = scale

	if flags.Changed("from") {
		from, err := flags.GetString("from")
		if err != nil {
			return Config{}, err
		}
		cfg.From = &from
	}

	if startDate != "" {
		start, err := filter.ParseCalendarDate(startDate)
		if err != nil {
			return Config{}, fmt.Errorf("--start-date: %w", err)
		}
		cfg.StartDate = &start
	}
	if endDate != "" {
		end, err := filter.ParseCalendarDate(endDate)
		if err != nil {
			return Config{}, fmt.Errorf("--end-date: %w", err)
		}
		cfg.EndDate = &end
	}

	if cfg.Scale < 1 {
		return Config{}, fmt.Errorf("--scale must be at least 1, got %d", cfg.Scale)
	}

	return cfg, nil
}

func loadShared(cmd *cobra.Command, exportPath string) (Config, *FileDefaults, error) {
	flags := cmd.Flags()

	logLevel, err := flags.GetString("log-level")
	if err != nil {
		return Config{}, nil, err
	}
	logDir, err := flags.GetString("log-dir")
	if err != nil {
		return Config{}, nil, err
	}
	configPath, err := flags.GetString("config")
	if err != nil {
		return Config{}, nil, err
	}
	noColor, err := flags.GetBool("no-color")
	if err != nil {
		return Config{}, nil, err
	}

	var defaults *FileDefaults
	if configPath != "" {
		defaults, err = loadDefaults(configPath)
		if err != nil {
			return Config{}, nil, err
		}
	}

	if !flags.Changed("log-level") && defaults != nil && defaults.LogLevel != "" {
		logLevel = defaults.LogLevel
	}

	logLevel = strings.ToLower(logLevel)
	if logLevel == "warning" {
		logLevel = "warn"
	}
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, nil, fmt.Errorf("invalid --log-level: %s", logLevel)
	}

	cfg := Config{
		ExportPath: exportPath,
		LogLevel:   logLevel,
		LogDir:     logDir,
		NoColor:    noColor,
	}
	return cfg, defaults, nil
}

func loadDefaults(path string) (*FileDefaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var defaults FileDefaults
	if err := toml.Unmarshal(data, &defaults); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &defaults, nil
}
