// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/spend-summary/internal/dateutils"
	"fjacquet/spend-summary/internal/loader"
	"fjacquet/spend-summary/internal/models"
	"fjacquet/spend-summary/internal/report"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SPEND_LOG_LEVEL.
const EnvPrefix = "SPEND"

// LogConfig selects log verbosity and output format
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig applies to CSV input and CSV reports
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// InputConfig controls how input files are read
type InputConfig struct {
	// DefaultFormat is used when neither --format nor the file extension decides.
	DefaultFormat string `mapstructure:"default_format" yaml:"default_format"`
}

// PipelineConfig holds the defaults for a summary run
type PipelineConfig struct {
	BookkeepingType string `mapstructure:"bookkeeping_type" yaml:"bookkeeping_type"`
	GroupBy         string `mapstructure:"group_by" yaml:"group_by"`
	Timezone        string `mapstructure:"timezone" yaml:"timezone"`
	SkipMalformed   bool   `mapstructure:"skip_malformed" yaml:"skip_malformed"`
}

// ReportConfig controls report rendering
type ReportConfig struct {
	Format         string `mapstructure:"format" yaml:"format"`
	CurrencySymbol string `mapstructure:"currency_symbol" yaml:"currency_symbol"`
}

// Config represents the complete application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	CSV      CSVConfig      `mapstructure:"csv" yaml:"csv"`
	Input    InputConfig    `mapstructure:"input" yaml:"input"`
	Pipeline PipelineConfig `mapstructure:"pipeline" yaml:"pipeline"`
	Report   ReportConfig   `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.spend-summary")
	v.AddConfigPath(".spend-summary")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the configuration used when nothing overrides the defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		CSV: CSVConfig{Delimiter: ","},
		Pipeline: PipelineConfig{
			BookkeepingType: models.BookkeepingDebit,
			GroupBy:         models.GroupByCategory.String(),
			Timezone:        "Local",
		},
		Report: ReportConfig{Format: string(report.Text), CurrencySymbol: "$"},
	}
}

// setDefaults registers DefaultConfig with viper so files and env only override.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("csv.delimiter", d.CSV.Delimiter)

	v.SetDefault("input.default_format", d.Input.DefaultFormat)

	v.SetDefault("pipeline.bookkeeping_type", d.Pipeline.BookkeepingType)
	v.SetDefault("pipeline.group_by", d.Pipeline.GroupBy)
	v.SetDefault("pipeline.timezone", d.Pipeline.Timezone)
	v.SetDefault("pipeline.skip_malformed", d.Pipeline.SkipMalformed)

	v.SetDefault("report.format", d.Report.Format)
	v.SetDefault("report.currency_symbol", d.Report.CurrencySymbol)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Input.DefaultFormat != "" {
		if _, err := loader.ParseFormat(config.Input.DefaultFormat); err != nil {
			return fmt.Errorf("input.default_format: %w", err)
		}
	}

	if strings.TrimSpace(config.Pipeline.BookkeepingType) == "" {
		return fmt.Errorf("pipeline.bookkeeping_type must not be empty")
	}

	if _, err := models.ParseGroupingMode(config.Pipeline.GroupBy); err != nil {
		return fmt.Errorf("pipeline.group_by: %w", err)
	}

	if _, err := dateutils.LoadLocation(config.Pipeline.Timezone); err != nil {
		return fmt.Errorf("pipeline.timezone: %w", err)
	}

	if _, err := report.ParseFormat(config.Report.Format); err != nil {
		return fmt.Errorf("report.format: %w", err)
	}

	return nil
}

// Delimiter returns the configured CSV delimiter as a rune
func (c *Config) Delimiter() rune {
	if r := []rune(c.CSV.Delimiter); len(r) > 0 {
		return r[0]
	}
	return ','
}

// Location returns the time zone zoneless timestamps are read in.
func (c *Config) Location() (*time.Location, error) {
	return dateutils.LoadLocation(c.Pipeline.Timezone)
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
