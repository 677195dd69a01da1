// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/schemas"
	bundled "github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/schemas"
)

// EnvPrefix is prepended to every environment override, e.g. ATS_STRATEGY.
const EnvPrefix = "ATS"

// Config represents the CLI configuration. It can be loaded from a JSON or
// YAML file and overridden by ATS_* environment variables. All fields are
// optional; flags set on the command line win over both.
type Config struct {
	// Inputs
	Job       string `json:"job,omitempty" mapstructure:"job"`               // Path to job description file
	JobURL    string `json:"job_url,omitempty" mapstructure:"job_url"`       // URL to fetch job posting from
	RulesFile string `json:"rules_file,omitempty" mapstructure:"rules_file"` // YAML rule overlay

	// Scoring
	Strategy      string `json:"strategy,omitempty" mapstructure:"strategy" validate:"omitempty,oneof=keyword category"`
	MaxLineLength int    `json:"max_line_length,omitempty" mapstructure:"max_line_length" validate:"gte=0,lte=1000"`
	Concurrency   int    `json:"concurrency,omitempty" mapstructure:"concurrency" validate:"gte=0,lte=64"`

	// Output
	Format    string `json:"format,omitempty" mapstructure:"format" validate:"omitempty,oneof=text json yaml"`
	LogLevel  string `json:"log_level,omitempty" mapstructure:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogFormat string `json:"log_format,omitempty" mapstructure:"log_format" validate:"omitempty,oneof=auto json console"`

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty" mapstructure:"use_browser"` // Use headless browser for SPA sites
	Verbose    bool `json:"verbose,omitempty" mapstructure:"verbose"`         // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Strategy:      "keyword",
		MaxLineLength: 140,
		Concurrency:   4,
		Format:        "text",
		LogLevel:      "info",
		LogFormat:     "auto",
	}
}

// Load reads configuration from path (JSON or YAML, chosen by extension)
// layered over Defaults, then applies ATS_* environment overrides. An empty
// path loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("job", defaults.Job)
	v.SetDefault("job_url", defaults.JobURL)
	v.SetDefault("rules_file", defaults.RulesFile)
	v.SetDefault("strategy", defaults.Strategy)
	v.SetDefault("max_line_length", defaults.MaxLineLength)
	v.SetDefault("concurrency", defaults.Concurrency)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("use_browser", defaults.UseBrowser)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if err := checkSchema(path); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// checkSchema rejects JSON and YAML config files with unknown keys or
// mistyped values, which viper would otherwise ignore.
func checkSchema(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
	default:
		return nil
	}
	if err := schemas.Bundled.File(bundled.Config, path); err != nil {
		return fmt.Errorf("config error in %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration has valid values. Required inputs
// are not checked here since they can still come from flags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.RulesFile != "" {
		if _, err := os.Stat(c.RulesFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: rules file not found: %s", c.RulesFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.RulesFile == "" {
		result.RulesFile = defaults.RulesFile
	}
	if result.Strategy == "" {
		result.Strategy = defaults.Strategy
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.MaxLineLength == 0 {
		result.MaxLineLength = defaults.MaxLineLength
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
