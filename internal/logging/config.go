package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Log formats.
const (
	FormatAuto    = "auto"
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config holds logger configuration options
type Config struct {
	// Level is the minimum log level to output
	Level string

	// Format is auto, json or console
	Format string

	// Output overrides the destination; nil means stderr
	Output io.Writer

	// NoColor disables color output in console mode
	NoColor bool

	// AddCaller includes file:line in log output
	AddCaller bool
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Level:   "info",
		Format:  FormatAuto,
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// NewLoggerFromConfig creates a new logger from configuration
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level := ParseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var logger zerolog.Logger
	if useConsole(cfg.Format, out) {
		logger = NewConsole(out, cfg.NoColor)
	} else {
		logger = New(out)
	}
	logger = logger.Level(level)

	if cfg.AddCaller || level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// Configure updates the default logger with the given configuration
func Configure(cfg *Config) {
	SetDefault(NewLoggerFromConfig(cfg))
}

// ConfigureFromEnv configures the default logger from ATS_LOG_LEVEL,
// ATS_LOG_FORMAT and NO_COLOR.
func ConfigureFromEnv() {
	Configure(configFromEnv())
}

// ParseLevel parses a level name, falling back to info.
func ParseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel
	}
	if s == "warning" {
		s = "warn"
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func configFromEnv() *Config {
	cfg := DefaultConfig()
	if v := os.Getenv("ATS_LOG_LEVEL"); v != "" {
		cfg.Level = v
	} else if os.Getenv("DEBUG") != "" {
		cfg.Level = "debug"
	}
	if v := os.Getenv("ATS_LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	return cfg
}

func useConsole(format string, out io.Writer) bool {
	switch strings.ToLower(format) {
	case FormatConsole, "pretty", "text":
		return true
	case FormatJSON:
		return false
	}
	f, ok := out.(*os.File)
	return ok && isTerminal(f)
}
