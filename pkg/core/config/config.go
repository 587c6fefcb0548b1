package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/msto63/clite/foundation/clite/value"
	mdwerror "github.com/msto63/clite/foundation/core/error"
	mdwlog "github.com/msto63/clite/foundation/core/log"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "CLITE_CONFIG"

// Uninitialized read modes
const (
	UninitializedError = "error"
	UninitializedZero  = "zero"
)

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Output    OutputConfig    `toml:"output"`
	Semantics SemanticsConfig `toml:"semantics"`
	Limits    LimitsConfig    `toml:"limits"`
	Journal   JournalConfig   `toml:"journal"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name"`
	DataDir   string `toml:"data_dir"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// OutputConfig controls how print renders values
type OutputConfig struct {
	// BoolStyle is "words" (true/false) or "numeric" (1/0)
	BoolStyle string `toml:"bool_style"`

	// FloatPrecision is the number of significant digits, -1 for the
	// shortest exact form
	FloatPrecision int `toml:"float_precision"`

	// Color enables styled diagnostics on a terminal
	Color bool `toml:"color"`
}

// SemanticsConfig holds the switchable language rules
type SemanticsConfig struct {
	// Uninitialized is "error" or "zero"
	Uninitialized string `toml:"uninitialized"`
}

// LimitsConfig bounds a single run
type LimitsConfig struct {
	// Timeout cancels a run that takes longer, zero disables it
	Timeout Duration `toml:"timeout"`

	// MaxTokens rejects larger streams, zero disables the check
	MaxTokens int `toml:"max_tokens"`
}

// JournalConfig holds run journal settings
type JournalConfig struct {
	Enabled       bool   `toml:"enabled"`
	Path          string `toml:"path"`
	RetentionDays int    `toml:"retention_days"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{
		Output: OutputConfig{Color: true},
	}
	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerror.Newf(mdwerror.CodeNotFound, "config file not found: %s", path).
			WithDetail("path", path)
	}

	cfg := &Config{
		Output: OutputConfig{Color: true},
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from the CLITE_CONFIG environment
// variable or the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerror.Newf(mdwerror.CodeNotFound,
			"no config file found, set %s or create configs/clite.toml", EnvConfigPath)
	}

	return Load(path)
}

// DefaultPaths returns the locations searched by LoadFromEnv
func DefaultPaths() []string {
	return []string{
		"./configs/clite.toml",
		"./clite.toml",
		filepath.Join(os.Getenv("HOME"), ".config/clite/config.toml"),
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "clite"
	}
	if c.General.DataDir == "" {
		c.General.DataDir = "$HOME/.local/share/clite"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Output
	if c.Output.BoolStyle == "" {
		c.Output.BoolStyle = value.BoolWords.String()
	}

	// Semantics
	if c.Semantics.Uninitialized == "" {
		c.Semantics.Uninitialized = UninitializedError
	}

	// Journal
	if c.Journal.Path == "" {
		c.Journal.Path = filepath.Join(c.General.DataDir, "journal.db")
	}
	if c.Journal.RetentionDays == 0 {
		c.Journal.RetentionDays = 30
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.General.DataDir = os.ExpandEnv(c.General.DataDir)
	c.Journal.Path = os.ExpandEnv(c.Journal.Path)
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	var problems []string

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("general.log_level: %v", err))
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		problems = append(problems, fmt.Sprintf("general.log_format: %v", err))
	}
	if _, err := value.ParseBoolStyle(c.Output.BoolStyle); err != nil {
		problems = append(problems, fmt.Sprintf("output.bool_style: %v", err))
	}
	if c.Output.FloatPrecision < -1 || c.Output.FloatPrecision > 17 {
		problems = append(problems, fmt.Sprintf("output.float_precision: %d is outside -1..17", c.Output.FloatPrecision))
	}
	switch c.Semantics.Uninitialized {
	case UninitializedError, UninitializedZero:
	default:
		problems = append(problems, fmt.Sprintf("semantics.uninitialized: %q is neither %q nor %q",
			c.Semantics.Uninitialized, UninitializedError, UninitializedZero))
	}
	if c.Limits.Timeout.Duration < 0 {
		problems = append(problems, "limits.timeout: must not be negative")
	}
	if c.Limits.MaxTokens < 0 {
		problems = append(problems, "limits.max_tokens: must not be negative")
	}
	if c.Journal.RetentionDays < 0 {
		problems = append(problems, "journal.retention_days: must not be negative")
	}

	if len(problems) > 0 {
		return mdwerror.Newf(mdwerror.CodeInvalidConfig, "invalid configuration: %s", strings.Join(problems, "; ")).
			WithDetail("problems", len(problems))
	}
	return nil
}

// BoolStyle returns the configured bool rendering
func (c *Config) BoolStyle() value.BoolStyle {
	style, _ := value.ParseBoolStyle(c.Output.BoolStyle)
	return style
}

// ZeroUninitialized reports whether unassigned variables read as zero
func (c *Config) ZeroUninitialized() bool {
	return c.Semantics.Uninitialized == UninitializedZero
}

// Retention returns the journal retention as a duration
func (c *Config) Retention() time.Duration {
	return time.Duration(c.Journal.RetentionDays) * 24 * time.Hour
}
