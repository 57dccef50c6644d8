// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/docexport/internal/observability"
	"github.com/jonathan/docexport/internal/sandbox"
)

// Config represents the configuration that can be loaded from a JSON or YAML
// file. All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	OutputDir     string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	DefaultFormat string `json:"default_format,omitempty" yaml:"default_format,omitempty" validate:"omitempty,oneof=pdf word docx txt text all"`
	Verbose       bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`

	// ExportTimeoutSeconds bounds one export call. Zero falls back to the
	// default and a negative value disables the limit.
	ExportTimeoutSeconds int `json:"export_timeout_seconds,omitempty" yaml:"export_timeout_seconds,omitempty" validate:"min=-1,max=600"`

	Log     observability.LogConfig `json:"log" yaml:"log"`
	Browser BrowserConfig           `json:"browser" yaml:"browser"`
	Settle  SettleConfig            `json:"settle" yaml:"settle"`
	Server  ServerConfig            `json:"server" yaml:"server"`
}

// BrowserConfig configures the headless browser sandbox.
type BrowserConfig struct {
	ChromePath     string `json:"chrome_path,omitempty" yaml:"chrome_path,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"min=0,max=600"`
}

// SettleConfig configures how long the sandbox waits for layout.
type SettleConfig struct {
	IntervalMS    int `json:"interval_ms,omitempty" yaml:"interval_ms,omitempty" validate:"min=0"`
	StableSamples int `json:"stable_samples,omitempty" yaml:"stable_samples,omitempty" validate:"min=0,max=50"`
	TimeoutMS     int `json:"timeout_ms,omitempty" yaml:"timeout_ms,omitempty" validate:"min=0,max=60000"`
	FallbackMS    int `json:"fallback_ms,omitempty" yaml:"fallback_ms,omitempty" validate:"min=0,max=60000"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port           int      `json:"port,omitempty" yaml:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	AllowedOrigins []string `json:"allowed_origins,omitempty" yaml:"allowed_origins,omitempty"`
	MaxBodyBytes   int64    `json:"max_body_bytes,omitempty" yaml:"max_body_bytes,omitempty" validate:"min=0"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	settle := sandbox.DefaultSettleOptions()
	return Config{
		OutputDir:            ".",
		DefaultFormat:        "pdf",
		ExportTimeoutSeconds: 120,
		Log:                  observability.LogConfig{Level: "info", Format: "pretty"},
		Browser:              BrowserConfig{TimeoutSeconds: int(sandbox.DefaultChromeTimeout / time.Second)},
		Settle: SettleConfig{
			IntervalMS:    int(settle.Interval / time.Millisecond),
			StableSamples: settle.StableSamples,
			TimeoutMS:     int(settle.Timeout / time.Millisecond),
			FallbackMS:    int(settle.Fallback / time.Millisecond),
		},
		Server: ServerConfig{
			Port:         8080,
			MaxBodyBytes: 1 << 20,
		},
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

var validate = validator.New()

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' check (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Settle.IntervalMS > 0 && c.Settle.TimeoutMS > 0 && c.Settle.TimeoutMS < c.Settle.IntervalMS {
		return fmt.Errorf("config error: 'settle.timeout_ms' must not be shorter than 'settle.interval_ms'")
	}

	if c.Browser.ChromePath != "" {
		if _, err := os.Stat(c.Browser.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.Browser.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.DefaultFormat == "" {
		result.DefaultFormat = defaults.DefaultFormat
	}
	if result.ExportTimeoutSeconds == 0 {
		result.ExportTimeoutSeconds = defaults.ExportTimeoutSeconds
	}
	if result.Log.Level == "" {
		result.Log.Level = defaults.Log.Level
	}
	if result.Log.Format == "" {
		result.Log.Format = defaults.Log.Format
	}
	if result.Log.TimeFormat == "" {
		result.Log.TimeFormat = defaults.Log.TimeFormat
	}
	if result.Browser.ChromePath == "" {
		result.Browser.ChromePath = defaults.Browser.ChromePath
	}
	if result.Browser.TimeoutSeconds == 0 {
		result.Browser.TimeoutSeconds = defaults.Browser.TimeoutSeconds
	}
	if result.Settle.IntervalMS == 0 {
		result.Settle.IntervalMS = defaults.Settle.IntervalMS
	}
	if result.Settle.StableSamples == 0 {
		result.Settle.StableSamples = defaults.Settle.StableSamples
	}
	if result.Settle.TimeoutMS == 0 {
		result.Settle.TimeoutMS = defaults.Settle.TimeoutMS
	}
	if result.Settle.FallbackMS == 0 {
		result.Settle.FallbackMS = defaults.Settle.FallbackMS
	}
	if result.Server.Port == 0 {
		result.Server.Port = defaults.Server.Port
	}
	if len(result.Server.AllowedOrigins) == 0 {
		result.Server.AllowedOrigins = defaults.Server.AllowedOrigins
	}
	if result.Server.MaxBodyBytes == 0 {
		result.Server.MaxBodyBytes = defaults.Server.MaxBodyBytes
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv overrides fields from environment variables: CHROME_PATH,
// DOCEXPORT_OUTPUT_DIR, DOCEXPORT_LOG_LEVEL, DOCEXPORT_LOG_FORMAT and
// DOCEXPORT_PORT. getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("CHROME_PATH"); v != "" {
		c.Browser.ChromePath = v
	}
	if v := getenv("DOCEXPORT_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := getenv("DOCEXPORT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("DOCEXPORT_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := getenv("DOCEXPORT_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DOCEXPORT_PORT: %v", err)
		}
		c.Server.Port = port
	}
	return nil
}

// SettleOptions converts the settle section into sandbox options.
func (c *Config) SettleOptions() sandbox.SettleOptions {
	return sandbox.SettleOptions{
		Interval:      time.Duration(c.Settle.IntervalMS) * time.Millisecond,
		StableSamples: c.Settle.StableSamples,
		Timeout:       time.Duration(c.Settle.TimeoutMS) * time.Millisecond,
		Fallback:      time.Duration(c.Settle.FallbackMS) * time.Millisecond,
	}
}

// BrowserTimeout returns the per-surface browser timeout.
func (c *Config) BrowserTimeout() time.Duration {
	return time.Duration(c.Browser.TimeoutSeconds) * time.Second
}

// ExportTimeout returns the per-export timeout, 0 when the limit is disabled.
func (c *Config) ExportTimeout() time.Duration {
	if c.ExportTimeoutSeconds < 0 {
		return 0
	}
	return time.Duration(c.ExportTimeoutSeconds) * time.Second
}
