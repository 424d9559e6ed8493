// Package config loads osiview configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/osiview/internal/visibility"
)

// EnvPrefix is the prefix for environment overrides (OSIVIEW_UI_HEADER_VISIBLE, ...).
const EnvPrefix = "OSIVIEW"

// Config is the full application configuration.
type Config struct {
	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// UIConfig configures the terminal interface.
type UIConfig struct {
	// HeaderVisible is the header state each session starts with.
	HeaderVisible bool `mapstructure:"header_visible" yaml:"header_visible"`
	// SystemTheme pins the system color-scheme signal: auto, light or dark.
	SystemTheme string `mapstructure:"system_theme" yaml:"system_theme"`
}

// StorageConfig configures preference storage.
type StorageConfig struct {
	Path          string `mapstructure:"path" yaml:"path"`
	BusyTimeoutMs int    `mapstructure:"busy_timeout_ms" yaml:"busy_timeout_ms"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	// File receives logs while the TUI owns the terminal. Empty disables them.
	File string `mapstructure:"file" yaml:"file"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			HeaderVisible: visibility.DefaultVisible,
			SystemTheme:   "auto",
		},
		Storage: StorageConfig{
			Path:          DefaultDatabasePath(),
			BusyTimeoutMs: 5000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   DefaultLogPath(),
		},
	}
}

// SetDefaults registers DefaultConfig values on v so env-only keys resolve.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("ui.header_visible", d.UI.HeaderVisible)
	v.SetDefault("ui.system_theme", d.UI.SystemTheme)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("storage.busy_timeout_ms", d.Storage.BusyTimeoutMs)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)
}

// NewViper returns a viper instance with defaults and env overrides wired.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (or the discovered config file when path is empty) into v
// and decodes the result. A missing discovered file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path == "" {
		path = FindConfigPath()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Storage.Path = expandHome(cfg.Storage.Path)
	cfg.Logging.File = expandHome(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	validSystemThemes = map[string]bool{"auto": true, "light": true, "dark": true}
	validLogLevels    = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true, "disabled": true}
	validLogFormats   = map[string]bool{"console": true, "json": true}
)

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validSystemThemes[strings.ToLower(c.UI.SystemTheme)] {
		return fmt.Errorf("invalid ui.system_theme %q: must be auto, light or dark", c.UI.SystemTheme)
	}
	if strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("storage.path is required")
	}
	if c.Storage.BusyTimeoutMs < 0 {
		return fmt.Errorf("storage.busy_timeout_ms must be >= 0")
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	if !validLogFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("invalid logging.format %q: must be console or json", c.Logging.Format)
	}
	return nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}
