package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Columns       int    `json:"columns" yaml:"columns"`     // 0 detects the terminal width
	MaxWidth      int    `json:"max_width" yaml:"max_width"` // 0 derives from columns
	Color         string `json:"color" yaml:"color"`         // "auto", "always", "never"
	BoxStyle      string `json:"box_style" yaml:"box_style"` // "sharp", "rounded"
	WidthMode     string `json:"width_mode" yaml:"width_mode"`
	AmbiguousWide bool   `json:"ambiguous_wide" yaml:"ambiguous_wide"` // unicode width mode only
	LogLevel      string `json:"log_level" yaml:"log_level"`
	LogFile       string `json:"log_file" yaml:"log_file"`
	LogFormat     string `json:"log_format" yaml:"log_format"`
}

// Width modes
const (
	WidthModeCJK            = "cjk"
	WidthModeCJKNarrowPunct = "cjk-narrow-punct"
	WidthModeUnicode        = "unicode"
)

// Default returns a configuration with default values
func Default() Config {
	return Config{
		Columns:   0,
		MaxWidth:  0,
		Color:     "auto",
		BoxStyle:  "sharp",
		WidthMode: WidthModeCJK,
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// Load loads configuration from the specified path
// If the file doesn't exist, creates one with default values.
// Fields missing from the file keep their defaults.
func Load(configPath string) (Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return Config{}, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(configPath, cfg); err != nil {
				return Config{}, fmt.Errorf("failed to create default config: %w", err)
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if isYAML(configPath) {
		err = yaml.Unmarshal(data, &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves the configuration to the specified path
func Save(configPath string, cfg Config) error {
	var (
		data []byte
		err  error
	)
	if isYAML(configPath) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.Columns < 0 {
		return fmt.Errorf("columns must not be negative, got: %d", c.Columns)
	}
	if c.MaxWidth < 0 {
		return fmt.Errorf("max_width must not be negative, got: %d", c.MaxWidth)
	}

	if !oneOf(c.Color, "auto", "always", "never") {
		return fmt.Errorf("color must be auto, always or never, got: %q", c.Color)
	}
	if !oneOf(c.BoxStyle, "sharp", "rounded") {
		return fmt.Errorf("box_style must be sharp or rounded, got: %q", c.BoxStyle)
	}
	if !oneOf(c.WidthMode, WidthModeCJK, WidthModeCJKNarrowPunct, WidthModeUnicode) {
		return fmt.Errorf("unsupported width_mode: %q", c.WidthMode)
	}

	if !oneOf(strings.ToLower(c.LogLevel), "debug", "info", "warn", "warning", "error") {
		return fmt.Errorf("invalid log_level: %q", c.LogLevel)
	}
	if !oneOf(strings.ToLower(c.LogFormat), "json", "text") {
		return fmt.Errorf("invalid log_format: %q", c.LogFormat)
	}

	return nil
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".termnote/config.json"
	}
	return filepath.Join(homeDir, ".termnote", "config.json")
}
