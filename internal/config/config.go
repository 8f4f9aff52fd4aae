package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fshell/internal/ui"
	"github.com/vvka-141/fshell/pkg/fshell"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables that override file settings.
const (
	EnvStartDir = "FSHELL_START_DIR"
	EnvPrompt   = "FSHELL_PROMPT"
	EnvColor    = "FSHELL_COLOR"
)

// Config holds the user's shell settings. Empty fields keep their defaults.
type Config struct {
	StartDir string `yaml:"start_dir,omitempty"`
	Prompt   string `yaml:"prompt,omitempty"`
	Color    string `yaml:"color,omitempty"`
	Banner   *bool  `yaml:"banner,omitempty"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	banner := true
	return &Config{
		Prompt: fshell.DefaultPrompt,
		Color:  string(ui.ColorAuto),
		Banner: &banner,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/fshell/fshell.yaml, or the
// platform's user config directory when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "fshell", fshell.ConfigFileName), nil
}

// Load reads fshell.yaml from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, fshell.ConfigFileName))
}

// LoadFile reads the config file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", fshell.ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Merge overlays the non-empty fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.StartDir != "" {
		c.StartDir = other.StartDir
	}
	if other.Prompt != "" {
		c.Prompt = other.Prompt
	}
	if other.Color != "" {
		c.Color = other.Color
	}
	if other.Banner != nil {
		banner := *other.Banner
		c.Banner = &banner
	}
}

// FromEnv builds a Config from the FSHELL_* variables visible to lookup.
func FromEnv(lookup func(string) (string, bool)) *Config {
	var cfg Config
	if v, ok := lookup(EnvStartDir); ok {
		cfg.StartDir = v
	}
	if v, ok := lookup(EnvPrompt); ok {
		cfg.Prompt = v
	}
	if v, ok := lookup(EnvColor); ok {
		cfg.Color = v
	}
	return &cfg
}

// Validate checks the field values.
func (c *Config) Validate() error {
	if _, err := ui.ParseColorMode(c.Color); err != nil {
		return fmt.Errorf("%w: %v", fshell.ErrInvalidConfig, err)
	}
	return nil
}

// ColorMode returns the parsed color setting, auto when unset or invalid.
func (c *Config) ColorMode() ui.ColorMode {
	mode, err := ui.ParseColorMode(c.Color)
	if err != nil {
		return ui.ColorAuto
	}
	return mode
}

// ShowBanner reports whether the command list is printed at start-up.
func (c *Config) ShowBanner() bool {
	return c.Banner == nil || *c.Banner
}
