// Package config loads settings from config.toml and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/pelletier/go-toml/v2"
)

const (
	appName        = "pyeongsam"
	configFileName = "config.toml"
)

// Output formats for non-interactive mode.
const (
	FormatText = "text"
	FormatHTML = "html"
)

// Config holds user settings. Zero fields in a file keep their defaults.
type Config struct {
	// Timezone names the IANA zone used to decide "today"; empty means local.
	Timezone string `toml:"timezone"`
	Format   string `toml:"format"`
	BarWidth int    `toml:"bar_width"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Format:   FormatText,
		BarWidth: 40,
	}
}

// Dir returns XDG_CONFIG_HOME/pyeongsam or ~/.config/pyeongsam
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(Dir(), configFileName)
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		var file Config
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		cfg.merge(&file)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.Timezone != "" {
		c.Timezone = o.Timezone
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.BarWidth > 0 {
		c.BarWidth = o.BarWidth
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PYEONGSAM_TZ"); v != "" {
		c.Timezone = v
	}
	if v := os.Getenv("PYEONGSAM_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("PYEONGSAM_BAR_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PYEONGSAM_BAR_WIDTH: %w", err)
		}
		c.BarWidth = n
	}
	return nil
}

// Validate checks the format, bar width and time zone.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatHTML:
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", c.Format, FormatText, FormatHTML)
	}
	if c.BarWidth <= 0 {
		return fmt.Errorf("bar width must be positive, got %d", c.BarWidth)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone, defaulting to the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
