package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fs2dt/fs2dt/pkg/fs2dt"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables overriding the config file.
const (
	EnvCatalog  = "FS2DT_CATALOG"
	EnvLimit    = "FS2DT_LIMIT"
	EnvTimezone = "FS2DT_TIMEZONE"
)

type Config struct {
	Catalog       string `yaml:"catalog"`
	Limit         string `yaml:"limit"`
	Timezone      string `yaml:"timezone,omitempty"`
	ExcludeHidden bool   `yaml:"exclude_hidden"`
	SkipUnchanged bool   `yaml:"skip_unchanged"`
}

const ConfigFileName = "fs2dt.yaml"

// Load reads fs2dt.yaml from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file. Unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %v: %w", path, err, fs2dt.ErrInvalidConfig)
	}
	return &cfg, nil
}

// ApplyEnv overrides fields with FS2DT_* environment variables when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvCatalog); v != "" {
		c.Catalog = v
	}
	if v := os.Getenv(EnvLimit); v != "" {
		c.Limit = v
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		c.Timezone = v
	}
}

// Location resolves Timezone. Empty means the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %v: %w", c.Timezone, err, fs2dt.ErrInvalidConfig)
	}
	return loc, nil
}

// DefaultCatalogPath returns F-Spot's catalog location under home, falling
// back to ~/photos.db when the F-Spot config directory has none.
func DefaultCatalogPath(home string) string {
	fspot := filepath.Join(home, ".config", "f-spot", fs2dt.DefaultCatalogName)
	if _, err := os.Stat(fspot); err == nil {
		return fspot
	}
	return filepath.Join(home, fs2dt.DefaultCatalogName)
}
