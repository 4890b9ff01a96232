// Package config handles loading and saving user configuration for pinzi.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pierophp/pinyin-extension/internal/dictionary"
	"github.com/pierophp/pinyin-extension/internal/pinyin"
	"github.com/pierophp/pinyin-extension/internal/ruby"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	Dictionary  DictionaryConfig `yaml:"dictionary"`
	HiddenWords []string         `yaml:"hidden_words"`
	Colors      map[int]string   `yaml:"colors,omitempty"` // tone number -> CSS colour
	Server      ServerConfig     `yaml:"server"`
	FontPath    string           `yaml:"font_path,omitempty"`
}

// DictionaryConfig holds settings for the remote dictionary.
type DictionaryConfig struct {
	BaseURL   string `yaml:"base_url"`
	Token     string `yaml:"token,omitempty"`
	TokenFile string `yaml:"token_file,omitempty"` // plain token or cookies.txt
	CachePath string `yaml:"cache_path,omitempty"` // SQLite file; empty keeps the cache in memory
	CacheTTL  string `yaml:"cache_ttl"`            // e.g. "168h"
	Timeout   string `yaml:"timeout"`              // e.g. "15s"
}

// ServerConfig holds settings for `pinzi serve`.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Dictionary: DictionaryConfig{
			BaseURL:  dictionary.DefaultBaseURL,
			CacheTTL: "168h",
			Timeout:  "15s",
		},
		HiddenWords: append([]string(nil), ruby.DefaultHiddenWords...),
		Server:      ServerConfig{Addr: "127.0.0.1:8340"},
	}
}

// Load reads configuration from a YAML file. Missing fields keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDir loads FileName from dir, falling back to Default when it does not exist.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks values that are parsed lazily.
func (c *Config) Validate() error {
	if _, err := c.Dictionary.TTL(); err != nil {
		return err
	}
	if _, err := c.Dictionary.RequestTimeout(); err != nil {
		return err
	}
	for tone := range c.Colors {
		if !pinyin.Tone(tone).Valid() {
			return fmt.Errorf("colors: unknown tone %d", tone)
		}
	}
	return nil
}

// TTL returns the parsed cache TTL. Empty means no expiry.
func (d DictionaryConfig) TTL() (time.Duration, error) {
	return parseDuration("cache_ttl", d.CacheTTL)
}

// RequestTimeout returns the parsed HTTP timeout.
func (d DictionaryConfig) RequestTimeout() (time.Duration, error) {
	return parseDuration("timeout", d.Timeout)
}

func parseDuration(field, s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("dictionary.%s: %w", field, err)
	}
	return d, nil
}

// Palette merges the configured colours over the default tone palette.
func (c *Config) Palette() ruby.Palette {
	p := ruby.DefaultPalette()
	for tone, color := range c.Colors {
		p[pinyin.Tone(tone)] = color
	}
	return p
}

// Dir returns the default configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pinzi"), nil
}

// EnsureDir creates dir if it doesn't exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
