// Package config loads the clines.json ignore configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/viper"
)

// Variant selects between the two behaviours of the tool. Basic keeps an
// empty in-memory default and renders a colored label without a table;
// Extended persists a populated default, skips binary assets and renders
// the per-extension table.
type Variant int

const (
	Extended Variant = iota
	Basic
)

func (v Variant) String() string {
	if v == Basic {
		return "basic"
	}
	return "extended"
}

var ErrInvalidPattern = errors.New("invalid ignore pattern")

// Config lists what the walker skips. IgnoreFiles are filename suffixes,
// IgnoreDirs exact directory basenames, IgnorePaths doublestar globs
// relative to the scan root.
type Config struct {
	IgnoreFiles []string `mapstructure:"ignoreFiles" json:"ignoreFiles"`
	IgnoreDirs  []string `mapstructure:"ignoreDirs" json:"ignoreDirs"`
	IgnorePaths []string `mapstructure:"ignorePaths" json:"ignorePaths,omitempty"`
}

// Default returns the in-memory default for variant.
func Default(variant Variant) Config {
	if variant == Basic {
		return Config{IgnoreFiles: []string{}, IgnoreDirs: []string{}}
	}
	return Config{
		IgnoreFiles: append([]string(nil), DefaultIgnoreFiles...),
		IgnoreDirs:  append([]string(nil), DefaultIgnoreDirs...),
	}
}

// Load reads path like Read. When the file is missing and variant is
// Extended, the default is written to path first.
func Load(path string, variant Variant) (Config, error) {
	if variant == Extended {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			cfg := Default(variant)
			return cfg, Write(path, cfg)
		}
	}
	return Read(path, variant)
}

// Read parses path without touching the disk. The returned Config is
// always usable: when the file is missing, unreadable or malformed it is
// the variant default, and the error describes what went wrong. A missing
// file is not an error.
func Read(path string, variant Variant) (Config, error) {
	cfg := Default(variant)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("stat config %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var loaded Config
	if err := v.Unmarshal(&loaded); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	err := loaded.normalize()
	return loaded, err
}

// Write stores cfg as indented JSON. Keys keep their camelCase spelling,
// which viper's writer would lowercase.
func Write(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// normalize trims entries, drops blanks and duplicates, and removes globs
// that doublestar cannot parse. Dropped globs are reported in the error.
func (c *Config) normalize() error {
	c.IgnoreFiles = dedupe(c.IgnoreFiles)
	c.IgnoreDirs = dedupe(c.IgnoreDirs)
	paths := dedupe(c.IgnorePaths)

	var errs []error
	c.IgnorePaths = paths[:0]
	for _, p := range paths {
		if !doublestar.ValidatePattern(p) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidPattern, p))
			continue
		}
		c.IgnorePaths = append(c.IgnorePaths, p)
	}
	return errors.Join(errs...)
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
