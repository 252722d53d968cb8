// Package config provides configuration loading for editcore.
//
// Configuration files are TOML or YAML, selected by extension. A missing
// file is not an error: Load returns the defaults. Parse failures return a
// *ParseError. The Watcher re-loads the file on change and notifies a
// callback.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Default values applied where the file is silent.
const (
	DefaultTabWidth       = 4
	DefaultHistoryLimit   = 1000
	DefaultCoalesceWindow = 300 * time.Millisecond
	DefaultTheme          = "default"
)

// Duration wraps time.Duration so config files can write "300ms" or "2s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config holds the editing-core settings.
type Config struct {
	// TabWidth is the display width of a tab character.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`

	// DefaultLanguage is used when a document's extension is unknown.
	DefaultLanguage string `toml:"default_language" yaml:"default_language"`

	// Extensions maps extra file extensions to language ids, on top of the
	// extensions the tokenizers themselves claim.
	Extensions map[string]string `toml:"extensions" yaml:"extensions"`

	// HistoryLimit bounds the undo stack per document.
	HistoryLimit int `toml:"history_limit" yaml:"history_limit"`

	// CoalesceWindow is the undo coalescing window.
	CoalesceWindow Duration `toml:"coalesce_window" yaml:"coalesce_window"`

	// Theme names the token style theme.
	Theme string `toml:"theme" yaml:"theme"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TabWidth:        DefaultTabWidth,
		DefaultLanguage: "text",
		Extensions:      map[string]string{},
		HistoryLimit:    DefaultHistoryLimit,
		CoalesceWindow:  Duration(DefaultCoalesceWindow),
		Theme:           DefaultTheme,
	}
}

// Load reads the configuration file at path. A missing file returns the
// defaults, not an error. Values absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := Default()
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize repairs out-of-range values instead of rejecting the file.
func (c *Config) normalize() {
	if c.TabWidth <= 0 {
		c.TabWidth = DefaultTabWidth
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = DefaultHistoryLimit
	}
	if c.CoalesceWindow < 0 {
		c.CoalesceWindow = Duration(DefaultCoalesceWindow)
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.Extensions == nil {
		c.Extensions = map[string]string{}
	}
}

// LanguageForPath returns the language id the extension overrides map to,
// or "" when the path's extension carries no override.
func (c *Config) LanguageForPath(path string) string {
	return c.Extensions[filepath.Ext(path)]
}
