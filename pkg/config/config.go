// Package config loads the anchorui.yaml manager configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/anchorui/pkg/graphics"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "anchorui.yaml"

// Id allocation schemes.
const (
	SequentialIDs = "sequential"
	ULIDs         = "ulid"
)

// Config represents the optional anchorui.yaml configuration.
type Config struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Styles  StylesConfig  `yaml:"styles"`
	Fonts   FontsConfig   `yaml:"fonts"`
	Assets  AssetsConfig  `yaml:"assets"`
	IDs     IDsConfig     `yaml:"ids"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ScreenConfig is the size of the root widget.
type ScreenConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// StylesConfig lists the style sheets imported at start.
type StylesConfig struct {
	Files []string `yaml:"files,omitempty"`
	// Watch reloads the files when they change on disk.
	Watch bool `yaml:"watch,omitempty"`
}

// FontsConfig registers TrueType fonts by name.
type FontsConfig struct {
	Default string            `yaml:"default,omitempty"`
	Files   map[string]string `yaml:"files,omitempty"`
	Size    float64           `yaml:"size,omitempty"`
}

// AssetsConfig contains asset lookup settings.
type AssetsConfig struct {
	// Root is the base directory for relative image paths.
	Root string `yaml:"root,omitempty"`
}

// IDsConfig selects the widget id allocator.
type IDsConfig struct {
	Scheme string `yaml:"scheme,omitempty"`
}

// LogConfig contains error log settings.
type LogConfig struct {
	Verbose bool `yaml:"verbose,omitempty"`
}

// MetricsConfig contains prometheus settings.
type MetricsConfig struct {
	Namespace string `yaml:"namespace,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and validates a configuration file. Relative paths inside it
// are resolved against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.resolvePaths(filepath.Dir(path))
	return cfg, nil
}

// LoadOptional reads anchorui.yaml from dir if present and falls back to
// the defaults otherwise.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Load(path)
}

// Parse decodes a configuration document, fills in defaults and validates
// the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Screen.Width == 0 {
		c.Screen.Width = 800
	}
	if c.Screen.Height == 0 {
		c.Screen.Height = 600
	}
	if c.Fonts.Size == 0 {
		c.Fonts.Size = 13
	}
	c.IDs.Scheme = strings.ToLower(strings.TrimSpace(c.IDs.Scheme))
	if c.IDs.Scheme == "" {
		c.IDs.Scheme = SequentialIDs
	}
	c.Metrics.Namespace = strings.TrimSpace(c.Metrics.Namespace)
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "anchorui"
	}
}

func (c *Config) resolvePaths(dir string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	for i, f := range c.Styles.Files {
		c.Styles.Files[i] = abs(f)
	}
	for name, f := range c.Fonts.Files {
		c.Fonts.Files[name] = abs(f)
	}
	if c.Assets.Root == "" {
		c.Assets.Root = dir
	} else {
		c.Assets.Root = abs(c.Assets.Root)
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	switch c.IDs.Scheme {
	case SequentialIDs, ULIDs:
	default:
		return fmt.Errorf("unknown id scheme %q", c.IDs.Scheme)
	}
	if c.Fonts.Size < 0 {
		return fmt.Errorf("font size must not be negative, got %v", c.Fonts.Size)
	}
	if c.Fonts.Default != "" && c.Fonts.Files[c.Fonts.Default] == "" {
		return fmt.Errorf("default font %q is not listed in fonts.files", c.Fonts.Default)
	}
	return nil
}

// ScreenRect returns the root widget rectangle.
func (c *Config) ScreenRect() graphics.Rect {
	return graphics.Rect{Width: c.Screen.Width, Height: c.Screen.Height}
}
