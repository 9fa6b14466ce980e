package logogrid

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidGrid      = errors.New("grid columns and rows must be at least 1")
	ErrInvalidCanvas    = errors.New("canvas width and height must be positive")
	ErrInvalidThreshold = errors.New("threshold must be between 0 and 255")
	ErrInvalidPolicy    = errors.New("unknown layout policy")
	ErrInPlaceWatch     = errors.New("watch mode cannot overwrite sources in place")
)

// Source orderings.
const (
	OrderName      = "name"
	OrderDiscovery = "discovery"
)

// Config drives a pipeline run.
type Config struct {
	SourceDir  string           `yaml:"source_dir"`
	Output     string           `yaml:"output"`
	Extensions []string         `yaml:"extensions"`
	Order      string           `yaml:"order"`
	Language   string           `yaml:"language"`
	Threshold  int              `yaml:"threshold"`
	Grid       GridSpec         `yaml:"grid"`
	Canvas     SlideCanvas      `yaml:"canvas"`
	Layout     LayoutPolicy     `yaml:"layout"`
	Normalized NormalizedConfig `yaml:"normalized"`
	Deck       DeckConfig       `yaml:"deck"`
	Preview    string           `yaml:"preview"`
	Log        LogConfig        `yaml:"log"`
}

// NormalizedConfig controls where processed images are persisted. With
// neither field set, processed images stay in memory.
type NormalizedConfig struct {
	Dir     string `yaml:"dir"`
	InPlace bool   `yaml:"in_place"`
}

type DeckConfig struct {
	Title   string `yaml:"title"`
	Creator string `yaml:"creator"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		SourceDir:  "logos",
		Output:     "logos_presentation.pptx",
		Extensions: []string{".png", ".jpg", ".jpeg"},
		Order:      OrderName,
		Language:   "und",
		Threshold:  DefaultThreshold,
		Grid:       GridSpec{Columns: 3, Rows: 10},
		Canvas:     SlideCanvas{Width: 4, Height: 9},
		Layout:     DefaultLayoutPolicy(),
		Deck:       DeckConfig{Creator: "logogrid"},
		Log:        LogConfig{Level: "info", Console: true},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys missing from
// the file keep their default values. The result is not validated.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for a single build.
func (c Config) Validate() error {
	if c.SourceDir == "" {
		return errors.New("source_dir is required")
	}
	if c.Output == "" {
		return errors.New("output is required")
	}
	if len(c.Extensions) == 0 {
		return errors.New("at least one extension is required")
	}
	if c.Order != OrderName && c.Order != OrderDiscovery {
		return fmt.Errorf("order %q: must be %q or %q", c.Order, OrderName, OrderDiscovery)
	}
	if c.Threshold < 0 || c.Threshold > 255 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreshold, c.Threshold)
	}
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if err := c.Canvas.Validate(); err != nil {
		return err
	}
	if err := c.Layout.Validate(); err != nil {
		return err
	}
	if c.Normalized.InPlace && c.Normalized.Dir != "" {
		return errors.New("normalized.dir and normalized.in_place are mutually exclusive")
	}
	if c.Preview != "" && c.matchesSource(c.Preview) {
		return fmt.Errorf("preview %s would be picked up as a source", c.Preview)
	}
	return nil
}

// ValidateWatch checks the configuration for watch mode.
func (c Config) ValidateWatch() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Normalized.InPlace {
		return ErrInPlaceWatch
	}
	if c.Normalized.Dir != "" && sameDir(c.Normalized.Dir, c.SourceDir) {
		return errors.New("watch mode cannot write normalized images into the source directory")
	}
	return nil
}

// matchesSource reports whether a file at path would be enumerated as a
// source by a later run.
func (c Config) matchesSource(path string) bool {
	return sameDir(filepath.Dir(path), c.SourceDir) && hasExtension(path, c.Extensions)
}

func sameDir(a, b string) bool {
	aa, err := filepath.Abs(a)
	if err != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return aa == bb
}

func hasExtension(name string, exts []string) bool {
	ext := filepath.Ext(name)
	for _, e := range exts {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
