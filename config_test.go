package logogrid

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "logogrid.yaml", []byte(`
source_dir: partners
grid:
  columns: 4
layout:
  policy: legacy
normalized:
  dir: out/normalized
deck:
  title: Partners
`))
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultConfig()
	want.SourceDir = "partners"
	want.Grid.Columns = 4
	want.Layout.Kind = PolicyLegacy
	want.Normalized.Dir = "out/normalized"
	want.Deck.Title = "Partners"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	bad := writeFile(t, dir, "bad.yaml", []byte("grid: [1, 2"))
	if _, err := LoadConfig(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		anyErr  bool
	}{
		{"defaults", func(*Config) {}, nil, false},
		{"zero columns", func(c *Config) { c.Grid.Columns = 0 }, ErrInvalidGrid, true},
		{"zero rows", func(c *Config) { c.Grid.Rows = 0 }, ErrInvalidGrid, true},
		{"negative height", func(c *Config) { c.Canvas.Height = -1 }, ErrInvalidCanvas, true},
		{"canvas below one inch", func(c *Config) { c.Canvas.Width = 0.8 }, ErrInvalidCanvas, true},
		{"canvas above 56 inches", func(c *Config) { c.Canvas.Height = 57 }, ErrInvalidCanvas, true},
		{"canvas at the limits", func(c *Config) { c.Canvas = SlideCanvas{Width: 1, Height: 56} }, nil, false},
		{"threshold too high", func(c *Config) { c.Threshold = 256 }, ErrInvalidThreshold, true},
		{"threshold negative", func(c *Config) { c.Threshold = -1 }, ErrInvalidThreshold, true},
		{"unknown policy", func(c *Config) { c.Layout.Kind = "diagonal" }, ErrInvalidPolicy, true},
		{"unknown order", func(c *Config) { c.Order = "size" }, nil, true},
		{"no extensions", func(c *Config) { c.Extensions = nil }, nil, true},
		{"no output", func(c *Config) { c.Output = "" }, nil, true},
		{"zero dpi", func(c *Config) { c.Layout.DPI = 0 }, nil, true},
		{"height fraction above one", func(c *Config) { c.Layout.HeightFraction = 1.5 }, nil, true},
		{"dir and in place", func(c *Config) {
			c.Normalized.Dir = "out"
			c.Normalized.InPlace = true
		}, nil, true},
		{"preview inside sources", func(c *Config) { c.Preview = filepath.Join(c.SourceDir, "preview.png") }, nil, true},
		{"preview elsewhere", func(c *Config) { c.Preview = "preview.png" }, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.anyErr {
				t.Fatalf("Validate() = %v, want error %v", err, tt.anyErr)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateWatch(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ValidateWatch(); err != nil {
		t.Errorf("defaults: %v", err)
	}

	cfg.Normalized.InPlace = true
	if err := cfg.ValidateWatch(); !errors.Is(err, ErrInPlaceWatch) {
		t.Errorf("in place: err = %v, want ErrInPlaceWatch", err)
	}

	cfg = DefaultConfig()
	cfg.Normalized.Dir = cfg.SourceDir + "/"
	if err := cfg.ValidateWatch(); err == nil {
		t.Error("expected error for normalized dir equal to source dir")
	}
}
