package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DataDir != "data" {
		t.Errorf("expected default data_dir %q, got %q", "data", cfg.DataDir)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir %q, got %q", "public", cfg.OutputDir)
	}
	if cfg.Carousel.Interval != 5*time.Second {
		t.Errorf("expected default carousel interval 5s, got %v", cfg.Carousel.Interval)
	}
	if cfg.HomeLimit != 3 {
		t.Errorf("expected default home_limit 3, got %d", cfg.HomeLimit)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orgsite.yml")

	original := DefaultConfig()
	original.Site.Title = "Robotics Club"
	original.OutputDir = "dist"
	original.Carousel.Interval = 8 * time.Second
	original.Officers = []GridBreakpoint{
		{AfterCount: 0, Columns: 2},
		{AfterCount: 2, Header: "Board", Columns: 3},
	}
	original.Navigation = []NavControl{{ID: "a", Target: "about"}}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Site.Title != original.Site.Title {
		t.Errorf("site.title: got %q, want %q", loaded.Site.Title, original.Site.Title)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.Carousel.Interval != original.Carousel.Interval {
		t.Errorf("carousel.interval: got %v, want %v", loaded.Carousel.Interval, original.Carousel.Interval)
	}
	if len(loaded.Officers) != 2 || loaded.Officers[1].Header != "Board" {
		t.Errorf("officers: got %+v", loaded.Officers)
	}
	if len(loaded.Navigation) != 1 || loaded.Navigation[0].Target != "about" {
		t.Errorf("navigation: got %+v", loaded.Navigation)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir, got %q", cfg.OutputDir)
	}
	if len(cfg.Officers) != len(DefaultOfficerLayout()) {
		t.Errorf("expected default officer layout, got %+v", cfg.Officers)
	}
	if len(cfg.Navigation) != len(DefaultNavigation()) {
		t.Errorf("expected default navigation, got %+v", cfg.Navigation)
	}
}

func TestLoadConfiguredLayoutReplacesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orgsite.yml")
	data := "officers:\n  - after_count: 0\n    columns: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Officers) != 1 || cfg.Officers[0].Columns != 5 || cfg.Officers[0].Header != "" {
		t.Errorf("officers = %+v, want a single 5-column grid", cfg.Officers)
	}
}

func TestLoadConfiguredExcludeKeepsDefaults(t *testing.T) {
	before := slices.Clone(DefaultExcludes)
	path := filepath.Join(t.TempDir(), "orgsite.yml")
	if err := os.WriteFile(path, []byte("exclude:\n  - \"*.tmp\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(cfg.Exclude, []string{"*.tmp"}) {
		t.Errorf("exclude = %v, want [*.tmp]", cfg.Exclude)
	}
	if !slices.Equal(cfg.Include, []string{"**"}) {
		t.Errorf("include = %v, want the default", cfg.Include)
	}
	if !slices.Equal(DefaultExcludes, before) {
		t.Errorf("DefaultExcludes changed to %v", DefaultExcludes)
	}

	fresh, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load missing: %v", err)
	}
	if !slices.Equal(fresh.Exclude, before) {
		t.Errorf("later default exclude = %v, want %v", fresh.Exclude, before)
	}
	if !slices.Equal(DefaultConfig().Exclude, before) {
		t.Errorf("DefaultConfig().Exclude = %v, want %v", DefaultConfig().Exclude, before)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("ORGSITE_OUTPUT_DIR", "build")
	t.Setenv("ORGSITE_SERVER__PORT", "9000")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "build" {
		t.Errorf("env override failed: got %q, want %q", loaded.OutputDir, "build")
	}
	if loaded.Server.Port != 9000 {
		t.Errorf("nested env override failed: got %d, want 9000", loaded.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, true},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
		{"negative home limit", func(c *Config) { c.HomeLimit = -1 }, true},
		{"zero interval", func(c *Config) { c.Carousel.Interval = 0 }, true},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, true},
		{"zero columns", func(c *Config) { c.Officers = []GridBreakpoint{{AfterCount: 0}} }, true},
		{"nav without target", func(c *Config) { c.Navigation = []NavControl{{ID: "x"}} }, true},
		{"duplicate nav id", func(c *Config) {
			c.Navigation = []NavControl{{ID: "x", Target: "a"}, {ID: "x", Target: "b"}}
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Officers = DefaultOfficerLayout()
			cfg.Navigation = DefaultNavigation()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultOfficerLayoutThresholds(t *testing.T) {
	want := []int{0, 3, 11, 14, 18, 22, 26}
	got := DefaultOfficerLayout()
	if len(got) != len(want) {
		t.Fatalf("got %d breakpoints, want %d", len(got), len(want))
	}
	for i, b := range got {
		if b.AfterCount != want[i] {
			t.Errorf("breakpoint %d at %d, want %d", i, b.AfterCount, want[i])
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.psd", []string{"**/*.psd"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
