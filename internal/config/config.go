package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides. A double underscore
// separates nested keys: ORGSITE_SERVER__PORT sets server.port.
const EnvPrefix = "ORGSITE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (ORGSITE_*). A missing file is not an
// error; the defaults are used instead.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// the decoder reuses a non-nil slice and overwrites it element by
	// element, so the default lists must not be in place while it runs
	cfg.Include, cfg.Exclude = nil, nil
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// lists are filled after unmarshalling so a configured list replaces
	// the default one instead of being merged into it element by element
	if len(cfg.Officers) == 0 {
		cfg.Officers = DefaultOfficerLayout()
	}
	if len(cfg.Navigation) == 0 {
		cfg.Navigation = DefaultNavigation()
	}
	if !k.Exists("include") {
		cfg.Include = []string{"**"}
	}
	if !k.Exists("exclude") {
		cfg.Exclude = slices.Clone(DefaultExcludes)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.HomeLimit < 0 {
		return fmt.Errorf("home_limit must be non-negative")
	}
	if c.Carousel.Interval <= 0 {
		return fmt.Errorf("carousel.interval must be positive")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}

	for i, b := range c.Officers {
		if b.Columns <= 0 {
			return fmt.Errorf("officers[%d]: columns must be positive", i)
		}
	}

	seen := make(map[string]bool)
	for i, n := range c.Navigation {
		if n.ID == "" || n.Target == "" {
			return fmt.Errorf("navigation[%d]: id and target are required", i)
		}
		if seen[n.ID] {
			return fmt.Errorf("navigation[%d]: duplicate id %q", i, n.ID)
		}
		seen[n.ID] = true
	}

	return nil
}
