package config

import "time"

// Config is the top-level orgsite configuration, corresponding to orgsite.yml.
type Config struct {
	Site       SiteConfig       `yaml:"site" koanf:"site"`
	DataDir    string           `yaml:"data_dir" koanf:"data_dir"`
	RosterDB   string           `yaml:"roster_db,omitempty" koanf:"roster_db"`
	OutputDir  string           `yaml:"output_dir" koanf:"output_dir"`
	StaticDir  string           `yaml:"static_dir" koanf:"static_dir"`
	Layout     string           `yaml:"layout,omitempty" koanf:"layout"`
	About      string           `yaml:"about" koanf:"about"`
	HomeLimit  int              `yaml:"home_limit" koanf:"home_limit"`
	Include    []string         `yaml:"include" koanf:"include"`
	Exclude    []string         `yaml:"exclude" koanf:"exclude"`
	Carousel   CarouselConfig   `yaml:"carousel" koanf:"carousel"`
	Officers   []GridBreakpoint `yaml:"officers,omitempty" koanf:"officers"`
	Navigation []NavControl     `yaml:"navigation,omitempty" koanf:"navigation"`
	Server     ServerConfig     `yaml:"server" koanf:"server"`
	LogLevel   string           `yaml:"log_level" koanf:"log_level"`
}

// SiteConfig holds the metadata printed into the page shell.
type SiteConfig struct {
	Title       string `yaml:"title" koanf:"title"`
	Description string `yaml:"description" koanf:"description"`
	BaseURL     string `yaml:"base_url" koanf:"base_url"`
}

// CarouselConfig controls the featured slideshow.
type CarouselConfig struct {
	Interval time.Duration `yaml:"interval" koanf:"interval"`
}

// GridBreakpoint starts a new officer grid once AfterCount officers have
// been placed. A non-empty Header is inserted above the new grid.
type GridBreakpoint struct {
	AfterCount int    `yaml:"after_count" koanf:"after_count"`
	Header     string `yaml:"header,omitempty" koanf:"header"`
	Columns    int    `yaml:"columns" koanf:"columns"`
}

// NavControl maps a navigation button to the page section it reveals.
type NavControl struct {
	ID     string `yaml:"id" koanf:"id"`
	Target string `yaml:"target" koanf:"target"`
	Label  string `yaml:"label,omitempty" koanf:"label"`
}

// ServerConfig holds dev-server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	LiveReload      bool `yaml:"live_reload" koanf:"live_reload"`
}
