package config

import (
	"slices"
	"time"
)

// DefaultExcludes are glob patterns never copied from the static directory.
var DefaultExcludes = []string{
	"**/.DS_Store",
	"**/Thumbs.db",
	"**/*.psd",
	"**/.git/**",
}

// DefaultOfficerLayout is the officer grid policy used when orgsite.yml
// does not list one. It is sized for a roster of about thirty.
func DefaultOfficerLayout() []GridBreakpoint {
	return []GridBreakpoint{
		{AfterCount: 0, Columns: 3},
		{AfterCount: 3, Columns: 4},
		{AfterCount: 11, Header: "Finance", Columns: 3},
		{AfterCount: 14, Header: "Events & Logistics", Columns: 4},
		{AfterCount: 18, Header: "Creatives", Columns: 4},
		{AfterCount: 22, Header: "Web Development", Columns: 4},
		{AfterCount: 26, Columns: 4},
	}
}

// DefaultNavigation is the navigation bar used when orgsite.yml does not
// list one. Labels are derived from the targets.
func DefaultNavigation() []NavControl {
	return []NavControl{
		{ID: "home-btn", Target: "home"},
		{ID: "news-btn", Target: "news"},
		{ID: "gallery-btn", Target: "gallery"},
		{ID: "projects-btn", Target: "projects-done", Label: "Projects"},
		{ID: "officers-btn", Target: "officers"},
		{ID: "about-btn", Target: "about"},
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title: "Our Organization",
		},
		DataDir:   "data",
		OutputDir: "public",
		StaticDir: "static",
		About:     "data/about.md",
		HomeLimit: 3,
		Include:   []string{"**"},
		Exclude:   slices.Clone(DefaultExcludes),
		Carousel: CarouselConfig{
			Interval: 5 * time.Second,
		},
		Server: ServerConfig{
			Port:       1313,
			LiveReload: true,
		},
		LogLevel: "info",
	}
}
