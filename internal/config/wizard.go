package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
)

// DefaultPath is where RunWizard writes the configuration.
const DefaultPath = "orgsite.yml"

// dataDirCandidates are directories checked for an existing content file.
var dataDirCandidates = []string{"data", "content", "site-data"}

// detectDataDir returns the first candidate directory that already holds a
// content file, or "data".
func detectDataDir() string {
	for _, dir := range dataDirCandidates {
		for _, name := range []string{"content.yaml", "content.yml", "content.json"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir
			}
		}
	}
	return "data"
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to DefaultPath.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to orgsite! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Site.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.Site.Title = title

	dataPrompt := promptui.Prompt{
		Label:   "Directory holding content.yaml",
		Default: detectDataDir(),
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	cfg.DataDir = dataDir
	cfg.About = filepath.ToSlash(filepath.Join(dataDir, "about.md"))

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	rosterPrompt := promptui.Select{
		Label: "Where is the officer roster kept?",
		Items: []string{
			"content file: officers listed in content.yaml",
			"database: a SQLite roster file",
		},
	}
	rosterIdx, _, err := rosterPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("roster source: %w", err)
	}
	if rosterIdx == 1 {
		dbPrompt := promptui.Prompt{
			Label:   "Path to the roster database",
			Default: filepath.ToSlash(filepath.Join(dataDir, "roster.db")),
		}
		rosterDB, err := dbPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("roster database: %w", err)
		}
		cfg.RosterDB = rosterDB
	}

	excludePrompt := promptui.Prompt{
		Label:   "Extra static exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if excludeStr != "" {
		cfg.Exclude = append(cfg.Exclude, splitAndTrim(excludeStr)...)
	}

	cfg.Officers = DefaultOfficerLayout()
	cfg.Navigation = DefaultNavigation()

	if err := cfg.Save(DefaultPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultPath)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
