package site

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ziadkadry99/orgsite/internal/page"
)

// SearchEntry is one searchable card of the generated page.
type SearchEntry struct {
	Section     string `json:"section"`
	Page        string `json:"page"`
	CardID      string `json:"card_id,omitempty"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
}

// maxDescription caps the bytes of description kept per search entry.
const maxDescription = 500

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// BuildSearchIndex turns the bound page's card entries into search entries.
func BuildSearchIndex(entries []page.Entry) []SearchEntry {
	out := make([]SearchEntry, 0, len(entries))
	for _, e := range entries {
		if e.Title == "" {
			continue
		}
		desc := truncate(e.Description, maxDescription)
		out = append(out, SearchEntry{
			Section:     e.Section,
			Page:        pageOf(e.Section),
			CardID:      e.CardID,
			Title:       e.Title,
			Subtitle:    e.Subtitle,
			Description: desc,
		})
	}
	return out
}

// pageOf maps a section to the top-level page that contains it.
func pageOf(section string) string {
	if strings.HasPrefix(section, "home-") {
		return "home"
	}
	return section
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

// ReadSearchIndex loads an index written by WriteSearchIndex.
func ReadSearchIndex(path string) ([]SearchEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []SearchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing search index %s: %w", path, err)
	}
	return entries, nil
}

// Search returns up to limit entries matching query case-insensitively.
// Title matches rank above subtitle or description matches; ties keep index
// order. Home-page duplicates of a card already matched elsewhere are
// skipped.
func Search(entries []SearchEntry, query string, limit int) []SearchEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	type hit struct {
		entry SearchEntry
		score int
	}
	var hits []hit
	seen := make(map[string]bool)
	for _, e := range entries {
		score := 0
		switch {
		case strings.Contains(strings.ToLower(e.Title), q):
			score = 2
		case strings.Contains(strings.ToLower(e.Subtitle), q),
			strings.Contains(strings.ToLower(e.Description), q):
			score = 1
		}
		if score == 0 {
			continue
		}
		key := e.Title + "\x00" + e.Subtitle
		if seen[key] {
			continue
		}
		seen[key] = true
		hits = append(hits, hit{entry: e, score: score})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]SearchEntry, len(hits))
	for i, h := range hits {
		out[i] = h.entry
	}
	return out
}
