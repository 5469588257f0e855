package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/ziadkadry99/orgsite/internal/db"
	"github.com/ziadkadry99/orgsite/internal/logging"
)

// Source tells Load where the collections live.
type Source struct {
	// DataDir holds content.yaml (or content.yml / content.json) and an
	// optional news/ directory of Markdown posts.
	DataDir string

	// RosterDB, when set, is a SQLite roster whose officers replace the
	// officers listed in the data file.
	RosterDB string

	// HomeLimit is how many entries the home sections take from the full
	// lists when no explicit home list is given. Zero leaves them empty.
	HomeLimit int
}

// dataFiles are tried in order; the first one present wins.
var dataFiles = []string{"content.yaml", "content.yml", "content.json"}

// dateLayouts are the formats accepted for news post dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02", "January 2, 2006", "Jan 2, 2006"}

// Load reads every collection described by src.
func Load(ctx context.Context, src Source) (Collections, error) {
	var c Collections

	path, err := findDataFile(src.DataDir)
	if err != nil {
		return c, err
	}
	if path != "" {
		if c, err = readDataFile(path); err != nil {
			return c, err
		}
	}

	posts, err := loadPosts(filepath.Join(src.DataDir, "news"))
	if err != nil {
		return c, err
	}
	c.News = append(c.News, posts...)

	if src.RosterDB != "" {
		roster, err := db.OpenReadOnly(src.RosterDB)
		if err != nil {
			return c, fmt.Errorf("opening roster: %w", err)
		}
		defer roster.Close()
		officers, err := LoadRoster(ctx, roster)
		if err != nil {
			return c, fmt.Errorf("reading roster %s: %w", src.RosterDB, err)
		}
		c.Officers = officers
	}

	if src.HomeLimit > 0 {
		if c.HomeNews == nil {
			c.HomeNews = head(c.News, src.HomeLimit)
		}
		if c.HomeGallery == nil {
			c.HomeGallery = head(c.Gallery, src.HomeLimit)
		}
		if c.HomeProjects == nil {
			c.HomeProjects = head(c.ProjectsDone, src.HomeLimit)
		}
	}

	logging.FromContext(ctx).Debug("loaded content",
		"data_file", path,
		"news", len(c.News),
		"gallery", len(c.Gallery),
		"projects", len(c.ProjectsDone),
		"officers", len(c.Officers),
		"featured", len(c.Featured),
	)
	return c, nil
}

func findDataFile(dir string) (string, error) {
	for _, name := range dataFiles {
		path := filepath.Join(dir, name)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("accessing %s: %w", path, err)
		}
	}
	return "", nil
}

func readDataFile(path string) (Collections, error) {
	var c Collections
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading %s: %w", path, err)
	}
	if strings.HasSuffix(path, ".json") {
		err = json.Unmarshal(data, &c)
	} else {
		err = yaml.Unmarshal(data, &c)
	}
	if err != nil {
		return c, fmt.Errorf("decoding %s: %w", path, err)
	}
	return c, nil
}

// postMatter is the front matter of a news post.
type postMatter struct {
	Title   string `yaml:"title" json:"title" toml:"title"`
	Date    string `yaml:"date" json:"date" toml:"date"`
	ImgPath string `yaml:"img_path" json:"img_path" toml:"img_path"`
	URL     string `yaml:"url" json:"url" toml:"url"`
	URLText string `yaml:"urlText" json:"urlText" toml:"urlText"`
}

// loadPosts reads dir/*.md, newest first. A missing directory is not an
// error.
func loadPosts(dir string) ([]NewsItem, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("listing news posts: %w", err)
	}

	type dated struct {
		item NewsItem
		when time.Time
	}
	var posts []dated
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var m postMatter
		body, err := frontmatter.Parse(bytes.NewReader(data), &m)
		if err != nil {
			return nil, fmt.Errorf("parsing front matter in %s: %w", path, err)
		}
		if m.Title == "" {
			m.Title = titleFromFilename(path)
		}
		posts = append(posts, dated{
			item: NewsItem{
				Title:   m.Title,
				Date:    m.Date,
				Content: strings.TrimSpace(string(body)),
				ImgPath: m.ImgPath,
				URL:     m.URL,
				URLText: m.URLText,
			},
			when: parseDate(m.Date),
		})
	}

	// undated posts go last, in file order
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].when.IsZero() {
			return false
		}
		if posts[j].when.IsZero() {
			return true
		}
		return posts[i].when.After(posts[j].when)
	})

	items := make([]NewsItem, len(posts))
	for i, p := range posts {
		items[i] = p.item
	}
	return items, nil
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// titleFromFilename turns "spring-social_2024.md" into "spring social 2024".
func titleFromFilename(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.NewReplacer("-", " ", "_", " ").Replace(name)
}

func head[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	return slices.Clone(items[:n])
}
