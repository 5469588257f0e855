package walker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// IgnoreFile lists patterns, one per line, that are never published from
// the static directory.
const IgnoreFile = ".siteignore"

// Asset is a single file discovered under the static directory.
type Asset struct {
	Path        string // Absolute path on disk.
	RelPath     string // Slash-separated path relative to the root.
	Size        int64
	MediaType   string
	ContentHash string // SHA-256 hex digest of the content.
}

// Config controls Walk.
type Config struct {
	RootDir     string
	Include     []string // Only matching files are returned.
	Exclude     []string // Matching files are skipped.
	MaxFileSize int64    // 0 means no limit.
}

// Walk returns every regular file under cfg.RootDir that passes the
// include/exclude globs and the root's ignore file. Results are in
// lexical order. A missing root yields no assets.
func Walk(cfg Config) ([]Asset, error) {
	root, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	ignored := loadIgnore(filepath.Join(root, IgnoreFile))

	var assets []Asset
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != root && shouldExcludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || d.Name() == IgnoreFile {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if matchesIgnore(relPath, ignored) {
			return nil
		}
		if !MatchesInclude(relPath, cfg.Include) || MatchesExclude(relPath, cfg.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if cfg.MaxFileSize > 0 && info.Size() > cfg.MaxFileSize {
			return nil
		}

		hash, err := HashFile(path)
		if err != nil {
			return err
		}
		assets = append(assets, Asset{
			Path:        path,
			RelPath:     relPath,
			Size:        info.Size(),
			MediaType:   DetectMediaType(d.Name()),
			ContentHash: hash,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}
	return assets, nil
}

// HashFile computes the SHA-256 digest of the given file.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// loadIgnore reads an ignore file and returns its non-empty,
// non-comment lines.
func loadIgnore(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// matchesIgnore applies gitignore-style patterns. A pattern without a slash
// matches any path component; a trailing slash only matches directories.
func matchesIgnore(relPath string, patterns []string) bool {
	parts := strings.Split(relPath, "/")
	for _, pattern := range patterns {
		dirOnly := strings.HasSuffix(pattern, "/")
		pattern = strings.TrimSuffix(pattern, "/")

		if strings.Contains(pattern, "/") {
			pattern = strings.TrimPrefix(pattern, "/")
			if matchesAny(relPath, []string{pattern, pattern + "/**"}) {
				return true
			}
			continue
		}

		components := parts
		if dirOnly {
			components = parts[:len(parts)-1]
		}
		for _, part := range components {
			if ok, _ := filepath.Match(pattern, part); ok {
				return true
			}
		}
	}
	return false
}
