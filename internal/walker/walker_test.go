package walker

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func staticTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "css", "extra.css"), "a{}")
	writeFile(t, filepath.Join(dir, "img", "logo.png"), "png")
	writeFile(t, filepath.Join(dir, "img", "team", "board.jpg"), "jpg")
	writeFile(t, filepath.Join(dir, "docs", "charter.pdf"), "pdf")
	writeFile(t, filepath.Join(dir, ".git", "HEAD"), "ref")
	writeFile(t, filepath.Join(dir, "node_modules", "x", "index.js"), "x")
	return dir
}

func relPaths(assets []Asset) []string {
	out := make([]string, len(assets))
	for i, a := range assets {
		out[i] = a.RelPath
	}
	return out
}

func TestWalk_BasicTraversal(t *testing.T) {
	dir := staticTree(t)

	assets, err := Walk(Config{RootDir: dir, Include: []string{"**"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	want := []string{"css/extra.css", "docs/charter.pdf", "img/logo.png", "img/team/board.jpg"}
	got := relPaths(assets)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("asset %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalk_AssetFields(t *testing.T) {
	dir := staticTree(t)

	assets, err := Walk(Config{RootDir: dir, Include: []string{"**"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	for _, a := range assets {
		if !filepath.IsAbs(a.Path) {
			t.Errorf("%s: path %q is not absolute", a.RelPath, a.Path)
		}
		if a.Size <= 0 {
			t.Errorf("%s: size %d", a.RelPath, a.Size)
		}
		if len(a.ContentHash) != 64 {
			t.Errorf("%s: hash length %d, want 64", a.RelPath, len(a.ContentHash))
		}
		if a.MediaType == "" {
			t.Errorf("%s: empty media type", a.RelPath)
		}
	}
}

func TestWalk_Filters(t *testing.T) {
	dir := staticTree(t)

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    int
	}{
		{"everything", []string{"**"}, nil, 4},
		{"nothing included", nil, nil, 0},
		{"images", []string{"img/**"}, nil, 2},
		{"top level of img only", []string{"img/*"}, nil, 1},
		{"exclude pdf", []string{"**"}, []string{"**/*.pdf"}, 3},
		{"exclude subtree", []string{"**"}, []string{"img/team/**"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assets, err := Walk(Config{RootDir: dir, Include: tt.include, Exclude: tt.exclude})
			if err != nil {
				t.Fatal(err)
			}
			if len(assets) != tt.want {
				t.Errorf("got %v, want %d assets", relPaths(assets), tt.want)
			}
		})
	}
}

func TestWalk_MaxFileSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "small.txt"), "hi")
	writeFile(t, filepath.Join(dir, "big.txt"), string(make([]byte, 2048)))

	assets, err := Walk(Config{RootDir: dir, Include: []string{"**"}, MaxFileSize: 1024})
	if err != nil {
		t.Fatal(err)
	}
	if len(assets) != 1 || assets[0].RelPath != "small.txt" {
		t.Errorf("got %v, want [small.txt]", relPaths(assets))
	}
}

func TestWalk_IgnoreFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, IgnoreFile), "# drafts\n*.log\ndrafts/\n/img/raw\n")
	writeFile(t, filepath.Join(dir, "index.css"), "a{}")
	writeFile(t, filepath.Join(dir, "debug.log"), "log")
	writeFile(t, filepath.Join(dir, "drafts", "post.html"), "<p>")
	writeFile(t, filepath.Join(dir, "img", "raw", "photo.png"), "png")
	writeFile(t, filepath.Join(dir, "img", "logo.png"), "png")

	assets, err := Walk(Config{RootDir: dir, Include: []string{"**"}})
	if err != nil {
		t.Fatal(err)
	}
	got := relPaths(assets)
	want := []string{"img/logo.png", "index.css"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("asset %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	assets, err := Walk(Config{RootDir: filepath.Join(t.TempDir(), "nope"), Include: []string{"**"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if len(assets) != 0 {
		t.Errorf("got %d assets from a missing root", len(assets))
	}
}

func TestWalk_ContentHashConsistency(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.css"), "same")
	writeFile(t, filepath.Join(dir, "b.css"), "same")
	writeFile(t, filepath.Join(dir, "c.css"), "different")

	assets, err := Walk(Config{RootDir: dir, Include: []string{"**"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(assets) != 3 {
		t.Fatalf("got %d assets", len(assets))
	}
	if assets[0].ContentHash != assets[1].ContentHash {
		t.Error("identical files should hash the same")
	}
	if assets[0].ContentHash == assets[2].ContentHash {
		t.Error("different files should hash differently")
	}
}

func TestDetectMediaType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"logo.png", "image/png"},
		{"PHOTO.JPG", "image/jpeg"},
		{"icon.svg", "image/svg+xml"},
		{"extra.css", "text/css"},
		{"font.woff2", "font/woff2"},
		{"charter.pdf", "application/pdf"},
		{"blob.unknownext", "application/octet-stream"},
		{"Makefile", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := DetectMediaType(tt.name); got != tt.want {
			t.Errorf("DetectMediaType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestMatchesIncludeExclude(t *testing.T) {
	if MatchesInclude("img/logo.png", nil) {
		t.Error("empty include list should match nothing")
	}
	if !MatchesInclude("img/logo.png", []string{"img/**"}) {
		t.Error("img/** should include img/logo.png")
	}
	if MatchesExclude("img/logo.png", nil) {
		t.Error("empty exclude list should exclude nothing")
	}
	if !MatchesExclude("a/b/.DS_Store", []string{"**/.DS_Store"}) {
		t.Error("**/.DS_Store should exclude nested .DS_Store")
	}
}
