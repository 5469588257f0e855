package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ziadkadry99/orgsite/internal/content"
	"github.com/ziadkadry99/orgsite/internal/db"
)

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("ORGSITE_TEST_PORT=9090\nORGSITE_TEST_KEEP=file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ORGSITE_TEST_KEEP", "shell")
	t.Setenv("ORGSITE_TEST_PORT", "")
	os.Unsetenv("ORGSITE_TEST_PORT")

	if err := loadEnv(path); err != nil {
		t.Fatalf("loadEnv: %v", err)
	}
	if got := os.Getenv("ORGSITE_TEST_PORT"); got != "9090" {
		t.Errorf("ORGSITE_TEST_PORT = %q, want 9090", got)
	}
	if got := os.Getenv("ORGSITE_TEST_KEEP"); got != "shell" {
		t.Errorf("ORGSITE_TEST_KEEP = %q, existing value should win", got)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	if err := loadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
	if err := loadEnv(""); err != nil {
		t.Errorf("empty path: %v", err)
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"build", "serve", "init", "version", "roster"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered: %v", name, err)
		}
	}
}

func TestRosterImport(t *testing.T) {
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "officers:\n  - name: Ada\n    position: President\n  - name: Bob\n    position: Treasurer\n"
	if err := os.WriteFile(filepath.Join(dataDir, "content.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "orgsite.yml")
	if err := os.WriteFile(cfgPath, []byte("data_dir: "+dataDir+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	oldCfg := cfgFile
	cfgFile = cfgPath
	t.Cleanup(func() { cfgFile = oldCfg })

	dbPath := filepath.Join(dir, "roster.db")
	if err := rosterImportCmd.Flags().Set("db", dbPath); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { rosterImportCmd.Flags().Set("db", "") })
	rosterImportCmd.SetContext(context.Background())

	if err := runRosterImport(rosterImportCmd, nil); err != nil {
		t.Fatalf("roster import: %v", err)
	}

	d, err := db.OpenReadOnly(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()
	got, err := content.LoadRoster(context.Background(), d)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "Ada" || got[1].Name != "Bob" {
		t.Errorf("roster = %+v, want Ada then Bob", got)
	}
}
