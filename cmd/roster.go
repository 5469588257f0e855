package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/orgsite/internal/content"
	"github.com/ziadkadry99/orgsite/internal/db"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage the officer roster database",
}

var rosterImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy the officers from the data file into the roster database",
	Long: `Reads the officers listed in the data directory's content file and
writes them, in order, to the roster database. Any roster already in the
database is replaced.`,
	RunE: runRosterImport,
}

func init() {
	rosterImportCmd.Flags().String("db", "", "roster database path (default roster_db from config)")
	rosterCmd.AddCommand(rosterImportCmd)
	rootCmd.AddCommand(rosterCmd)
}

func runRosterImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := cfg.RosterDB
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		path = p
	}
	if path == "" {
		return fmt.Errorf("no roster database: set roster_db in %s or pass --db", cfgFile)
	}

	ctx := withLogger(cmd.Context(), cfg)
	c, err := content.Load(ctx, content.Source{DataDir: cfg.DataDir})
	if err != nil {
		return err
	}
	if len(c.Officers) == 0 {
		return fmt.Errorf("no officers found in %s", cfg.DataDir)
	}

	d, err := db.Create(path)
	if err != nil {
		return err
	}
	defer d.Close()
	if err := content.SaveRoster(ctx, d, c.Officers); err != nil {
		return fmt.Errorf("writing roster %s: %w", path, err)
	}
	fmt.Printf("Imported %d officers into %s\n", len(c.Officers), path)
	return nil
}
