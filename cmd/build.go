package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/orgsite/internal/progress"
	"github.com/ziadkadry99/orgsite/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static website",
	Long:  `Loads the content files, binds them into the page shell and writes index.html, assets and the search index to the output directory.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().String("data", "", "override data directory")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	if data, _ := cmd.Flags().GetString("data"); data != "" {
		cfg.DataDir = data
	}

	ctx := withLogger(cmd.Context(), cfg)
	res, err := site.NewGenerator(cfg, progress.NewReporter(os.Stderr)).Generate(ctx)
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Site generated: %s (%d cards, %d officers, %d slides, %d static files)\n",
		cfg.OutputDir, res.Cards, res.Officers, res.Slides, res.StaticFiles)
	return nil
}
