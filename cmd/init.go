package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/orgsite/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize orgsite configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and writes an orgsite.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard()
		if err != nil {
			return err
		}
		fmt.Printf("Put your content in %s/content.yaml and run `orgsite build`.\n", cfg.DataDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
