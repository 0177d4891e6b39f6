package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quantumcare/designsync/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize designsync configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure designsync for your mockup set and generates a .designsync.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
