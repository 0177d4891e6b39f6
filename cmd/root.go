package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "designsync",
	Short: "Keep the Quantum HTML mockups in sync",
	Long: `Designsync maintains the shared chrome of the Quantum dashboard
mockups. It rewrites the navigation sidebar across every page, marking
the current page active, and makes sure the icon font stylesheet is
linked. A preview server and sync history round out the workflow.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".designsync.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
