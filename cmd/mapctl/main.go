package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "mapctl",
		Short: "Inspect and publish the narrative map content",
		Long: `mapctl prints the curated collections and popup groups, manages the
saved marker list in the configured store and exports everything as GeoJSON.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	addCollectionsCmd(rootCmd, a)
	addMarkersCmd(rootCmd, a)
	addExportCmd(rootCmd, a)

	return rootCmd
}
