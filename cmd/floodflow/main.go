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
	rootCmd := &cobra.Command{
		Use:          "floodflow",
		Short:        "Estimate per-street traffic in the district under flooding scenarios",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().Int(logLevelFlag, 0, "log level: -1 debug, 0 info, 1 warn, 2 error")

	rootCmd.AddCommand(computeCmd())
	rootCmd.AddCommand(topologyCmd())
	rootCmd.AddCommand(dimacsCmd())

	return rootCmd
}
