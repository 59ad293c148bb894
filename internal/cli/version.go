package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "plancheck version %s\n", Version)
		fmt.Fprintf(cmd.OutOrStdout(), "Built from commit: %s\n", Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "Build date: %s\n", BuildDate)
		fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
