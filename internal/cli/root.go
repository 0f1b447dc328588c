// Package cli implements the claimd command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X ...cli.version=..."
var version = "dev"

var cfgFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "claimd",
	Short: "claimd - single-slot medical insurance claim service",
	Long: `claimd holds at most one medical insurance claim and moves it through
submission and approval.

Commands are accepted over HTTP and persisted to the configured store
(memory, dynamodb, sqlite or redis).`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "claimd %s\n", version)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}
