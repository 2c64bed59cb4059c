// Package cli contains the dhootha commands.
package cli

import (
	"github.com/spf13/cobra"

	"dhootha/config"
)

// NewRootCmd builds the command tree. Configuration is read from .env and
// the environment before any subcommand runs.
func NewRootCmd() *cobra.Command {
	var cfg config.Config

	root := &cobra.Command{
		Use:   "dhootha",
		Short: "Daily news dashboard with date-filtered search and RSS fallback",
		Long: `dhootha searches a news API for articles published on one day and falls
back to a BBC RSS feed when the search finds nothing for that day.

Example usage:
  dhootha serve                              # Run the HTTP API
  dhootha fetch --query AI --date 2024-03-01 # One retrieval, printed as cards
  dhootha dashboard                          # Terminal dashboard against the API
  dhootha worker                             # Serve fetch requests from Kafka`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg = config.Load()
		},
	}

	root.AddCommand(
		newServeCmd(&cfg),
		newFetchCmd(&cfg),
		newDashboardCmd(&cfg),
		newWorkerCmd(&cfg),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
