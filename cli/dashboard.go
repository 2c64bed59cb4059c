package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"dhootha/config"
	"dhootha/demo/tui"
)

func newDashboardCmd(cfg *config.Config) *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the terminal dashboard against a running API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiURL == "" {
				apiURL = cfg.APIURL
			}
			program := tea.NewProgram(tui.NewModel(apiURL), tea.WithContext(cmd.Context()))
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("error running dashboard: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "url", "", "API base URL (default $API_URL)")
	return cmd
}
