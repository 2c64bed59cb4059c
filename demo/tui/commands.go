package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"dhootha/types"
)

func checkHealth(client *DashboardClient) tea.Cmd {
	return func() tea.Msg {
		return HealthMsg{Err: client.Health()}
	}
}

func fetchNews(client *DashboardClient, req types.FetchRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Fetch(req)
		return FetchDoneMsg{Response: resp, Err: err}
	}
}
