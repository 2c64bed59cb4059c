package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"dhootha/config"
	"dhootha/present"
	"dhootha/types"
)

// State represents the dashboard state machine
type State string

const (
	StateIdle     State = "idle"
	StateFetching State = "fetching"
	StateDone     State = "done"
	StateError    State = "error"
)

// Field is one of the dashboard controls
type Field int

const (
	FieldLanguage Field = iota
	FieldSource
	FieldQuery
	FieldDate
	fieldCount
)

// Model is the dashboard state. The API does all the work; the model only
// holds the selected filter and the last response.
type Model struct {
	Client *DashboardClient

	Focus     Field
	Language  int
	Source    int
	Query     string
	Date      string
	Connected bool

	State   State
	Result  *types.Result
	Display present.View
	Err     error
	Offset  int
}

// NewModel creates a dashboard pointed at the API base URL with the default
// filter: English, all sources, "Technology", today.
func NewModel(apiURL string) Model {
	return Model{
		Client: NewDashboardClient(apiURL),
		Query:  config.DefaultQuery,
		Date:   types.Today().String(),
		State:  StateIdle,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return checkHealth(m.Client)
}

// Request returns the fetch request for the current controls
func (m Model) Request() types.FetchRequest {
	return types.FetchRequest{
		Query:    m.Query,
		Language: config.Languages[m.Language].Code,
		Source:   config.NewsSources[m.Source].Code,
		Date:     m.Date,
	}
}

// statusText renders the outcome line for the current state
func (m Model) statusText() string {
	switch m.State {
	case StateIdle:
		if !m.Connected {
			return ErrorStyle.Render("❌ Not connected to " + m.Client.BaseURL())
		}
		return HighlightStyle.Render("👋 Ready") + "  " + InfoStyle.Render(TextFetchInstruction)
	case StateFetching:
		return StatusStyle.Render(fmt.Sprintf("⏳ Fetching %q for %s...", m.Query, m.Date))
	case StateError:
		return ErrorStyle.Render(fmt.Sprintf("❌ %v", m.Err))
	}

	if m.Result == nil {
		return ""
	}
	switch m.Result.State {
	case types.StateSuccess, types.StateSuccessRSS:
		return StatusStyle.Render(m.Result.Message)
	case types.StateEmpty:
		return WarningStyle.Render(m.Result.Message)
	default:
		return ErrorStyle.Render(m.Result.Message)
	}
}
