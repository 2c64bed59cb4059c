package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"dhootha/config"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case HealthMsg:
		m.Connected = msg.Err == nil
		return m, nil
	case FetchDoneMsg:
		return m.handleFetchDone(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab:
		m.Focus = (m.Focus + 1) % fieldCount
		return m, nil
	case tea.KeyShiftTab:
		m.Focus = (m.Focus + fieldCount - 1) % fieldCount
		return m, nil
	case tea.KeyLeft:
		m = m.cycle(-1)
		return m, nil
	case tea.KeyRight:
		m = m.cycle(1)
		return m, nil
	case tea.KeyUp:
		if m.Offset > 0 {
			m.Offset--
		}
		return m, nil
	case tea.KeyDown:
		if m.Offset < len(m.Display.Cards)-1 {
			m.Offset++
		}
		return m, nil
	case tea.KeyBackspace:
		m = m.editText(func(s string) string {
			r := []rune(s)
			if len(r) == 0 {
				return s
			}
			return string(r[:len(r)-1])
		})
		return m, nil
	case tea.KeySpace:
		m = m.editText(func(s string) string { return s + " " })
		return m, nil
	case tea.KeyRunes:
		m = m.editText(func(s string) string { return s + string(msg.Runes) })
		return m, nil
	case tea.KeyEnter:
		if m.State == StateFetching {
			return m, nil
		}
		m.State = StateFetching
		m.Err = nil
		return m, fetchNews(m.Client, m.Request())
	}
	return m, nil
}

// cycle moves the focused selector; it wraps around at both ends
func (m Model) cycle(delta int) Model {
	switch m.Focus {
	case FieldLanguage:
		n := len(config.Languages)
		m.Language = (m.Language + delta + n) % n
	case FieldSource:
		n := len(config.NewsSources)
		m.Source = (m.Source + delta + n) % n
	}
	return m
}

func (m Model) editText(edit func(string) string) Model {
	switch m.Focus {
	case FieldQuery:
		m.Query = edit(m.Query)
	case FieldDate:
		m.Date = edit(m.Date)
	}
	return m
}

// handleFetchDone stores the response of a retrieval
func (m Model) handleFetchDone(msg FetchDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err == nil && msg.Response == nil {
		msg.Err = errors.New("empty response")
	}
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Connected = true
	m.State = StateDone
	m.Result = msg.Response.Result
	m.Display = msg.Response.View
	m.Offset = 0
	return m, nil
}
