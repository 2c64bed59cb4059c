package tui

// UI Text Constants
const (
	TextFetchInstruction = "Press Enter to fetch news"
	TextFooter           = "Tab/Shift+Tab move · ←/→ change selection · type to edit · Enter fetch · ↑/↓ scroll · Esc quit"
)
