package tui

import "dhootha/present"

// HealthMsg reports whether the API answered its health check
type HealthMsg struct {
	Err error
}

// FetchDoneMsg carries the response of one retrieval
type FetchDoneMsg struct {
	Response *present.FetchResponse
	Err      error
}
