package types

import (
	"time"

	"github.com/google/uuid"
)

// State is the terminal state of a retrieval
type State string

const (
	StateSuccess    State = "success"
	StateSuccessRSS State = "success_rss"
	StateEmpty      State = "empty"
	StateError      State = "error"
)

// Result is the final outcome of one retrieval.
type Result struct {
	RequestID         string      `json:"request_id"`
	State             State       `json:"state"`
	Filter            Filter      `json:"filter"`
	Articles          []Article   `json:"articles,omitempty"`
	Entries           []FeedEntry `json:"entries,omitempty"`
	Count             int         `json:"count"`
	Message           string      `json:"message"`
	Error             string      `json:"error,omitempty"`
	FallbackAttempted bool        `json:"fallback_attempted"`
	FallbackFeed      string      `json:"fallback_feed,omitempty"`
	FallbackError     string      `json:"fallback_error,omitempty"`
	StartedAt         time.Time   `json:"started_at"`
	FinishedAt        time.Time   `json:"finished_at"`
}

// Duration reports how long the retrieval took
func (r *Result) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// RetrievalEvent is the summary published for each finished retrieval
type RetrievalEvent struct {
	RequestID    string    `json:"request_id"`
	State        State     `json:"state"`
	Query        string    `json:"query"`
	Source       string    `json:"source,omitempty"`
	Language     string    `json:"language"`
	Date         Date      `json:"date"`
	Count        int       `json:"count"`
	FallbackFeed string    `json:"fallback_feed,omitempty"`
	Error        string    `json:"error,omitempty"`
	DurationMs   int64     `json:"duration_ms"`
	FinishedAt   time.Time `json:"finished_at"`
}

// Event summarises the result for publishing
func (r *Result) Event() RetrievalEvent {
	return RetrievalEvent{
		RequestID:    r.RequestID,
		State:        r.State,
		Query:        r.Filter.Query,
		Source:       r.Filter.Source,
		Language:     r.Filter.Language,
		Date:         r.Filter.Date,
		Count:        r.Count,
		FallbackFeed: r.FallbackFeed,
		Error:        r.Error,
		DurationMs:   r.Duration().Milliseconds(),
		FinishedAt:   r.FinishedAt,
	}
}

// NewRequestID returns a fresh retrieval identifier
func NewRequestID() string {
	return uuid.NewString()
}
