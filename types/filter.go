package types

// Filter is the user selection driving one retrieval.
// Language is the display/translation language; Source is empty for "All Sources".
type Filter struct {
	Query    string `json:"query"`
	Language string `json:"language"`
	Source   string `json:"source,omitempty"`
	Date     Date   `json:"date"`
}

// FetchRequest is the loosely typed input accepted from HTTP and Kafka.
// Language and Source may be codes or display names; empty fields take defaults.
type FetchRequest struct {
	RequestID string `json:"request_id,omitempty"`
	Query     string `json:"query"`
	Language  string `json:"language"`
	Source    string `json:"source"`
	Date      string `json:"date"`
}
