package types

import (
	"encoding/json"
	"time"
)

// ArticleSource identifies the publisher of an API article
type ArticleSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Timestamp is a raw publication time as sent by the news API. Non-string
// JSON values decode to "" so one bad record cannot fail the whole response.
type Timestamp string

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*t = ""
		return nil
	}
	*t = Timestamp(s)
	return nil
}

// Article is a single item of the news search API response.
// PublishedAt is kept raw; parsing belongs to the date filter.
type Article struct {
	Source      ArticleSource `json:"source"`
	Author      string        `json:"author,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage,omitempty"`
	PublishedAt Timestamp     `json:"publishedAt"`
	Content     string        `json:"content,omitempty"`
}

// FeedEntry represents a single RSS/Atom item from a fallback feed
type FeedEntry struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Link         string     `json:"link"`
	Published    *time.Time `json:"published,omitempty"`
	PublishedRaw string     `json:"published_raw,omitempty"`
	Summary      string     `json:"summary"`
	Content      string     `json:"content,omitempty"`
	Author       string     `json:"author,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	Categories   []string   `json:"categories,omitempty"`
}
