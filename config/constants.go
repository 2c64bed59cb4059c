package config

import "time"

// Option is one entry of a fixed selector (display name and wire code)
type Option struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Selector options, in display order
var (
	// Languages are the display/translation languages
	Languages = []Option{
		{Name: "English", Code: "en"},
		{Name: "Hindi", Code: "hi"},
		{Name: "French", Code: "fr"},
		{Name: "Spanish", Code: "es"},
		{Name: "German", Code: "de"},
	}

	// NewsSources are the source filters; "All Sources" has an empty code
	NewsSources = []Option{
		{Name: "All Sources", Code: ""},
		{Name: "BBC News", Code: "bbc-news"},
		{Name: "CNN", Code: "cnn"},
		{Name: "Reuters", Code: "reuters"},
		{Name: "The Verge", Code: "the-verge"},
		{Name: "TechCrunch", Code: "techcrunch"},
		{Name: "Google News (IN)", Code: "google-news-in"},
		{Name: "The Times of India", Code: "the-times-of-india"},
	}
)

// Filter defaults
const (
	DefaultQuery    = "Technology"
	DefaultLanguage = "en"
)

// News search API constants
const (
	// DefaultNewsAPIURL is the base URL of the news search API
	DefaultNewsAPIURL = "https://newsapi.org/v2"

	// SearchLanguage is the language articles are searched in, independent of display language
	SearchLanguage = "en"

	// SortByPublishedAt orders results most recent first
	SortByPublishedAt = "publishedAt"

	// PageSize is the number of articles requested per search
	PageSize = 100

	// DefaultHTTPTimeout bounds each outbound call
	DefaultHTTPTimeout = 30 * time.Second
)

// RSS fallback constants
const (
	// DefaultTopicFeedURL is used for topics missing from TopicFeeds
	DefaultTopicFeedURL = "https://feeds.bbci.co.uk/news/rss.xml"

	// RSSCapableSource is the one specific source with a fallback feed
	RSSCapableSource = "bbc-news"
)

// TopicFeeds maps a normalized topic keyword to its fallback feed URL
var TopicFeeds = map[string]string{
	"technology": "https://feeds.bbci.co.uk/news/technology/rss.xml",
	"tech":       "https://feeds.bbci.co.uk/news/technology/rss.xml",
	"sports":     "https://feeds.bbci.co.uk/sport/rss.xml",
	"business":   "https://feeds.bbci.co.uk/news/business/rss.xml",
	"world":      "https://feeds.bbci.co.uk/news/world/rss.xml",
}

// Extraction runs one page at a time so a fallback never fans out requests
const (
	ExtractWorkerCount = 1
	ExtractTimeout     = 30 * time.Second
)
