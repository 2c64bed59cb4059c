package rssfeeds

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"dhootha/types"

	"github.com/mmcdole/gofeed"
)

// Fetcher retrieves and parses RSS/Atom feeds
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a feed fetcher with the given per-request timeout
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// FetchFeed retrieves and parses a feed, returning its entries in feed order
func (f *Fetcher) FetchFeed(ctx context.Context, feedURL string) ([]types.FeedEntry, error) {
	parser := gofeed.NewParser()
	parser.Client = f.client

	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	entries := make([]types.FeedEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		entries = append(entries, entryFromItem(item))
	}
	return entries, nil
}

func entryFromItem(item *gofeed.Item) types.FeedEntry {
	// Use GUID if available, otherwise generate from URL
	id := item.GUID
	if id == "" && item.Link != "" {
		id = GenerateID(item.Link)
	}

	// Parse published date
	var published *time.Time
	raw := item.Published
	if item.PublishedParsed != nil {
		published = item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		published = item.UpdatedParsed
		raw = item.Updated
	}

	author := ""
	if item.Author != nil {
		author = item.Author.Name
	}

	categories := make([]string, len(item.Categories))
	copy(categories, item.Categories)

	summary := item.Description
	if summary == "" {
		summary = item.Content
	}

	entry := types.FeedEntry{
		ID:           id,
		Title:        item.Title,
		Link:         item.Link,
		Published:    published,
		PublishedRaw: raw,
		Summary:      summary,
		Author:       author,
		Categories:   categories,
	}
	if item.Image != nil {
		entry.ImageURL = item.Image.URL
	}
	return entry
}

// GenerateID creates a short, stable ID by hashing the provided string input
func GenerateID(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])[:16]
}
