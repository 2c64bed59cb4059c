// Package datefilter keeps only records published on a given UTC calendar day.
package datefilter

import (
	"strings"
	"time"

	"dhootha/types"
)

// ISO-8601 shapes accepted for article timestamps. Fractional seconds are
// accepted after the seconds field by time.Parse for every layout.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	types.DateLayout,
}

// ParseTimestamp parses an ISO-8601 timestamp. A trailing "Z" means UTC and
// timestamps without an offset are read as UTC. The bool is false for empty
// or unparsable input.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// OnDate reports whether t falls on day in UTC
func OnDate(t time.Time, day types.Date) bool {
	return types.DateOf(t) == day
}

// Articles returns the articles published on day, in input order.
// Articles with a missing or malformed timestamp are dropped individually.
func Articles(articles []types.Article, day types.Date) []types.Article {
	out := make([]types.Article, 0, len(articles))
	for _, a := range articles {
		published, ok := ParseTimestamp(string(a.PublishedAt))
		if !ok {
			continue
		}
		if OnDate(published, day) {
			out = append(out, a)
		}
	}
	return out
}

// Entries applies the same rule to feed entries using their publication date
func Entries(entries []types.FeedEntry, day types.Date) []types.FeedEntry {
	out := make([]types.FeedEntry, 0, len(entries))
	for _, e := range entries {
		published, ok := entryTime(e)
		if !ok {
			continue
		}
		if OnDate(published, day) {
			out = append(out, e)
		}
	}
	return out
}

func entryTime(e types.FeedEntry) (time.Time, bool) {
	if e.Published != nil && !e.Published.IsZero() {
		return *e.Published, true
	}
	return ParseTimestamp(e.PublishedRaw)
}
