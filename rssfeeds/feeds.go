package rssfeeds

import (
	"strings"

	"dhootha/config"
)

// NormalizeTopic lowercases and trims a free-text topic keyword
func NormalizeTopic(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// TopicMap resolves normalized topics to feed URLs with a default for unmapped topics.
// It is never mutated after construction.
type TopicMap struct {
	feeds      map[string]string
	defaultURL string
}

// NewTopicMap copies feeds so later changes to the input do not leak in
func NewTopicMap(feeds map[string]string, defaultURL string) TopicMap {
	copied := make(map[string]string, len(feeds))
	for topic, url := range feeds {
		copied[NormalizeTopic(topic)] = url
	}
	return TopicMap{feeds: copied, defaultURL: defaultURL}
}

// DefaultTopicMap is the BBC topic map
func DefaultTopicMap() TopicMap {
	return NewTopicMap(config.TopicFeeds, config.DefaultTopicFeedURL)
}

// Resolve returns the feed URL for a query; unmapped topics get the default URL
func (m TopicMap) Resolve(query string) string {
	if url, ok := m.feeds[NormalizeTopic(query)]; ok {
		return url
	}
	return m.defaultURL
}

// ResolveTopicFeedURL resolves a query against the default topic map
func ResolveTopicFeedURL(query string) string {
	return DefaultTopicMap().Resolve(query)
}

// FallbackPolicy names the source selections for which the RSS fallback is defined.
// The empty code stands for "All Sources".
type FallbackPolicy struct {
	capable map[string]struct{}
}

// NewFallbackPolicy builds a policy from RSS-capable source codes
func NewFallbackPolicy(sources ...string) FallbackPolicy {
	capable := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		capable[strings.TrimSpace(s)] = struct{}{}
	}
	return FallbackPolicy{capable: capable}
}

// DefaultFallbackPolicy allows the fallback for "All Sources" and BBC News
func DefaultFallbackPolicy() FallbackPolicy {
	return NewFallbackPolicy("", config.RSSCapableSource)
}

// Allows reports whether the fallback applies to the selected source
func (p FallbackPolicy) Allows(source string) bool {
	_, ok := p.capable[strings.TrimSpace(source)]
	return ok
}
