package rssfeeds

import (
	"context"
	"log"

	"dhootha/config"
	"dhootha/datefilter"
	"dhootha/types"
)

// FeedFetcher is the feed retrieval collaborator used by the resolver
type FeedFetcher interface {
	FetchFeed(ctx context.Context, feedURL string) ([]types.FeedEntry, error)
}

// FallbackOutcome describes what the RSS fallback did
type FallbackOutcome struct {
	// Applicable is false when the selected source has no fallback feed
	Applicable bool
	FeedURL    string
	Entries    []types.FeedEntry
	Err        error
}

// Resolver maps a query to a feed, fetches it and keeps the entries of the filter date
type Resolver struct {
	policy  FallbackPolicy
	topics  TopicMap
	fetcher FeedFetcher
	extract bool
}

// ResolverOption customizes a Resolver
type ResolverOption func(*Resolver)

// WithPolicy replaces the default fallback policy
func WithPolicy(p FallbackPolicy) ResolverOption {
	return func(r *Resolver) { r.policy = p }
}

// WithTopicMap replaces the default topic map
func WithTopicMap(m TopicMap) ResolverOption {
	return func(r *Resolver) { r.topics = m }
}

// WithContentExtraction enables readability extraction of matching entries
func WithContentExtraction(enabled bool) ResolverOption {
	return func(r *Resolver) { r.extract = enabled }
}

// NewResolver creates a resolver using the BBC topic map and default policy
func NewResolver(fetcher FeedFetcher, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		policy:  DefaultFallbackPolicy(),
		topics:  DefaultTopicMap(),
		fetcher: fetcher,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve runs the fallback for f. It never fetches when the policy does not allow f.Source.
func (r *Resolver) Resolve(ctx context.Context, f types.Filter) FallbackOutcome {
	if !r.policy.Allows(f.Source) {
		return FallbackOutcome{Applicable: false}
	}

	feedURL := r.topics.Resolve(f.Query)
	out := FallbackOutcome{Applicable: true, FeedURL: feedURL}

	log.Printf("📡 Falling back to RSS feed: %s", feedURL)
	entries, err := r.fetcher.FetchFeed(ctx, feedURL)
	if err != nil {
		out.Err = err
		return out
	}

	out.Entries = datefilter.Entries(entries, f.Date)
	log.Printf("Feed returned %d entries, %d on %s", len(entries), len(out.Entries), f.Date)

	if r.extract && len(out.Entries) > 0 {
		ExtractAllContent(out.Entries, config.ExtractWorkerCount)
	}
	return out
}
