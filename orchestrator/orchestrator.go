package orchestrator

import (
	"context"
	"fmt"
	"log"
	"time"

	"dhootha/datefilter"
	"dhootha/newsapi"
	"dhootha/rssfeeds"
	"dhootha/types"
)

// ArticleSearcher is the news search API collaborator
type ArticleSearcher interface {
	Everything(ctx context.Context, q newsapi.EverythingQuery) (*newsapi.EverythingResponse, error)
}

// FallbackResolver runs the RSS fallback for a filter
type FallbackResolver interface {
	Resolve(ctx context.Context, f types.Filter) rssfeeds.FallbackOutcome
}

// Observer receives every final result. Observers must not modify it.
type Observer interface {
	Observe(ctx context.Context, result *types.Result)
}

// Retriever sequences search, date filtering and the RSS fallback.
// It holds no per-request state and is safe for concurrent use.
type Retriever struct {
	searcher  ArticleSearcher
	fallback  FallbackResolver
	observers []Observer
	now       func() time.Time
}

// NewRetriever creates a retriever; observers are notified in order after each retrieval
func NewRetriever(searcher ArticleSearcher, fallback FallbackResolver, observers ...Observer) *Retriever {
	return &Retriever{
		searcher:  searcher,
		fallback:  fallback,
		observers: observers,
		now:       time.Now,
	}
}

// Retrieve runs one retrieval to a terminal state. Each call makes at most
// one API call followed by at most one feed fetch, never concurrently.
func (r *Retriever) Retrieve(ctx context.Context, f types.Filter) *types.Result {
	return r.RetrieveWithID(ctx, types.NewRequestID(), f)
}

// RetrieveWithID is Retrieve with a caller supplied request id
func (r *Retriever) RetrieveWithID(ctx context.Context, requestID string, f types.Filter) *types.Result {
	result := &types.Result{
		RequestID: requestID,
		Filter:    f,
		StartedAt: r.now(),
	}

	r.run(ctx, result)

	result.FinishedAt = r.now()
	for _, o := range r.observers {
		o.Observe(ctx, result)
	}
	return result
}

func (r *Retriever) run(ctx context.Context, result *types.Result) {
	f := result.Filter
	day := f.Date.String()

	// Step 1: build and send
	log.Printf("📥 [%s] Searching %q on %s (source=%q, lang=%s)", result.RequestID, f.Query, day, f.Source, f.Language)
	resp, err := r.searcher.Everything(ctx, newsapi.BuildEverythingQuery(f))
	if err != nil {
		log.Printf("❌ [%s] News search failed: %v", result.RequestID, err)
		result.State = types.StateError
		result.Error = err.Error()
		result.Message = fmt.Sprintf("❌ Error fetching news: %v", err)
		return
	}

	// Step 2: filter
	articles := datefilter.Articles(resp.Articles, f.Date)
	log.Printf("[%s] API returned %d articles, %d on %s", result.RequestID, len(resp.Articles), len(articles), day)

	// Step 3: decide
	if len(articles) > 0 {
		result.State = types.StateSuccess
		result.Articles = articles
		result.Count = len(articles)
		result.Message = fmt.Sprintf("✅ Found %d articles for %s.", len(articles), day)
		return
	}

	// Step 4: fallback
	outcome := r.fallback.Resolve(ctx, f)
	if outcome.Applicable {
		result.FallbackAttempted = true
		result.FallbackFeed = outcome.FeedURL
	}

	switch {
	case !outcome.Applicable:
		log.Printf("[%s] RSS fallback not available for source %q", result.RequestID, f.Source)
	case outcome.Err != nil:
		log.Printf("⚠️  [%s] RSS fallback failed, reporting no results: %v", result.RequestID, outcome.Err)
		result.FallbackError = outcome.Err.Error()
	case len(outcome.Entries) > 0:
		result.State = types.StateSuccessRSS
		result.Entries = outcome.Entries
		result.Count = len(outcome.Entries)
		result.Message = fmt.Sprintf("✅ Found %d RSS entries for %s.", len(outcome.Entries), day)
		return
	}

	result.State = types.StateEmpty
	result.Message = fmt.Sprintf("🚫 No articles found for '%s' on %s.", f.Query, day)
}
