package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"dhootha/newsapi"
	"dhootha/rssfeeds"
	"dhootha/types"
)

type fakeSearcher struct {
	articles []types.Article
	err      error
	queries  []newsapi.EverythingQuery
}

func (f *fakeSearcher) Everything(ctx context.Context, q newsapi.EverythingQuery) (*newsapi.EverythingResponse, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return &newsapi.EverythingResponse{Status: "ok", TotalResults: len(f.articles), Articles: f.articles}, nil
}

type fakeFetcher struct {
	entries []types.FeedEntry
	err     error
	urls    []string
}

func (f *fakeFetcher) FetchFeed(ctx context.Context, feedURL string) ([]types.FeedEntry, error) {
	f.urls = append(f.urls, feedURL)
	return f.entries, f.err
}

type recordingObserver struct {
	results []*types.Result
}

func (r *recordingObserver) Observe(ctx context.Context, result *types.Result) {
	r.results = append(r.results, result)
}

var march1 = types.Date{Year: 2024, Month: time.March, Day: 1}

func entryAt(title string, day, hour int) types.FeedEntry {
	t := time.Date(2024, time.March, day, hour, 0, 0, 0, time.UTC)
	if day == 0 {
		t = time.Date(2024, time.February, 28, hour, 0, 0, 0, time.UTC)
	}
	return types.FeedEntry{Title: title, Published: &t}
}

func newRetriever(s *fakeSearcher, f *fakeFetcher, obs ...Observer) *Retriever {
	return NewRetriever(s, rssfeeds.NewResolver(f), obs...)
}

func TestRetrieveSuccessFromAPI(t *testing.T) {
	s := &fakeSearcher{articles: []types.Article{
		{Title: "a", PublishedAt: "2024-03-01T01:00:00Z"},
		{Title: "b", PublishedAt: "2024-03-01T12:30:00Z"},
		{Title: "c", PublishedAt: "2024-03-01T23:59:00Z"},
	}}
	f := &fakeFetcher{}
	obs := &recordingObserver{}

	res := newRetriever(s, f, obs).Retrieve(context.Background(), types.Filter{Query: "Technology", Language: "hi", Date: march1})

	if res.State != types.StateSuccess || res.Count != 3 {
		t.Fatalf("state = %s count = %d; want success/3", res.State, res.Count)
	}
	if res.Message != "✅ Found 3 articles for 2024-03-01." {
		t.Fatalf("message = %q", res.Message)
	}
	if res.Filter.Language != "hi" {
		t.Fatalf("display language must pass through, got %q", res.Filter.Language)
	}
	if len(f.urls) != 0 {
		t.Fatal("fallback must not run when the API has matches")
	}
	if len(s.queries) != 1 || s.queries[0].Language != "en" || s.queries[0].Sources != "" {
		t.Fatalf("unexpected query: %+v", s.queries)
	}
	if len(obs.results) != 1 || obs.results[0] != res {
		t.Fatal("observer should see the final result once")
	}
	if res.RequestID == "" || res.FinishedAt.Before(res.StartedAt) {
		t.Fatalf("bad bookkeeping: %+v", res)
	}
}

func TestRetrieveFallsBackToRSS(t *testing.T) {
	s := &fakeSearcher{articles: []types.Article{
		{Title: "old", PublishedAt: "2024-02-29T10:00:00Z"},
		{Title: "broken", PublishedAt: "n/a"},
	}}
	f := &fakeFetcher{entries: []types.FeedEntry{
		entryAt("rss-1", 1, 9),
		entryAt("rss-old", 0, 9),
		entryAt("rss-2", 1, 18),
	}}

	res := newRetriever(s, f).Retrieve(context.Background(), types.Filter{Query: "Technology", Language: "en", Date: march1})

	if res.State != types.StateSuccessRSS || res.Count != 2 {
		t.Fatalf("state = %s count = %d; want success_rss/2", res.State, res.Count)
	}
	if len(f.urls) != 1 || f.urls[0] != "https://feeds.bbci.co.uk/news/technology/rss.xml" {
		t.Fatalf("unexpected feed urls: %v", f.urls)
	}
	if !res.FallbackAttempted || res.FallbackFeed != f.urls[0] {
		t.Fatalf("fallback bookkeeping wrong: %+v", res)
	}
	if len(res.Articles) != 0 || res.Entries[0].Title != "rss-1" || res.Entries[1].Title != "rss-2" {
		t.Fatalf("unexpected payload: %+v", res)
	}
}

func TestRetrieveSkipsFallbackForOtherSources(t *testing.T) {
	s := &fakeSearcher{}
	f := &fakeFetcher{entries: []types.FeedEntry{entryAt("unused", 1, 9)}}

	res := newRetriever(s, f).Retrieve(context.Background(), types.Filter{Query: "xyz123", Language: "en", Source: "cnn", Date: march1})

	if res.State != types.StateEmpty {
		t.Fatalf("state = %s; want empty", res.State)
	}
	if len(f.urls) != 0 || res.FallbackAttempted {
		t.Fatal("fallback must be skipped for cnn")
	}
	if !strings.Contains(res.Message, "xyz123") || !strings.Contains(res.Message, "2024-03-01") {
		t.Fatalf("warning must name query and date: %q", res.Message)
	}
	if s.queries[0].Sources != "cnn" {
		t.Fatalf("source must be sent verbatim, got %q", s.queries[0].Sources)
	}
}

func TestRetrieveTransportError(t *testing.T) {
	s := &fakeSearcher{err: errors.New("dial tcp: connection refused")}
	f := &fakeFetcher{}

	res := newRetriever(s, f).Retrieve(context.Background(), types.Filter{Query: "Technology", Language: "en", Date: march1})

	if res.State != types.StateError {
		t.Fatalf("state = %s; want error", res.State)
	}
	if res.Error != "dial tcp: connection refused" {
		t.Fatalf("error = %q; want verbatim cause", res.Error)
	}
	if !strings.Contains(res.Message, "dial tcp: connection refused") {
		t.Fatalf("message must surface the cause: %q", res.Message)
	}
	if len(f.urls) != 0 || res.FallbackAttempted {
		t.Fatal("no fallback after a transport error")
	}
	if len(s.queries) != 1 {
		t.Fatalf("no retry expected, got %d calls", len(s.queries))
	}
}

func TestRetrieveFallbackWithoutMatches(t *testing.T) {
	s := &fakeSearcher{}
	f := &fakeFetcher{entries: []types.FeedEntry{entryAt("old", 0, 9)}}

	res := newRetriever(s, f).Retrieve(context.Background(), types.Filter{Query: "world", Language: "en", Source: "bbc-news", Date: march1})

	if res.State != types.StateEmpty || !res.FallbackAttempted {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.FallbackFeed != "https://feeds.bbci.co.uk/news/world/rss.xml" {
		t.Fatalf("FallbackFeed = %q", res.FallbackFeed)
	}
}

func TestRetrieveFeedFailureDegradesToEmpty(t *testing.T) {
	s := &fakeSearcher{}
	f := &fakeFetcher{err: errors.New("failed to fetch feed: 503")}

	res := newRetriever(s, f).Retrieve(context.Background(), types.Filter{Query: "Technology", Language: "en", Date: march1})

	if res.State != types.StateEmpty {
		t.Fatalf("state = %s; want empty", res.State)
	}
	if res.FallbackError != "failed to fetch feed: 503" {
		t.Fatalf("FallbackError = %q", res.FallbackError)
	}
	if res.Error != "" {
		t.Fatalf("feed failures are not surfaced as errors, got %q", res.Error)
	}
}

func TestRetrieveWithIDKeepsID(t *testing.T) {
	res := newRetriever(&fakeSearcher{err: errors.New("x")}, &fakeFetcher{}).RetrieveWithID(context.Background(), "req-1", types.Filter{Query: "q", Date: march1})
	if res.RequestID != "req-1" {
		t.Fatalf("RequestID = %q", res.RequestID)
	}
}
