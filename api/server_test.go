package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"dhootha/archive"
	"dhootha/present"
	"dhootha/quota"
	"dhootha/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeRetriever struct {
	calls  int
	lastID string
	last   types.Filter
	result *types.Result
}

func (f *fakeRetriever) RetrieveWithID(ctx context.Context, requestID string, filter types.Filter) *types.Result {
	f.calls++
	f.lastID = requestID
	f.last = filter
	res := *f.result
	res.RequestID = requestID
	res.Filter = filter
	return &res
}

type fakeUsage struct {
	usage quota.Usage
	err   error
	day   types.Date
}

func (f *fakeUsage) Usage(ctx context.Context, day types.Date) (quota.Usage, error) {
	f.day = day
	return f.usage, f.err
}

type fakeArchive struct {
	results map[string]*types.Result
	err     error
}

func (f *fakeArchive) Load(ctx context.Context, date types.Date, id string) (*types.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	res, ok := f.results[date.String()+"/"+id]
	if !ok {
		return nil, archive.ErrNotFound
	}
	return res, nil
}

var testDay = types.Date{Year: 2024, Month: time.March, Day: 5}

func newTestRouter(d Deps) *gin.Engine {
	d.Today = func() types.Date { return testDay }
	if d.Retriever == nil {
		d.Retriever = &fakeRetriever{result: &types.Result{State: types.StateEmpty}}
	}
	return NewRouter(d)
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthAndOptions(t *testing.T) {
	r := newTestRouter(Deps{})

	w := do(r, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok"`) {
		t.Fatalf("health = %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/options", "")
	if w.Code != http.StatusOK {
		t.Fatalf("options status = %d", w.Code)
	}
	var opts struct {
		Languages    []struct{ Name, Code string } `json:"languages"`
		Sources      []struct{ Name, Code string } `json:"sources"`
		DefaultQuery string                         `json:"default_query"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &opts); err != nil {
		t.Fatalf("decode options: %v", err)
	}
	if len(opts.Languages) != 5 || opts.Languages[0].Code != "en" {
		t.Fatalf("unexpected languages: %+v", opts.Languages)
	}
	if len(opts.Sources) != 8 || opts.Sources[0].Name != "All Sources" || opts.Sources[0].Code != "" {
		t.Fatalf("unexpected sources: %+v", opts.Sources)
	}
	if opts.DefaultQuery != "Technology" {
		t.Fatalf("default query = %q", opts.DefaultQuery)
	}
}

func TestFetchReturnsResultAndView(t *testing.T) {
	fr := &fakeRetriever{result: &types.Result{
		State:    types.StateSuccess,
		Articles: []types.Article{{Title: "<b>Chips</b>", URL: "https://example.com/c", PublishedAt: "2024-03-01T12:00:00Z", Source: types.ArticleSource{Name: "CNN"}}},
		Count:    1,
		Message:  "✅ Found 1 articles for 2024-03-01.",
	}}
	r := newTestRouter(Deps{Retriever: fr})

	w := do(r, http.MethodPost, "/api/news/fetch", `{"request_id":"r1","query":"chips","source":"CNN","date":"2024-03-01"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var resp present.FetchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fr.lastID != "r1" || fr.last.Source != "cnn" || fr.last.Date.String() != "2024-03-01" {
		t.Fatalf("unexpected retrieval: id=%s filter=%+v", fr.lastID, fr.last)
	}
	if resp.Result.State != types.StateSuccess || resp.Result.Count != 1 {
		t.Fatalf("unexpected result: %+v", resp.Result)
	}
	if len(resp.View.Cards) != 1 || resp.View.Cards[0].Title != "Chips" || resp.View.Language != "en" {
		t.Fatalf("unexpected view: %+v", resp.View)
	}
}

func TestFetchEmptyBodyUsesDefaults(t *testing.T) {
	fr := &fakeRetriever{result: &types.Result{State: types.StateEmpty}}
	r := newTestRouter(Deps{Retriever: fr})

	w := do(r, http.MethodPost, "/api/news/fetch", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if fr.last.Query != "Technology" || fr.last.Language != "en" || fr.last.Source != "" || fr.last.Date != testDay {
		t.Fatalf("unexpected defaults: %+v", fr.last)
	}
	if fr.lastID == "" {
		t.Fatal("expected generated request id")
	}
}

func TestFetchRejectsBadInput(t *testing.T) {
	fr := &fakeRetriever{result: &types.Result{State: types.StateEmpty}}
	r := newTestRouter(Deps{Retriever: fr})

	for _, body := range []string{`{"date":"2024/03/01"}`, `{"language":"Klingon"}`, `{"source":"Daily Planet"}`, `{`} {
		w := do(r, http.MethodPost, "/api/news/fetch", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d; want 400", body, w.Code)
		}
	}
	if fr.calls != 0 {
		t.Fatalf("no retrieval should run, got %d", fr.calls)
	}
}

func TestFetchRateLimited(t *testing.T) {
	r := newTestRouter(Deps{FetchLimiter: NewRateLimiter(0.001, 1)})

	if w := do(r, http.MethodPost, "/api/news/fetch", `{}`); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d", w.Code)
	}
	w := do(r, http.MethodPost, "/api/news/fetch", `{}`)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d; want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
	// other routes are not limited
	if w := do(r, http.MethodGet, "/api/health", ""); w.Code != http.StatusOK {
		t.Fatalf("health status = %d", w.Code)
	}
}

func TestUsageEndpoint(t *testing.T) {
	if w := do(newTestRouter(Deps{}), http.MethodGet, "/api/usage", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("without meter status = %d; want 503", w.Code)
	}

	fu := &fakeUsage{usage: quota.Usage{Retrievals: 7}}
	r := newTestRouter(Deps{Usage: fu})

	w := do(r, http.MethodGet, "/api/usage", "")
	if w.Code != http.StatusOK || fu.day != testDay {
		t.Fatalf("status = %d day=%v", w.Code, fu.day)
	}
	if !strings.Contains(w.Body.String(), `"retrievals":7`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}

	if w := do(r, http.MethodGet, "/api/usage?date=2024-02-29", ""); w.Code != http.StatusOK || fu.day.String() != "2024-02-29" {
		t.Fatalf("status = %d day=%v", w.Code, fu.day)
	}
	if w := do(r, http.MethodGet, "/api/usage?date=yesterday", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad date status = %d", w.Code)
	}

	fu.err = quota.ErrDisabled
	if w := do(r, http.MethodGet, "/api/usage", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("disabled status = %d", w.Code)
	}
	fu.err = errors.New("redis down")
	if w := do(r, http.MethodGet, "/api/usage", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("error status = %d", w.Code)
	}
}

func TestArchiveEndpoint(t *testing.T) {
	if w := do(newTestRouter(Deps{}), http.MethodGet, "/api/archive/2024-03-01/x", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("without archive status = %d; want 503", w.Code)
	}

	fa := &fakeArchive{results: map[string]*types.Result{
		"2024-03-01/abc": {RequestID: "abc", State: types.StateSuccessRSS, Count: 2},
	}}
	r := newTestRouter(Deps{Archive: fa})

	w := do(r, http.MethodGet, "/api/archive/2024-03-01/abc", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"success_rss"`) {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if w := do(r, http.MethodGet, "/api/archive/2024-03-01/missing", ""); w.Code != http.StatusNotFound {
		t.Fatalf("missing status = %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/api/archive/March/abc", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad date status = %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	w := do(newTestRouter(Deps{}), http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", w.Code)
	}
}
