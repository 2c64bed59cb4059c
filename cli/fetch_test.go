package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dhootha/present"
	"dhootha/types"
)

const everythingBody = `{"status":"ok","totalResults":2,"articles":[
 {"source":{"id":"the-verge","name":"The Verge"},"title":"Chip news","description":"<p>Fabs</p>","url":"https://example.com/chips","publishedAt":"2024-03-01T09:30:00Z"},
 {"source":{"id":"the-verge","name":"The Verge"},"title":"Older","url":"https://example.com/old","publishedAt":"2024-02-29T23:59:59Z"}
]}`

func newsServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/everything" || r.Header.Get("X-Api-Key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"bad key"}`))
			return
		}
		w.Write([]byte(everythingBody))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func isolateEnv(t *testing.T, newsURL, key string) {
	t.Helper()
	t.Setenv("NEWS_API_URL", newsURL)
	t.Setenv("NEWS_API_KEY", key)
	for _, k := range []string{"REDIS_ADDR", "S3_BUCKET", "KAFKA_BROKERS", "GOOGLE_TRANSLATE_API_KEY", "GOOGLE_TRANSLATE_ADC", "COHERE_API_KEY", "EXTRACT_CONTENT"} {
		t.Setenv(k, "")
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFetchJSON(t *testing.T) {
	srv := newsServer(t)
	isolateEnv(t, srv.URL, "test-key")

	out, err := runCLI(t, "fetch", "--query", "chips", "--source", "The Verge", "--date", "2024-03-01", "--json")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	var got present.FetchResponse
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if got.Result == nil || got.Result.State != types.StateSuccess || got.Result.Count != 1 {
		t.Fatalf("unexpected result: %+v", got.Result)
	}
	if got.Result.Message != "✅ Found 1 articles for 2024-03-01." {
		t.Fatalf("message = %q", got.Result.Message)
	}
	if len(got.View.Cards) != 1 || got.View.Cards[0].Title != "Chip news" || got.View.Cards[0].Summary != "Fabs" {
		t.Fatalf("unexpected cards: %+v", got.View.Cards)
	}
}

func TestFetchTextReportsAPIError(t *testing.T) {
	srv := newsServer(t)
	isolateEnv(t, srv.URL, "wrong-key")

	out, err := runCLI(t, "fetch", "--source", "cnn", "--date", "2024-03-01")
	if err == nil {
		t.Fatal("expected error exit for error state")
	}
	if !strings.Contains(out, "❌ Error fetching news:") || !strings.Contains(out, "bad key") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestFetchRejectsBadDate(t *testing.T) {
	isolateEnv(t, "http://127.0.0.1:1", "k")
	if _, err := runCLI(t, "fetch", "--date", "03/01/2024"); err == nil {
		t.Fatal("expected invalid date error")
	}
}

func TestWorkerNeedsBrokers(t *testing.T) {
	isolateEnv(t, "http://127.0.0.1:1", "k")
	_, err := runCLI(t, "worker")
	if err == nil || !strings.Contains(err.Error(), "KAFKA_BROKERS") {
		t.Fatalf("expected missing brokers error, got %v", err)
	}
}
