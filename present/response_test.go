package present

import (
	"encoding/json"
	"strings"
	"testing"

	"dhootha/types"
)

func TestFetchResponseWireShape(t *testing.T) {
	body, err := json.Marshal(FetchResponse{
		Result: &types.Result{State: types.StateEmpty, Message: "🚫 No articles found for 'x' on 2024-03-01."},
		View:   View{Language: "en", Cards: []Card{}},
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, key := range []string{`"result":{`, `"view":{`, `"cards":[]`, `"state":"empty"`} {
		if !strings.Contains(string(body), key) {
			t.Fatalf("body %s missing %s", body, key)
		}
	}
}
