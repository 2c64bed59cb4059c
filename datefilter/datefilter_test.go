package datefilter

import (
	"testing"
	"time"

	"dhootha/types"
)

var march1 = types.Date{Year: 2024, Month: time.March, Day: 1}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"2024-03-01T10:15:00Z", "2024-03-01T10:15:00Z", true},
		{"2024-03-01T10:15:00.123456Z", "2024-03-01T10:15:00.123456Z", true},
		{"2024-03-01T23:30:00-05:00", "2024-03-02T04:30:00Z", true},
		{"2024-03-01T10:15:00+0530", "2024-03-01T04:45:00Z", true},
		{"2024-03-01T10:15:00", "2024-03-01T10:15:00Z", true},
		{"2024-03-01 10:15:00", "2024-03-01T10:15:00Z", true},
		{"2024-03-01", "2024-03-01T00:00:00Z", true},
		{"", "", false},
		{"   ", "", false},
		{"yesterday", "", false},
		{"Fri, 01 Mar 2024 10:15:00 GMT", "", false},
	}

	for _, c := range cases {
		t.Run(c.raw, func(t *testing.T) {
			got, ok := ParseTimestamp(c.raw)
			if ok != c.wantOK {
				t.Fatalf("ParseTimestamp(%q) ok = %v; want %v", c.raw, ok, c.wantOK)
			}
			if ok && got.Format(time.RFC3339Nano) != c.want {
				t.Fatalf("ParseTimestamp(%q) = %s; want %s", c.raw, got.Format(time.RFC3339Nano), c.want)
			}
		})
	}
}

func TestArticlesKeepsExactDayInOrder(t *testing.T) {
	in := []types.Article{
		{Title: "a", PublishedAt: "2024-03-01T00:00:00Z"},
		{Title: "b", PublishedAt: "2024-02-29T23:59:59Z"},
		{Title: "c", PublishedAt: "2024-03-01T23:59:59Z"},
		{Title: "d", PublishedAt: "2024-03-02T00:00:00Z"},
		{Title: "e", PublishedAt: "2024-03-01T12:00:00+02:00"},
	}

	got := Articles(in, march1)
	want := []string{"a", "c", "e"}
	if len(got) != len(want) {
		t.Fatalf("got %d articles; want %d", len(got), len(want))
	}
	for i, a := range got {
		if a.Title != want[i] {
			t.Fatalf("got[%d] = %s; want %s", i, a.Title, want[i])
		}
	}
}

func TestArticlesIsolatesBadTimestamps(t *testing.T) {
	in := []types.Article{
		{Title: "missing"},
		{Title: "good-1", PublishedAt: "2024-03-01T08:00:00Z"},
		{Title: "garbage", PublishedAt: "not-a-date"},
		{Title: "good-2", PublishedAt: "2024-03-01T09:00:00Z"},
	}

	got := Articles(in, march1)
	if len(got) != 2 || got[0].Title != "good-1" || got[1].Title != "good-2" {
		t.Fatalf("unexpected result: %+v", got)
	}

	// the bad records never change what happens to the good ones
	clean := Articles([]types.Article{in[1], in[3]}, march1)
	if len(clean) != len(got) {
		t.Fatalf("bad records changed the outcome: %d vs %d", len(clean), len(got))
	}
}

func TestArticlesEmptyInput(t *testing.T) {
	if got := Articles(nil, march1); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestEntries(t *testing.T) {
	on := time.Date(2024, time.March, 1, 6, 0, 0, 0, time.UTC)
	off := time.Date(2024, time.March, 2, 1, 0, 0, 0, time.UTC)

	in := []types.FeedEntry{
		{Title: "on", Published: &on},
		{Title: "off", Published: &off},
		{Title: "undated"},
		{Title: "raw", PublishedRaw: "2024-03-01T11:00:00Z"},
	}

	got := Entries(in, march1)
	if len(got) != 2 || got[0].Title != "on" || got[1].Title != "raw" {
		t.Fatalf("unexpected entries: %+v", got)
	}
}
