package newsapi

import (
	"net/url"
	"strconv"

	"dhootha/config"
	"dhootha/types"
)

// EverythingQuery is the parameter set of a date-bounded "everything" search
type EverythingQuery struct {
	Q        string
	Sources  string
	From     string
	To       string
	Language string
	SortBy   string
	PageSize int
}

// BuildEverythingQuery constructs the search for a single day.
// The search language is always English, independent of f.Language which
// only drives display and translation.
func BuildEverythingQuery(f types.Filter) EverythingQuery {
	day := f.Date.String()
	return EverythingQuery{
		Q:        f.Query,
		Sources:  f.Source,
		From:     day,
		To:       day,
		Language: config.SearchLanguage,
		SortBy:   config.SortByPublishedAt,
		PageSize: config.PageSize,
	}
}

// Values renders the query string parameters. The sources key is omitted
// entirely when no source is selected.
func (q EverythingQuery) Values() url.Values {
	v := url.Values{}
	v.Set("q", q.Q)
	if q.Sources != "" {
		v.Set("sources", q.Sources)
	}
	v.Set("from", q.From)
	v.Set("to", q.To)
	v.Set("language", q.Language)
	v.Set("sortBy", q.SortBy)
	v.Set("pageSize", strconv.Itoa(q.PageSize))
	return v
}
