package orchestrator

import (
	"fmt"
	"strings"

	"dhootha/config"
	"dhootha/types"
)

// NewFilter validates a loosely typed request and applies defaults:
// query "Technology", English, all sources, and today (UTC).
func NewFilter(req types.FetchRequest, today types.Date) (types.Filter, error) {
	f := types.Filter{
		Query: strings.TrimSpace(req.Query),
		Date:  today,
	}
	if f.Query == "" {
		f.Query = config.DefaultQuery
	}

	lang, ok := config.ResolveLanguage(req.Language)
	if !ok {
		return types.Filter{}, fmt.Errorf("unknown language %q", req.Language)
	}
	f.Language = lang

	source, ok := config.ResolveSource(req.Source)
	if !ok {
		return types.Filter{}, fmt.Errorf("unknown source %q", req.Source)
	}
	f.Source = source

	if strings.TrimSpace(req.Date) != "" {
		day, err := types.ParseDate(req.Date)
		if err != nil {
			return types.Filter{}, err
		}
		f.Date = day
	}

	return f, nil
}
