package present

import "dhootha/types"

// FetchResponse is the body of POST /api/news/fetch and of `fetch --json`
type FetchResponse struct {
	Result *types.Result `json:"result"`
	View   View          `json:"view"`
}
