package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dhootha/present"
	"dhootha/quota"
	"dhootha/types"
)

// Retriever runs a retrieval for a validated filter
type Retriever interface {
	RetrieveWithID(ctx context.Context, requestID string, f types.Filter) *types.Result
}

// Presenter renders a result for display
type Presenter interface {
	Present(ctx context.Context, result *types.Result, lang string) present.View
}

// UsageReader reads daily usage counters
type UsageReader interface {
	Usage(ctx context.Context, day types.Date) (quota.Usage, error)
}

// ArchiveReader loads archived results
type ArchiveReader interface {
	Load(ctx context.Context, date types.Date, requestID string) (*types.Result, error)
}

// Deps are the collaborators behind the routes. Usage, Archive and
// FetchLimiter are optional.
type Deps struct {
	Retriever    Retriever
	Presenter    Presenter
	Usage        UsageReader
	Archive      ArchiveReader
	FetchLimiter *RateLimiter
	Today        func() types.Date
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(d Deps) *gin.Engine {
	if d.Today == nil {
		d.Today = types.Today
	}
	if d.Presenter == nil {
		d.Presenter = present.NewPresenter(nil, nil)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	RegisterHealthRoutes(r)
	RegisterOptionsRoutes(r)
	RegisterNewsRoutes(r, d)
	RegisterUsageRoutes(r, d)
	RegisterArchiveRoutes(r, d)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}
