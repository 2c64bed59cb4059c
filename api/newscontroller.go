package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"dhootha/orchestrator"
	"dhootha/present"
	"dhootha/types"
)

// RegisterNewsRoutes registers the retrieval endpoint.
func RegisterNewsRoutes(r *gin.Engine, d Deps) {
	g := r.Group("/api/news")
	if d.FetchLimiter != nil {
		g.Use(d.FetchLimiter.Middleware())
	}
	g.POST("/fetch", handleFetch(d))
}

// handleFetch runs one retrieval synchronously. Retrieval failures are a
// result state, so every completed retrieval is answered with 200.
func handleFetch(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.FetchRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		f, err := orchestrator.NewFilter(req, d.Today())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		id := req.RequestID
		if id == "" {
			id = types.NewRequestID()
		}

		ctx := c.Request.Context()
		res := d.Retriever.RetrieveWithID(ctx, id, f)
		c.JSON(http.StatusOK, present.FetchResponse{
			Result: res,
			View:   d.Presenter.Present(ctx, res, f.Language),
		})
	}
}
