package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"dhootha/archive"
	"dhootha/types"
)

// RegisterArchiveRoutes registers the archived result lookup.
func RegisterArchiveRoutes(r *gin.Engine, d Deps) {
	r.GET("/api/archive/:date/:id", func(c *gin.Context) {
		if d.Archive == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": archive.ErrDisabled.Error()})
			return
		}

		day, err := types.ParseDate(c.Param("date"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res, err := d.Archive.Load(c.Request.Context(), day, c.Param("id"))
		switch {
		case errors.Is(err, archive.ErrDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case errors.Is(err, archive.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err != nil:
			log.Printf("❌ Failed to load archived result %s: %v", c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load archived result"})
		default:
			c.JSON(http.StatusOK, res)
		}
	})
}
