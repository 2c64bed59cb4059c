package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dhootha/quota"
	"dhootha/types"
)

// RegisterUsageRoutes registers the usage counters endpoint.
func RegisterUsageRoutes(r *gin.Engine, d Deps) {
	r.GET("/api/usage", func(c *gin.Context) {
		if d.Usage == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": quota.ErrDisabled.Error()})
			return
		}

		day := d.Today()
		if raw := strings.TrimSpace(c.Query("date")); raw != "" {
			parsed, err := types.ParseDate(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			day = parsed
		}

		u, err := d.Usage.Usage(c.Request.Context(), day)
		switch {
		case errors.Is(err, quota.ErrDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case err != nil:
			log.Printf("❌ Failed to read usage for %s: %v", day, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read usage"})
		default:
			c.JSON(http.StatusOK, u)
		}
	})
}
