package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dhootha/config"
)

// RegisterOptionsRoutes exposes the selector options in display order.
func RegisterOptionsRoutes(r *gin.Engine) {
	r.GET("/api/options", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"languages":     config.Languages,
			"sources":       config.NewsSources,
			"default_query": config.DefaultQuery,
		})
	})
}
