package http

import (
	"github.com/gin-gonic/gin"

	"smart-notes/internal/middleware"
)

// RegisterRoutes maps note routes onto rg. Creation is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	notes := rg.Group("/notes")
	{
		notes.POST("", mw.RateLimit(), h.Create)
		notes.GET("", h.List)
		notes.GET("/:id", h.Detail)
		notes.DELETE("/:id", h.Delete)
		notes.PATCH("/:id/complete", h.ToggleComplete)
		notes.GET("/:id/countdown", h.Countdown)
	}
}
