package http

import (
	"github.com/gin-gonic/gin"

	"mobile-recovery-booking/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	blocks := rg.Group("/blocks")
	{
		blocks.POST("", mw.RateLimit(), h.Create)
		blocks.GET("", mw.RateLimit(), h.List)
		blocks.GET("/:id", mw.RateLimit(), h.Detail)
		blocks.PUT("/:id", mw.RateLimit(), h.Update)
		blocks.DELETE("/:id", mw.RateLimit(), h.Delete)
	}
}
