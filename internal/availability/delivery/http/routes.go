package http

import (
	"github.com/gin-gonic/gin"

	"mobile-recovery-booking/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The picker
// polls these endpoints, so both sit behind the per-IP rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	avail := rg.Group("/availability")
	{
		avail.GET("", mw.RateLimit(), h.Query)
		avail.GET("/slots", mw.RateLimit(), h.BookableSlots)
	}
}
