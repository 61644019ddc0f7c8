package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	availHTTP "mobile-recovery-booking/internal/availability/delivery/http"
	"mobile-recovery-booking/internal/middleware"
)

// setupAvailabilityDomain registers the availability routes. The use case
// arrives pre-built through Config because the cache refresher shares it.
func (srv HTTPServer) setupAvailabilityDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := availHTTP.New(srv.l, srv.availabilityUC)

	// Registers /api/v1/availability and /api/v1/availability/slots
	availHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Availability domain registered")
	return nil
}
