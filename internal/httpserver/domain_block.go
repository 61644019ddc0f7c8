package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	blockHTTP "mobile-recovery-booking/internal/block/delivery/http"
	blockRepo "mobile-recovery-booking/internal/block/repository/postgre"
	blockUC "mobile-recovery-booking/internal/block/usecase"
	"mobile-recovery-booking/internal/middleware"
)

// setupBlockDomain initializes the manual block domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupBlockDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := blockRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := blockUC.New(srv.l, repo)

	// 3. HTTP Handler
	h := blockHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/blocks
	blockHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Manual block domain registered")
	return nil
}
