package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	listHTTP "task-management/internal/list/delivery/http"
	listRepo "task-management/internal/list/repository/sqlite"
	listUC "task-management/internal/list/usecase"
)

// setupListDomain initializes the list domain and registers its routes.
func (srv HTTPServer) setupListDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	repo := listRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := listUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := listHTTP.New(srv.l, uc, srv.dates, srv.exposeErrors())

	// 4. Routes: registers /api/v1/lists
	listHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "List domain registered")
	return nil
}
