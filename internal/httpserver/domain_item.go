package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "task-management/internal/item/delivery/http"
	itemRepo "task-management/internal/item/repository/sqlite"
	itemUC "task-management/internal/item/usecase"
	listRepo "task-management/internal/list/repository/sqlite"
)

// setupItemDomain initializes the item domain and registers its routes.
// Items created under a list go through the list repository.
func (srv HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repositories
	repo := itemRepo.New(srv.db, srv.l)
	lists := listRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := itemUC.New(repo, lists, srv.l)

	// 3. HTTP Handler
	h := itemHTTP.New(srv.l, uc, srv.dates, srv.exposeErrors())

	// 4. Routes: registers /api/v1/items
	itemHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}
