package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

// registerMiddlewares installs panic recovery and request logging on every route.
func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery(), srv.mw.Logging())

	ctx := context.Background()
	if srv.exposeErrors() {
		srv.l.Infof(ctx, "Error detail: exposed (%s)", srv.environment)
	} else {
		srv.l.Infof(ctx, "Error detail: hidden (%s)", srv.environment)
	}
}

// registerSystemRoutes registers health checks and Swagger UI. They bypass the rate limiter.
func (srv HTTPServer) registerSystemRoutes() {
	checks := map[string]gin.HandlerFunc{
		"/health": srv.healthCheck,
		"/ready":  srv.readyCheck,
		"/live":   srv.liveCheck,
	}
	for path, h := range checks {
		srv.gin.GET(path, h)
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1, rate limited per client.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1", srv.mw.RateLimit())

	if err := srv.setupListDomain(ctx, api); err != nil {
		return err
	}
	if err := srv.setupItemDomain(ctx, api); err != nil {
		return err
	}

	return nil
}
