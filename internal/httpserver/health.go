package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "task-management/pkg/errors"
	"task-management/pkg/response"
)

const (
	HealthMessage = "Lists and Items API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "task-management"

	readyTimeout = 2 * time.Second
)

// statusBody is the payload shared by every system route.
func (srv HTTPServer) statusBody(status string) gin.H {
	return gin.H{
		"status":      status,
		"message":     HealthMessage,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	}
}

// healthCheck handles health check requests
// @Summary     Health Check
// @Description Check if the API process is up
// @Tags        system
// @Produce     json
// @Success     200 {object} response.Resp "API is healthy"
// @Router      /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.statusBody("healthy"))
}

// readyCheck reports ready once the database answers a ping.
// @Summary     Readiness Check
// @Description Check if the API and its database are ready to serve traffic
// @Tags        system
// @Produce     json
// @Success     200 {object} response.Resp "API is ready"
// @Failure     503 {object} response.Resp "Database unavailable"
// @Router      /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Errorf(ctx, "httpserver.readyCheck: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "database unavailable"))
		return
	}
	response.OK(c, srv.statusBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary     Liveness Check
// @Tags        system
// @Produce     json
// @Success     200 {object} response.Resp "API is alive"
// @Router      /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.statusBody("alive"))
}
