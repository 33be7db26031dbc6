package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-management/internal/list"
	"task-management/pkg/datemath"
	"task-management/pkg/log"
)

// Handler is the public interface for the list HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Detail(c *gin.Context)
	List(c *gin.Context)
	Filter(c *gin.Context)
	Update(c *gin.Context)
	DeleteByID(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l            log.Logger
	uc           list.UseCase
	dates        *datemath.Parser
	exposeErrors bool
	now          func() time.Time
}

// New creates a new HTTP handler for the list domain.
// exposeErrors controls whether unexpected error messages reach the client.
func New(l log.Logger, uc list.UseCase, dates *datemath.Parser, exposeErrors bool) *handler {
	return &handler{
		l:            l,
		uc:           uc,
		dates:        dates,
		exposeErrors: exposeErrors,
		now:          time.Now,
	}
}
