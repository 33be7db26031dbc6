package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-management/internal/item"
	"task-management/pkg/datemath"
	"task-management/pkg/log"
)

// Handler is the public interface for the item HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Detail(c *gin.Context)
	List(c *gin.Context)
	ListByList(c *gin.Context)
	Filter(c *gin.Context)
	Update(c *gin.Context)
	DeleteByID(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l            log.Logger
	uc           item.UseCase
	dates        *datemath.Parser
	exposeErrors bool
	now          func() time.Time
}

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase, dates *datemath.Parser, exposeErrors bool) *handler {
	return &handler{
		l:            l,
		uc:           uc,
		dates:        dates,
		exposeErrors: exposeErrors,
		now:          time.Now,
	}
}
