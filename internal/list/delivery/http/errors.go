package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-management/internal/list"
	"task-management/internal/model"
	pkgErrors "task-management/pkg/errors"
	"task-management/pkg/response"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Returns nil for errors with no client-facing meaning.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, list.ErrListNotFound),
		errors.Is(err, list.ErrListNotFoundToDelete):
		return pkgErrors.NewNotFoundError(err.Error())
	case errors.Is(err, model.ErrInvalidTitle),
		errors.Is(err, model.ErrInvalidPriority),
		errors.Is(err, model.ErrInvalidDate),
		errors.Is(err, list.ErrItemNotInList),
		errors.Is(err, list.ErrDuplicateItem),
		errors.Is(err, list.ErrIDMismatch):
		return pkgErrors.NewBadRequestError(err.Error())
	default:
		return nil
	}
}

// handleError renders a mapped domain error, or a 500 for anything else.
func (h *handler) handleError(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped)
		return
	}
	h.l.Errorf(c.Request.Context(), "list.delivery.http unexpected: %v", err)
	response.InternalError(c, err, h.exposeErrors)
}
