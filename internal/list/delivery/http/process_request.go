package http

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"task-management/internal/model"
	pkgErrors "task-management/pkg/errors"
)

var errIDRequired = pkgErrors.NewBadRequestError("id is required")

// processCreateReq binds and validates the create list request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processPageReq binds the page query parameters.
func (h *handler) processPageReq(c *gin.Context) (pageReq, error) {
	var req pageReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processFilterReq binds the filter query parameters. Absent parameters impose no constraint.
func (h *handler) processFilterReq(c *gin.Context) (filterReq, error) {
	var req filterReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	if req.Priority != "" {
		p, err := model.ParsePriority(req.Priority)
		if err != nil {
			return req, err
		}
		req.filter.Priority = &p
	}

	now := h.now()
	for _, d := range []struct {
		name  string
		value string
		dst   **time.Time
	}{
		{"creationDate", req.CreationDate, &req.filter.CreationDate},
		{"finishDate", req.FinishDate, &req.filter.FinishDate},
	} {
		if d.value == "" {
			continue
		}
		t, err := h.dates.Parse(d.value, now)
		if err != nil {
			return req, pkgErrors.NewBadRequestError(fmt.Sprintf("%s: %v", d.name, err))
		}
		if err := model.ValidateDate(d.name, t); err != nil {
			return req, pkgErrors.NewBadRequestError(err.Error())
		}
		*d.dst = &t
	}

	if title, ok := c.GetQuery("title"); ok {
		req.filter.Title = &title
	}
	return req, nil
}

// processUpdateReq binds and validates the update list request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processDeleteReq binds the optional record body + URI param.
func (h *handler) processDeleteReq(c *gin.Context) (deleteReq, error) {
	var req deleteReq
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	if err := c.ShouldBindJSON(&req.Record); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}
