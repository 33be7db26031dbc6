package http

import (
	"github.com/gin-gonic/gin"

	"task-management/pkg/response"
)

// Create godoc
// @Summary     Create a list
// @Description Creates a list together with its nested items. Every title must be 6 to 20 characters.
// @Tags        Lists
// @Accept      json
// @Produce     json
// @Param       body body createReq true "List data"
// @Success     201  {object} listResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lists/createLists [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		h.handleError(c, err)
		return
	}

	response.Created(c, newListResp(output.List))
}

// Detail godoc
// @Summary     Get list detail
// @Description Returns a single list with its items.
// @Tags        Lists
// @Produce     json
// @Param       id path string true "List ID"
// @Success     200 {object} listResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lists/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		h.handleError(c, err)
		return
	}

	response.OK(c, newListResp(output.List))
}

// List godoc
// @Summary     List all lists
// @Description Returns a page of lists in storage order.
// @Tags        Lists
// @Produce     json
// @Param       page query int false "Zero-based page index (default: 0)"
// @Param       size query int false "Page size (default: 10, max: 100)"
// @Success     200 {object} pageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lists/all [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, h.newPageResp(output))
}

// Filter godoc
// @Summary     Filter lists
// @Description Returns a page of lists matching every supplied filter. creationDate and finishDate bound the creation date.
// @Tags        Lists
// @Produce     json
// @Param       priority     query string false "LOW, NORMAL or HIGH"
// @Param       creationDate query string false "Lower bound (RFC3339, 2006-01-02 or relative such as 'yesterday')"
// @Param       finishDate   query string false "Upper bound (same formats)"
// @Param       title        query string false "Case-sensitive substring"
// @Param       page         query int    false "Zero-based page index (default: 0)"
// @Param       size         query int    false "Page size (default: 10, max: 100)"
// @Success     200 {object} pageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lists/filters [GET]
func (h *handler) Filter(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFilterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Filter(ctx, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, h.newPageResp(output))
}

// Update godoc
// @Summary     Replace a list
// @Description Replaces every field of the list, including its items. Items sent with an id keep it; owned items left out are deleted.
// @Tags        Lists
// @Accept      json
// @Produce     json
// @Param       id   path string    true "List ID"
// @Param       body body updateReq true "Replacement list"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lists/putLists/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		h.handleError(c, err)
		return
	}

	response.OK(c, newListResp(output.List))
}

// DeleteByID godoc
// @Summary     Delete a list
// @Description Deletes the list and all of its items. Deleting a missing list succeeds.
// @Tags        Lists
// @Param       id path string true "List ID"
// @Success     204
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lists/delete/{id} [DELETE]
func (h *handler) DeleteByID(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	if err := h.uc.DeleteByID(ctx, id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

// Delete godoc
// @Summary     Delete a list by record
// @Description Deletes the stored list with the given id. The optional body must not name a different list.
// @Tags        Lists
// @Accept      json
// @Param       id   path string    true  "List ID"
// @Param       body body recordReq false "Caller's copy of the list"
// @Success     204
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lists/deleteLists/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeleteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}
