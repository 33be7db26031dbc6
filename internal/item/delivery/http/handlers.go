package http

import (
	"github.com/gin-gonic/gin"

	"task-management/pkg/response"
)

// Create godoc
// @Summary     Create an item
// @Description Creates a standalone item, or appends it to the list given by listId. The title must be 6 to 20 characters.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       listId query string    false "Owning list ID"
// @Param       body   body  createReq true  "Item data"
// @Success     201 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "List Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/createItems [POST]
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

	response.Created(c, newItemResp(output.Item))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID.
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id} [GET]
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

	response.OK(c, newItemResp(output.Item))
}

// List godoc
// @Summary     List all items
// @Description Returns a page of items, standalone and owned, in storage order.
// @Tags        Items
// @Produce     json
// @Param       page query int false "Zero-based page index (default: 0)"
// @Param       size query int false "Page size (default: 10, max: 100)"
// @Success     200 {object} pageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/all [GET]
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

// ListByList godoc
// @Summary     List the items of a list
// @Description Returns a page of one list's items in sequence order.
// @Tags        Items
// @Produce     json
// @Param       listId path  string true  "List ID"
// @Param       page   query int    false "Zero-based page index (default: 0)"
// @Param       size   query int    false "Page size (default: 10, max: 100)"
// @Success     200 {object} pageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "List Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/listItems/{listId} [GET]
func (h *handler) ListByList(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListByListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListByList(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ListByList: %v", err)
		h.handleError(c, err)
		return
	}

	response.OK(c, h.newPageResp(output))
}

// Filter godoc
// @Summary     Filter items
// @Description Returns a page of items matching every supplied filter. creationDate and finishDate bound the creation date.
// @Tags        Items
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
// @Router      /api/v1/items/filters [GET]
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
// @Summary     Replace an item
// @Description Replaces every field of the item. The owning list does not change.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Item ID"
// @Param       body body updateReq true "Replacement item"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/putItems/{id} [PUT]
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

	response.OK(c, newItemResp(output.Item))
}

// DeleteByID godoc
// @Summary     Delete an item
// @Description Deletes the item, removing it from its list. Deleting a missing item succeeds.
// @Tags        Items
// @Param       id path string true "Item ID"
// @Success     204
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/delete/{id} [DELETE]
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
// @Summary     Delete an item by record
// @Description Deletes the stored item with the given id. The optional body must not name a different item.
// @Tags        Items
// @Accept      json
// @Param       id   path string    true  "Item ID"
// @Param       body body recordReq false "Caller's copy of the item"
// @Success     204
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/deleteItems/{id} [DELETE]
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
