package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "task-management/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// NoContent sends 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response. An *errors.HTTPError keeps its own status,
// anything else is a 400.
func Error(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		status = httpErr.StatusCode
	}

	c.JSON(status, NewErrorResp(status, err.Error()))
}

// InternalError sends 500. When expose is false the message is replaced by DefaultErrorMessage.
func InternalError(c *gin.Context, err error, expose bool) {
	msg := DefaultErrorMessage
	if expose && err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, NewErrorResp(InternalServerErrorCode, msg))
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, NewErrorResp(TooManyRequestsCode, "Too Many Requests"))
}
