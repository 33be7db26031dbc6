package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mws ...gin.HandlerFunc) {
	lists := rg.Group("/lists", mws...)
	{
		lists.GET("/all", h.List)
		lists.GET("/filters", h.Filter)
		lists.POST("/createLists", h.Create)
		lists.PUT("/putLists/:id", h.Update)
		lists.DELETE("/delete/:id", h.DeleteByID)
		lists.DELETE("/deleteLists/:id", h.Delete)
		lists.GET("/:id", h.Detail)
	}
}
