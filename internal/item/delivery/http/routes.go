package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mws ...gin.HandlerFunc) {
	items := rg.Group("/items", mws...)
	{
		items.GET("/all", h.List)
		items.GET("/filters", h.Filter)
		items.GET("/listItems/:listId", h.ListByList)
		items.POST("/createItems", h.Create)
		items.PUT("/putItems/:id", h.Update)
		items.DELETE("/delete/:id", h.DeleteByID)
		items.DELETE("/deleteItems/:id", h.Delete)
		items.GET("/:id", h.Detail)
	}
}
