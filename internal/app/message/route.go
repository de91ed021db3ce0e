package message

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, handler Handler) {
	messages := rg.Group("/messages")
	{
		messages.POST("", handler.Create)
		messages.GET("", handler.List)
		messages.GET("/:id", handler.Get)
		messages.PUT("/:id", handler.Replace)
		messages.PATCH("/:id", handler.Patch)
		messages.DELETE("/:id", handler.Delete)
	}
}
