package greeting

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.POST("/greeting", handler.Create)
	rg.GET("/greetings", handler.List)
	rg.GET("/greeting/:id", handler.Get)
	rg.PUT("/greeting/:id", handler.Replace)
	rg.PATCH("/greeting/:id", handler.Patch)
	rg.DELETE("/greeting/:id", handler.Delete)
}
