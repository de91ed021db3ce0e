package router

import (
	"greeting-api/internal/app/greeting"
	"greeting-api/internal/app/health"
	"greeting-api/internal/app/message"
	"greeting-api/internal/gateways/websocket"
	"greeting-api/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "greeting-api/docs"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(logger *zap.Logger, frontendURL string, exposeHeaders ...string) *Router {
	engine := gin.New()
	// PUT/PATCH without an id segment must answer 405, not 404.
	engine.HandleMethodNotAllowed = true
	engine.Use(middleware.CORSMiddleware(frontendURL, exposeHeaders...))
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(gin.Recovery())
	return &Router{Engine: engine}
}

func (r *Router) api() *gin.RouterGroup {
	return r.Engine.Group("/api")
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.api(), handler)
}

func (r *Router) RegisterGreetingRoutes(handler greeting.Handler) {
	greeting.RegisterRoutes(r.api(), handler)
}

func (r *Router) RegisterMessageRoutes(handler message.Handler) {
	message.RegisterRoutes(r.api(), handler)
}

func (r *Router) RegisterWebSocketRoutes(hub *websocket.Hub) {
	websocket.RegisterRoutes(r.Engine, hub)
}

func (r *Router) RegisterSwaggerRoutes() {
	r.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
