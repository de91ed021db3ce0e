package greeting

import (
	"greeting-api/internal/app/crud"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler = crud.Handler

type handler struct {
	resource crud.Handler
}

func NewHandler(service Service, alerts crud.Alerts, logger *zap.Logger) Handler {
	return &handler{resource: crud.NewHandler[Greeting](service, alerts, logger)}
}

// @Summary Create a greeting
// @Tags Greeting
// @Accept json
// @Produce json
// @Param body body Greeting true "Greeting without id"
// @Success 201 {object} Greeting
// @Failure 400 {object} crud.ErrorResponse "Validation failure"
// @Router /api/greeting [post]
func (h *handler) Create(c *gin.Context) {
	h.resource.Create(c)
}

// @Summary Replace a greeting
// @Tags Greeting
// @Accept json
// @Produce json
// @Param id path int true "Greeting ID"
// @Param body body Greeting true "Greeting with the same id as the path"
// @Success 200 {object} Greeting
// @Failure 400 {object} crud.ErrorResponse "Validation failure"
// @Router /api/greeting/{id} [put]
func (h *handler) Replace(c *gin.Context) {
	h.resource.Replace(c)
}

// @Summary Merge-patch a greeting; null fields are left unchanged
// @Tags Greeting
// @Accept json,application/merge-patch+json
// @Produce json
// @Param id path int true "Greeting ID"
// @Param body body Greeting true "Fields to change, with the same id as the path"
// @Success 200 {object} Greeting
// @Failure 400 {object} crud.ErrorResponse "Validation failure"
// @Failure 404 {object} crud.ErrorResponse "Deleted concurrently"
// @Failure 415 {object} crud.ErrorResponse "Unsupported content type"
// @Router /api/greeting/{id} [patch]
func (h *handler) Patch(c *gin.Context) {
	h.resource.Patch(c)
}

// @Summary List all greetings
// @Tags Greeting
// @Produce json
// @Success 200 {array} Greeting
// @Router /api/greetings [get]
func (h *handler) List(c *gin.Context) {
	h.resource.List(c)
}

// @Summary Get a greeting
// @Tags Greeting
// @Produce json
// @Param id path int true "Greeting ID"
// @Success 200 {object} Greeting
// @Failure 404 {object} crud.ErrorResponse
// @Router /api/greeting/{id} [get]
func (h *handler) Get(c *gin.Context) {
	h.resource.Get(c)
}

// @Summary Delete a greeting; succeeds when absent
// @Tags Greeting
// @Param id path int true "Greeting ID"
// @Success 204 "No Content"
// @Router /api/greeting/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	h.resource.Delete(c)
}
