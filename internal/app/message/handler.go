package message

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
	return &handler{resource: crud.NewHandler[Message](service, alerts, logger)}
}

// @Summary Create a message
// @Tags Message
// @Accept json
// @Produce json
// @Param body body Message true "Message without id"
// @Success 201 {object} Message
// @Failure 400 {object} crud.ErrorResponse "Validation failure"
// @Router /api/messages [post]
func (h *handler) Create(c *gin.Context) {
	h.resource.Create(c)
}

// @Summary Replace a message
// @Tags Message
// @Accept json
// @Produce json
// @Param id path int true "Message ID"
// @Param body body Message true "Message with the same id as the path"
// @Success 200 {object} Message
// @Failure 400 {object} crud.ErrorResponse "Validation failure"
// @Router /api/messages/{id} [put]
func (h *handler) Replace(c *gin.Context) {
	h.resource.Replace(c)
}

// @Summary Merge-patch a message; null fields are left unchanged
// @Tags Message
// @Accept json,application/merge-patch+json
// @Produce json
// @Param id path int true "Message ID"
// @Param body body Message true "Fields to change, with the same id as the path"
// @Success 200 {object} Message
// @Failure 400 {object} crud.ErrorResponse "Validation failure"
// @Failure 404 {object} crud.ErrorResponse "Deleted concurrently"
// @Failure 415 {object} crud.ErrorResponse "Unsupported content type"
// @Router /api/messages/{id} [patch]
func (h *handler) Patch(c *gin.Context) {
	h.resource.Patch(c)
}

// @Summary List all messages
// @Tags Message
// @Produce json
// @Success 200 {array} Message
// @Router /api/messages [get]
func (h *handler) List(c *gin.Context) {
	h.resource.List(c)
}

// @Summary Get a message
// @Tags Message
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} Message
// @Failure 404 {object} crud.ErrorResponse
// @Router /api/messages/{id} [get]
func (h *handler) Get(c *gin.Context) {
	h.resource.Get(c)
}

// @Summary Delete a message; succeeds when absent
// @Tags Message
// @Param id path int true "Message ID"
// @Success 204 "No Content"
// @Router /api/messages/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	h.resource.Delete(c)
}
