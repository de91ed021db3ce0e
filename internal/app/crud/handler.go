package crud

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const MergePatchJSON = "application/merge-patch+json"

type Handler interface {
	Create(c *gin.Context)
	Replace(c *gin.Context)
	Patch(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Delete(c *gin.Context)
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Entity string `json:"entity,omitempty"`
	Key    string `json:"key,omitempty"`
}

type handler[T any, PT Model[T]] struct {
	service Service[T]
	alerts  Alerts
	logger  *zap.SugaredLogger
}

func NewHandler[T any, PT Model[T]](service Service[T], alerts Alerts, logger *zap.Logger) Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &handler[T, PT]{
		service: service,
		alerts:  alerts,
		logger:  logger.Sugar().With("entity", service.Name()),
	}
}

func (h *handler[T, PT]) Create(c *gin.Context) {
	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	h.logger.Debugw("REST request to save", "body", &entity)

	result, err := h.service.Create(c.Request.Context(), &entity)
	if err != nil {
		h.fail(c, err)
		return
	}

	id := PT(result).GetID()
	c.Header("Location", strings.TrimSuffix(c.Request.URL.Path, "/")+"/"+strconv.FormatUint(id, 10))
	h.alerts.Created(c, h.service.Name(), id)
	c.JSON(http.StatusCreated, result)
}

func (h *handler[T, PT]) Replace(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	h.logger.Debugw("REST request to update", "id", id, "body", &entity)

	result, err := h.service.Replace(c.Request.Context(), id, &entity)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.alerts.Updated(c, h.service.Name(), id)
	c.JSON(http.StatusOK, result)
}

func (h *handler[T, PT]) Patch(c *gin.Context) {
	if ct := c.ContentType(); ct != gin.MIMEJSON && ct != MergePatchJSON {
		c.JSON(http.StatusUnsupportedMediaType, ErrorResponse{Error: fmt.Sprintf("unsupported content type %q", ct)})
		return
	}

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var patch T
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	h.logger.Debugw("REST request to partial update", "id", id, "body", &patch)

	result, err := h.service.MergePatch(c.Request.Context(), id, &patch)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.alerts.Updated(c, h.service.Name(), id)
	c.JSON(http.StatusOK, result)
}

func (h *handler[T, PT]) List(c *gin.Context) {
	h.logger.Debugw("REST request to get all")

	entities, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entities)
}

func (h *handler[T, PT]) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	h.logger.Debugw("REST request to get", "id", id)

	entity, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

func (h *handler[T, PT]) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	h.logger.Debugw("REST request to delete", "id", id)

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	h.alerts.Deleted(c, h.service.Name(), id)
	c.Status(http.StatusNoContent)
}

func (h *handler[T, PT]) pathID(c *gin.Context) (uint64, bool) {
	// Identifiers are stored as signed bigints.
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + h.service.Name() + " ID"})
		return 0, false
	}
	return id, true
}

func (h *handler[T, PT]) fail(c *gin.Context, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		h.alerts.Failure(c, vErr.Entity, vErr.Key)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: vErr.Message, Entity: vErr.Entity, Key: vErr.Key})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: h.service.Name() + " not found"})
	default:
		h.logger.Errorw("Request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
