package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"pantry/internal/domain"
	"pantry/internal/http/dto"
	"pantry/internal/http/resp"
	"pantry/internal/queue"
)

func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Code: resp.CodeStoreError, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListItemsResponse{Items: domain.Search(items, c.Query("search"))})
}

func (h *Handler) UpsertItem(c *gin.Context) {
	name := c.Param("name")
	var req dto.UpsertItemRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "invalid json"})
		return
	}
	if err := h.svc.Upsert(c.Request.Context(), name, string(req.Quantity)); err != nil {
		if errors.Is(err, domain.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "name is required"})
			return
		}
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Code: resp.CodeStoreError, Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteItem(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), c.Param("name")); err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Code: resp.CodeStoreError, Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) PublishCommand(c *gin.Context) {
	var req dto.PublishCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "invalid json"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: err.Error()})
		return
	}

	payload, err := json.Marshal(queue.Command{Op: req.Op, Name: req.Name, Quantity: string(req.Quantity)})
	if err != nil {
		h.log.Error("publish payload marshal failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "failed to publish command"})
		return
	}

	prefix := h.cfg.RabbitPublishPrefix
	if prefix == "" {
		prefix = "inventory"
	}
	routingKey := prefix + "." + req.Op
	if err := h.pub.Publish(c.Request.Context(), payload, routingKey); err != nil {
		h.log.Error("publish command failed",
			zap.String("op", req.Op),
			zap.String("name", req.Name),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "failed to publish command"})
		return
	}

	c.JSON(http.StatusAccepted, dto.StatusResponse{Code: resp.CodeQueued, Message: "queued"})
}
