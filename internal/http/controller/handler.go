package controller

import (
	"go.uber.org/zap"
	"pantry/internal/config"
	"pantry/internal/queue"
	"pantry/internal/service/inventory"
	"pantry/internal/session"
	"pantry/internal/sse"
	"pantry/internal/view"
)

type Handler struct {
	cfg      *config.Config
	svc      *inventory.Service
	view     *view.View
	sessions *session.Store
	hub      *sse.Hub
	log      *zap.Logger
	pub      queue.Publisher
}

func NewHandler(cfg *config.Config, svc *inventory.Service, v *view.View, sessions *session.Store, hub *sse.Hub, logger *zap.Logger, publisher queue.Publisher) *Handler {
	return &Handler{cfg: cfg, svc: svc, view: v, sessions: sessions, hub: hub, log: logger, pub: publisher}
}
