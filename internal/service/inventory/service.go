// Package inventory is the store client of the tracker: list, upsert and
// remove items in one collection. Every failure is returned as a
// *domain.StoreError.
package inventory

import (
	"context"
	"time"

	"go.uber.org/zap"
	"pantry/internal/config"
	"pantry/internal/domain"
	"pantry/internal/metrics"
	"pantry/internal/model"
	"pantry/internal/repository"
	"pantry/internal/sse"
)

const (
	opList   = "list"
	opUpsert = "upsert"
	opRemove = "remove"
)

type Service struct {
	store      repository.InventoryRepository
	hub        *sse.Hub
	metrics    *metrics.StoreMetrics
	collection string
	log        *zap.Logger
}

func NewService(cfg *config.Config, store repository.InventoryRepository, hub *sse.Hub, m *metrics.StoreMetrics, logger *zap.Logger) *Service {
	return &Service{store: store, hub: hub, metrics: m, collection: cfg.Collection, log: logger}
}

func (s *Service) Collection() string {
	return s.collection
}

// ListAll returns every item in the collection in backend order.
func (s *Service) ListAll(ctx context.Context) ([]model.Item, error) {
	start := time.Now()
	items, err := s.store.ListItems(ctx)
	s.metrics.Observe(opList, start, err)
	if err != nil {
		s.log.Error("store list items failed", zap.String("collection", s.collection), zap.Error(err))
		return nil, &domain.StoreError{Op: opList, Err: err}
	}
	return items, nil
}

// Upsert coerces quantityText and writes the item, replacing any existing
// item with the same name.
func (s *Service) Upsert(ctx context.Context, name, quantityText string) error {
	if name == "" {
		return &domain.StoreError{Op: opUpsert, Err: domain.ErrEmptyName}
	}
	item := model.Item{Name: name, Quantity: domain.ParseQuantity(quantityText)}

	start := time.Now()
	err := s.store.UpsertItem(ctx, item)
	s.metrics.Observe(opUpsert, start, err)
	if err != nil {
		s.log.Error("store upsert item failed",
			zap.String("collection", s.collection),
			zap.String("name", name),
			zap.Stringer("quantity", item.Quantity),
			zap.Error(err),
		)
		return &domain.StoreError{Op: opUpsert, Name: name, Err: err}
	}
	s.announce(domain.OpUpsert, name)
	return nil
}

// Remove deletes the named item. Removing a missing item succeeds.
func (s *Service) Remove(ctx context.Context, name string) error {
	if name == "" {
		return &domain.StoreError{Op: opRemove, Err: domain.ErrEmptyName}
	}

	start := time.Now()
	err := s.store.DeleteItem(ctx, name)
	s.metrics.Observe(opRemove, start, err)
	if err != nil {
		s.log.Error("store remove item failed", zap.String("collection", s.collection), zap.String("name", name), zap.Error(err))
		return &domain.StoreError{Op: opRemove, Name: name, Err: err}
	}
	s.announce(domain.OpRemove, name)
	return nil
}

func (s *Service) announce(op, name string) {
	event := model.ChangeEvent{Collection: s.collection, Op: op, Name: name, At: time.Now().UTC()}
	if !s.hub.Broadcast(event) {
		s.log.Warn("change event dropped", zap.String("op", op), zap.String("name", name))
	}
}
