package redis

import (
	"context"

	"go.uber.org/zap"
	"pantry/internal/model"
)

func (s *Store) ListItems(ctx context.Context) ([]model.Item, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		s.log.Error("redis list inventory failed", zap.String("key", s.key), zap.Error(err))
		return nil, err
	}

	result := make([]model.Item, 0, len(fields))
	for name, raw := range fields {
		quantity, err := decodeQuantity(raw)
		if err != nil {
			s.log.Error("redis decode inventory item failed", zap.String("name", name), zap.Error(err))
			return nil, err
		}
		result = append(result, model.Item{Name: name, Quantity: quantity})
	}
	return result, nil
}

func (s *Store) UpsertItem(ctx context.Context, item model.Item) error {
	if err := s.client.HSet(ctx, s.key, item.Name, encodeQuantity(item.Quantity)).Err(); err != nil {
		s.log.Error("redis upsert inventory item failed",
			zap.String("key", s.key),
			zap.String("name", item.Name),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *Store) DeleteItem(ctx context.Context, name string) error {
	if err := s.client.HDel(ctx, s.key, name).Err(); err != nil {
		s.log.Error("redis delete inventory item failed", zap.String("key", s.key), zap.String("name", name), zap.Error(err))
		return err
	}
	return nil
}
