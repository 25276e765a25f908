package firestore

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"pantry/internal/model"
)

func (s *Store) ListItems(ctx context.Context) ([]model.Item, error) {
	docs, err := s.client.Collection(s.collection).Documents(ctx).GetAll()
	if err != nil {
		s.log.Error("firestore list inventory failed", zap.String("collection", s.collection), zap.Error(err))
		return nil, err
	}

	result := make([]model.Item, 0, len(docs))
	for _, doc := range docs {
		result = append(result, model.Item{
			Name:     doc.Ref.ID,
			Quantity: quantityFromField(doc.Data()[quantityField]),
		})
	}
	return result, nil
}

func (s *Store) UpsertItem(ctx context.Context, item model.Item) error {
	ref := s.client.Collection(s.collection).Doc(item.Name)
	if ref == nil {
		return fmt.Errorf("firestore: invalid document id %q", item.Name)
	}
	if _, err := ref.Set(ctx, map[string]any{quantityField: fieldValue(item.Quantity)}); err != nil {
		s.log.Error("firestore upsert inventory item failed",
			zap.String("collection", s.collection),
			zap.String("name", item.Name),
			zap.Stringer("quantity", item.Quantity),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *Store) DeleteItem(ctx context.Context, name string) error {
	ref := s.client.Collection(s.collection).Doc(name)
	if ref == nil {
		return fmt.Errorf("firestore: invalid document id %q", name)
	}
	if _, err := ref.Delete(ctx); err != nil {
		s.log.Error("firestore delete inventory item failed",
			zap.String("collection", s.collection),
			zap.String("name", name),
			zap.Error(err),
		)
		return err
	}
	return nil
}
