package mysql

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
	"pantry/internal/db"
	"pantry/internal/model"
)

func (s *Store) ListItems(ctx context.Context) ([]model.Item, error) {
	rows, err := s.queries.ListInventoryItems(ctx)
	if err != nil {
		s.log.Error("sql list inventory failed", zap.Error(err))
		return nil, err
	}

	result := make([]model.Item, 0, len(rows))
	for _, row := range rows {
		result = append(result, model.Item{
			Name:     row.Name,
			Quantity: fromNullInt64(row.Quantity),
		})
	}
	return result, nil
}

func (s *Store) UpsertItem(ctx context.Context, item model.Item) error {
	if err := s.queries.UpsertInventoryItem(ctx, db.UpsertInventoryItemParams{
		Name:     item.Name,
		Quantity: toNullInt64(item.Quantity),
	}); err != nil {
		s.log.Error("sql upsert inventory item failed",
			zap.String("name", item.Name),
			zap.Stringer("quantity", item.Quantity),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *Store) DeleteItem(ctx context.Context, name string) error {
	if err := s.queries.DeleteInventoryItem(ctx, name); err != nil {
		s.log.Error("sql delete inventory item failed", zap.String("name", name), zap.Error(err))
		return err
	}
	return nil
}

func toNullInt64(q model.Quantity) sql.NullInt64 {
	n, ok := q.Int64()
	return sql.NullInt64{Int64: n, Valid: ok}
}

func fromNullInt64(v sql.NullInt64) model.Quantity {
	if !v.Valid {
		return model.NaN()
	}
	return model.Count(v.Int64)
}
