package sqlite

import (
	"context"

	"go.uber.org/zap"
	"pantry/internal/model"
)

func (s *Store) ListItems(ctx context.Context) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, quantity FROM inventory`)
	if err != nil {
		s.log.Error("sqlite list inventory failed", zap.Error(err))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result []model.Item
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.Name, &item.Quantity); err != nil {
			s.log.Error("sqlite scan inventory failed", zap.Error(err))
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		s.log.Error("sqlite iterate inventory failed", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *Store) UpsertItem(ctx context.Context, item model.Item) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO inventory (name, quantity) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET quantity = excluded.quantity`,
		item.Name, item.Quantity,
	)
	if err != nil {
		s.log.Error("sqlite upsert inventory item failed",
			zap.String("name", item.Name),
			zap.Stringer("quantity", item.Quantity),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *Store) DeleteItem(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM inventory WHERE name = ?`, name); err != nil {
		s.log.Error("sqlite delete inventory item failed", zap.String("name", name), zap.Error(err))
		return err
	}
	return nil
}
