package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"pantry/internal/model"
)

func (s *Store) ListItems(ctx context.Context) ([]model.Item, error) {
	rows, err := s.pool.Query(ctx, `SELECT name, quantity FROM inventory`)
	if err != nil {
		s.log.Error("postgres list inventory failed", zap.Error(err))
		return nil, err
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Item, error) {
		var item model.Item
		err := row.Scan(&item.Name, &item.Quantity)
		return item, err
	})
	if err != nil {
		s.log.Error("postgres scan inventory failed", zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (s *Store) UpsertItem(ctx context.Context, item model.Item) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO inventory (name, quantity) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET quantity = EXCLUDED.quantity`,
		item.Name, item.Quantity,
	)
	if err != nil {
		s.log.Error("postgres upsert inventory item failed",
			zap.String("name", item.Name),
			zap.Stringer("quantity", item.Quantity),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *Store) DeleteItem(ctx context.Context, name string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM inventory WHERE name = $1`, name); err != nil {
		s.log.Error("postgres delete inventory item failed", zap.String("name", name), zap.Error(err))
		return err
	}
	return nil
}
