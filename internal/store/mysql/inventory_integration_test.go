//go:build integration

package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pantry/internal/model"
)

func TestMySQLStoreIntegration(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, startMySQL(t), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	for _, item := range []model.Item{
		{Name: "rice", Quantity: model.Count(5)},
		{Name: "Rice", Quantity: model.Count(2)},
		{Name: "flour", Quantity: model.NaN()},
		{Name: "rice", Quantity: model.Count(12)},
		{Name: "rice ", Quantity: model.Count(1)},
	} {
		require.NoError(t, store.UpsertItem(ctx, item))
	}

	items, err := store.ListItems(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []model.Item{
		{Name: "rice", Quantity: model.Count(12)},
		{Name: "rice ", Quantity: model.Count(1)},
		{Name: "Rice", Quantity: model.Count(2)},
		{Name: "flour", Quantity: model.NaN()},
	}, items)

	require.NoError(t, store.DeleteItem(ctx, "rice "))

	items, err = store.ListItems(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []model.Item{
		{Name: "rice", Quantity: model.Count(12)},
		{Name: "Rice", Quantity: model.Count(2)},
		{Name: "flour", Quantity: model.NaN()},
	}, items)

	require.NoError(t, store.DeleteItem(ctx, "rice"))
	require.NoError(t, store.DeleteItem(ctx, "missing"))

	items, err = store.ListItems(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []model.Item{
		{Name: "Rice", Quantity: model.Count(2)},
		{Name: "flour", Quantity: model.NaN()},
	}, items)
}
