package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pantry/internal/model"
)

func TestStoreUpsertAndList(t *testing.T) {
	ctx := context.Background()
	store := New(zap.NewNop())

	require.NoError(t, store.UpsertItem(ctx, model.Item{Name: "rice", Quantity: model.Count(5)}))
	require.NoError(t, store.UpsertItem(ctx, model.Item{Name: "Rice", Quantity: model.Count(1)}))
	require.NoError(t, store.UpsertItem(ctx, model.Item{Name: "flour", Quantity: model.NaN()}))

	items, err := store.ListItems(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Item{
		{Name: "rice", Quantity: model.Count(5)},
		{Name: "Rice", Quantity: model.Count(1)},
		{Name: "flour", Quantity: model.NaN()},
	}, items)
}

func TestStoreUpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	store := New(zap.NewNop())

	require.NoError(t, store.UpsertItem(ctx, model.Item{Name: "rice", Quantity: model.Count(5)}))
	require.NoError(t, store.UpsertItem(ctx, model.Item{Name: "sugar", Quantity: model.Count(1)}))
	require.NoError(t, store.UpsertItem(ctx, model.Item{Name: "rice", Quantity: model.Count(12)}))

	items, err := store.ListItems(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Item{
		{Name: "rice", Quantity: model.Count(12)},
		{Name: "sugar", Quantity: model.Count(1)},
	}, items)
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := New(zap.NewNop())
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, store.UpsertItem(ctx, model.Item{Name: name, Quantity: model.Count(1)}))
	}

	require.NoError(t, store.DeleteItem(ctx, "a"))
	require.NoError(t, store.DeleteItem(ctx, "missing"))
	require.NoError(t, store.UpsertItem(ctx, model.Item{Name: "c", Quantity: model.Count(9)}))

	items, err := store.ListItems(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Item{
		{Name: "b", Quantity: model.Count(1)},
		{Name: "c", Quantity: model.Count(9)},
	}, items)
}

func TestStoreListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := New(zap.NewNop())
	require.NoError(t, store.UpsertItem(ctx, model.Item{Name: "rice", Quantity: model.Count(5)}))

	items, err := store.ListItems(ctx)
	require.NoError(t, err)
	items[0].Quantity = model.Count(100)

	again, err := store.ListItems(ctx)
	require.NoError(t, err)
	require.Equal(t, model.Count(5), again[0].Quantity)
}
