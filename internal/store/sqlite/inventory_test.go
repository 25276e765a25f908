package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pantry/internal/model"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "pantry.db")
	store, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestSQLiteStoreCRUD(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	items, err := store.ListItems(ctx)
	require.NoError(t, err)
	require.Empty(t, items)

	require.NoError(t, store.UpsertItem(ctx, model.Item{Name: "rice", Quantity: model.Count(5)}))
	require.NoError(t, store.UpsertItem(ctx, model.Item{Name: "Rice", Quantity: model.Count(2)}))
	require.NoError(t, store.UpsertItem(ctx, model.Item{Name: "flour", Quantity: model.NaN()}))
	require.NoError(t, store.UpsertItem(ctx, model.Item{Name: "rice", Quantity: model.Count(12)}))

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

func TestSQLiteStorePersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	store, path := openTestStore(t)
	require.NoError(t, store.UpsertItem(ctx, model.Item{Name: "sugar", Quantity: model.Count(1)}))
	require.NoError(t, store.Close())

	reopened, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	items, err := reopened.ListItems(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Item{{Name: "sugar", Quantity: model.Count(1)}}, items)
}

func TestSQLiteStoreClosedFails(t *testing.T) {
	store, _ := openTestStore(t)
	require.NoError(t, store.Close())

	_, err := store.ListItems(context.Background())
	require.Error(t, err)
}
