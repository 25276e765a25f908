package firestore

import (
	"context"
	"math"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pantry/internal/model"
)

func TestFieldMapping(t *testing.T) {
	require.Equal(t, int64(5), fieldValue(model.Count(5)))
	require.True(t, math.IsNaN(fieldValue(model.NaN()).(float64)))

	require.Equal(t, model.Count(5), quantityFromField(int64(5)))
	require.Equal(t, model.Count(3), quantityFromField(3.7))
	require.True(t, quantityFromField(math.NaN()).IsNaN())
	require.True(t, quantityFromField(math.Inf(1)).IsNaN())
	require.True(t, quantityFromField(nil).IsNaN())
	require.True(t, quantityFromField("5").IsNaN())
}

func TestDialRequiresProject(t *testing.T) {
	_, err := Dial(context.Background(), "", "")
	require.Error(t, err)
}

// Runs against the Firestore emulator when FIRESTORE_EMULATOR_HOST is set.
func TestFirestoreStoreEmulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	ctx := context.Background()
	client, err := Dial(ctx, "pantry-test", "")
	require.NoError(t, err)
	store := New(client, "inventory-"+uuid.NewString(), zap.NewNop())
	defer store.Close()

	require.NoError(t, store.UpsertItem(ctx, model.Item{Name: "rice", Quantity: model.Count(5)}))
	require.NoError(t, store.UpsertItem(ctx, model.Item{Name: "flour", Quantity: model.NaN()}))
	require.NoError(t, store.UpsertItem(ctx, model.Item{Name: "rice", Quantity: model.Count(12)}))

	items, err := store.ListItems(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []model.Item{
		{Name: "rice", Quantity: model.Count(12)},
		{Name: "flour", Quantity: model.NaN()},
	}, items)

	require.NoError(t, store.DeleteItem(ctx, "rice"))
	require.NoError(t, store.DeleteItem(ctx, "missing"))

	items, err = store.ListItems(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Item{{Name: "flour", Quantity: model.NaN()}}, items)
}
