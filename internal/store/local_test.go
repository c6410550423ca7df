package store_test

import (
	"context"
	"testing"

	"github.com/esenmoda/esen/internal"
	"github.com/esenmoda/esen/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_SaveLoadRoundTrip(t *testing.T) {
	s, err := store.NewLocal(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	err = s.Save(ctx, store.SlotCoupons, []byte(`[{"code":"ESEN10"}]`))
	require.NoError(t, err)

	record, err := s.Load(ctx, store.SlotCoupons)
	require.NoError(t, err)
	assert.Equal(t, `[{"code":"ESEN10"}]`, string(record))
}

func TestLocal_LoadMissingSlot(t *testing.T) {
	s, err := store.NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = s.Load(context.Background(), store.SlotOrders)
	assert.Error(t, err)
	assert.True(t, store.IsNotFound(err), "missing slot should report not found")
}

func TestLocal_SaveReplacesRecord(t *testing.T) {
	s, err := store.NewLocal(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, store.SlotShippingPolicy, []byte(`{"base_cost_cents":600}`)))
	require.NoError(t, s.Save(ctx, store.SlotShippingPolicy, []byte(`{"base_cost_cents":800}`)))

	record, err := s.Load(ctx, store.SlotShippingPolicy)
	require.NoError(t, err)
	assert.Equal(t, `{"base_cost_cents":800}`, string(record))
}

func TestLocal_DeleteIsIdempotent(t *testing.T) {
	s, err := store.NewLocal(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, store.SlotFavorites, []byte(`[1,5]`)))
	require.NoError(t, s.Delete(ctx, store.SlotFavorites))
	require.NoError(t, s.Delete(ctx, store.SlotFavorites))

	exists, err := s.Exists(ctx, store.SlotFavorites)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemory_RecordsAreCopied(t *testing.T) {
	s := store.NewMemory()
	ctx := context.Background()

	record := []byte(`{"id":"1"}`)
	require.NoError(t, s.Save(ctx, store.SlotCurrentUser, record))

	// Mutating the caller's slice must not affect the stored record.
	record[2] = 'x'

	loaded, err := s.Load(ctx, store.SlotCurrentUser)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, string(loaded))
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := store.New(internal.StoreConfig{Provider: "redis"})
	assert.Error(t, err)
}
