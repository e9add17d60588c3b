package cartstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	empty, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, empty)

	items := []domain.CartItem{{ServiceID: "svc-a", Qty: 2}}
	require.NoError(t, store.Set(ctx, "u1", items))
	items[0].Qty = 99

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []domain.CartItem{{ServiceID: "svc-a", Qty: 2}}, got)

	other, err := store.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, store.Clear(ctx, "u1"))
	got, err = store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStoreExpires(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "u1", []domain.CartItem{{ServiceID: "svc-a", Qty: 1}}))

	now = now.Add(2 * time.Minute)
	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStoreCleanup(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "abandoned-1", []domain.CartItem{{ServiceID: "svc-a", Qty: 1}}))
	require.NoError(t, store.Set(ctx, "abandoned-2", []domain.CartItem{{ServiceID: "svc-b", Qty: 1}}))

	now = now.Add(2 * time.Minute)
	require.NoError(t, store.Set(ctx, "active", []domain.CartItem{{ServiceID: "svc-a", Qty: 3}}))

	assert.Equal(t, 2, store.Cleanup())
	assert.Len(t, store.entries, 1)
	assert.Equal(t, 0, store.Cleanup())

	got, err := store.Get(ctx, "active")
	require.NoError(t, err)
	assert.Equal(t, []domain.CartItem{{ServiceID: "svc-a", Qty: 3}}, got)
}

func TestMemoryStoreWithoutTTLKeepsEntries(t *testing.T) {
	store := NewMemoryStore(0)
	require.NoError(t, store.Set(context.Background(), "u1", []domain.CartItem{{ServiceID: "svc-a", Qty: 1}}))
	assert.Equal(t, 0, store.Cleanup())
}
