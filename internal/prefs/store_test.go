package prefs

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client)
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, 7, "suppliers", []string{"code", "name", "phone"}, 6))

	got, err := store.Get(ctx, 7, "suppliers")
	require.NoError(t, err)
	require.Equal(t, []string{"code", "name", "phone"}, got)
}

func TestGetMissingReturnsNil(t *testing.T) {
	store := newTestStore(t)
	got, err := store.Get(context.Background(), 1, "customers")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSaveEnforcesCap(t *testing.T) {
	store := newTestStore(t)
	err := store.Save(context.Background(), 1, "suppliers",
		[]string{"a", "b", "c", "d", "e", "f", "g"}, 6)
	require.ErrorIs(t, err, ErrTooManyColumns)
}

func TestSelectionsAreScopedPerUserAndResource(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, 1, "suppliers", []string{"code"}, 6))
	require.NoError(t, store.Save(ctx, 2, "suppliers", []string{"name"}, 6))
	require.NoError(t, store.Save(ctx, 1, "customers", []string{"email"}, 6))

	got, err := store.Get(ctx, 1, "suppliers")
	require.NoError(t, err)
	require.Equal(t, []string{"code"}, got)
}

func TestResetRestoresDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, 3, "orders", []string{"number"}, 7))
	require.NoError(t, store.Reset(ctx, 3, "orders"))

	got, err := store.Get(ctx, 3, "orders")
	require.NoError(t, err)
	require.Nil(t, got)
}
