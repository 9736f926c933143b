package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekit/lorekit/pkg/session"
)

func TestCachedStore_FindRole(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	universeID := uuid.New()

	inner := session.NewMemoryStore()
	inner.Add(session.Membership{UserID: userID, UniverseID: universeID, Role: "role_player", CreatedAt: time.Now()})

	cache := session.NewInMemoryCache()
	t.Cleanup(func() { _ = cache.Close() })
	store := session.NewCachedStore(inner, cache, time.Minute)

	role, err := store.FindRole(ctx, userID, universeID)
	require.NoError(t, err)
	assert.Equal(t, "role_player", role)

	// The cached value keeps serving even after the underlying role changes.
	inner.Add(session.Membership{UserID: userID, UniverseID: universeID, Role: "game_master", CreatedAt: time.Now()})

	role, err = store.FindRole(ctx, userID, universeID)
	require.NoError(t, err)
	assert.Equal(t, "role_player", role)

	// Invalidation exposes the new role.
	store.Invalidate(ctx, userID, universeID)

	role, err = store.FindRole(ctx, userID, universeID)
	require.NoError(t, err)
	assert.Equal(t, "game_master", role)
}

func TestCachedStore_MissesAreNotCached(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	universeID := uuid.New()

	inner := session.NewMemoryStore()
	cache := session.NewInMemoryCache()
	t.Cleanup(func() { _ = cache.Close() })
	store := session.NewCachedStore(inner, cache, time.Minute)

	_, err := store.FindRole(ctx, userID, universeID)
	assert.ErrorIs(t, err, session.ErrMembershipNotFound)

	// Joining a universe becomes visible immediately.
	inner.Add(session.Membership{UserID: userID, UniverseID: universeID, Role: "spectator", CreatedAt: time.Now()})

	role, err := store.FindRole(ctx, userID, universeID)
	require.NoError(t, err)
	assert.Equal(t, "spectator", role)
}

func TestCachedStore_ListBypassesCache(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	universeID := uuid.New()

	inner := session.NewMemoryStore()
	cache := session.NewInMemoryCache()
	t.Cleanup(func() { _ = cache.Close() })
	store := session.NewCachedStore(inner, cache, time.Minute)

	list, err := store.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, list)

	inner.Add(session.Membership{UserID: userID, UniverseID: universeID, Role: "spectator", CreatedAt: time.Now()})

	list, err = store.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestInMemoryCache_TTL(t *testing.T) {
	ctx := context.Background()
	cache := session.NewInMemoryCache()
	t.Cleanup(func() { _ = cache.Close() })

	cache.Set(ctx, "k", "spectator", 10*time.Millisecond)

	role, ok := cache.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "spectator", role)

	time.Sleep(20 * time.Millisecond)

	_, ok = cache.Get(ctx, "k")
	assert.False(t, ok)
}
