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

func TestMemoryStore_FindRole(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	userID := uuid.New()
	universeID := uuid.New()

	_, err := store.FindRole(ctx, userID, universeID)
	assert.ErrorIs(t, err, session.ErrMembershipNotFound)

	store.Add(session.Membership{UserID: userID, UniverseID: universeID, Role: "role_player", CreatedAt: time.Now()})

	role, err := store.FindRole(ctx, userID, universeID)
	require.NoError(t, err)
	assert.Equal(t, "role_player", role)

	// Re-adding replaces the membership role.
	store.Add(session.Membership{UserID: userID, UniverseID: universeID, Role: "game_master", CreatedAt: time.Now()})

	role, err = store.FindRole(ctx, userID, universeID)
	require.NoError(t, err)
	assert.Equal(t, "game_master", role)

	store.Remove(userID, universeID)
	_, err = store.FindRole(ctx, userID, universeID)
	assert.ErrorIs(t, err, session.ErrMembershipNotFound)
}

func TestMemoryStore_ListByUserOrdering(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	userID := uuid.New()

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	second := uuid.New()
	first := uuid.New()

	store.Add(session.Membership{UserID: userID, UniverseID: second, Role: "spectator", CreatedAt: base.Add(time.Minute)})
	store.Add(session.Membership{UserID: userID, UniverseID: first, Role: "game_master", CreatedAt: base})

	list, err := store.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first, list[0].UniverseID)
	assert.Equal(t, second, list[1].UniverseID)

	// A user with no memberships lists empty, not an error.
	list, err = store.ListByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, list)
}
