package session_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekit/lorekit/pkg/rbac"
	"github.com/lorekit/lorekit/pkg/session"
)

func newTestResolver(store session.MembershipStore) (*session.Resolver, *bytes.Buffer) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return session.NewResolver(store, session.WithLogger(log)), &buf
}

func TestResolver_NilIdentity(t *testing.T) {
	resolver, _ := newTestResolver(session.NewMemoryStore())

	s := resolver.Resolve(context.Background(), nil)
	assert.Nil(t, s)
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.HasUniverse())
}

func TestResolver_GlobalRole(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		stored   string
		want     rbac.RoleID
		warnsLog bool
	}{
		{name: "administrator kept", stored: "administrator", want: rbac.RoleAdministrator},
		{name: "default kept", stored: "default", want: rbac.RoleDefault},
		{name: "unknown degrades to default", stored: "superuser", want: rbac.RoleDefault, warnsLog: true},
		{name: "empty degrades to default", stored: "", want: rbac.RoleDefault, warnsLog: true},
		{name: "universe role does not leak into global", stored: "game_master", want: rbac.RoleDefault, warnsLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, buf := newTestResolver(session.NewMemoryStore())

			s := resolver.Resolve(context.Background(), &session.Identity{ID: userID, GlobalRole: tt.stored})
			require.NotNil(t, s)
			assert.Equal(t, tt.want, s.GlobalRole)
			assert.True(t, s.IsAuthenticated())

			if tt.warnsLog {
				assert.Contains(t, buf.String(), "unrecognized global role")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestResolver_OverrideTakesPrecedence(t *testing.T) {
	userID := uuid.New()
	overrideID := uuid.New()
	storedID := uuid.New()

	store := session.NewMemoryStore()
	store.Add(session.Membership{UserID: userID, UniverseID: storedID, Role: "spectator", CreatedAt: time.Now()})

	resolver, _ := newTestResolver(store)

	s := resolver.Resolve(context.Background(), &session.Identity{ID: userID, GlobalRole: "default"},
		session.WithUniverse(overrideID, "game_master"),
		session.WithStoredUniverse(storedID))

	require.True(t, s.HasUniverse())
	assert.Equal(t, overrideID, s.Universe.ID)
	assert.Equal(t, rbac.RoleGameMaster, s.Universe.Role)
}

func TestResolver_OverrideWithUnknownRole(t *testing.T) {
	userID := uuid.New()
	universeID := uuid.New()

	resolver, buf := newTestResolver(session.NewMemoryStore())

	s := resolver.Resolve(context.Background(), &session.Identity{ID: userID, GlobalRole: "default"},
		session.WithUniverse(universeID, "ex-game_master"))

	require.True(t, s.HasUniverse())
	assert.Equal(t, rbac.RoleSpectator, s.Universe.Role)
	assert.Contains(t, buf.String(), "unrecognized universe role")
}

func TestResolver_StoredUniverse(t *testing.T) {
	userID := uuid.New()
	universeID := uuid.New()

	store := session.NewMemoryStore()
	store.Add(session.Membership{UserID: userID, UniverseID: universeID, Role: "role_player", CreatedAt: time.Now()})

	resolver, buf := newTestResolver(store)

	s := resolver.Resolve(context.Background(), &session.Identity{ID: userID, GlobalRole: "default"},
		session.WithStoredUniverse(universeID))

	require.True(t, s.HasUniverse())
	assert.Equal(t, universeID, s.Universe.ID)
	assert.Equal(t, rbac.RoleRolePlayer, s.Universe.Role)
	assert.Empty(t, buf.String())
}

func TestResolver_StoredUniverseWithoutMembership(t *testing.T) {
	userID := uuid.New()
	universeID := uuid.New()

	resolver, buf := newTestResolver(session.NewMemoryStore())

	s := resolver.Resolve(context.Background(), &session.Identity{ID: userID, GlobalRole: "default"},
		session.WithStoredUniverse(universeID))

	// Degrades to the bottom role instead of failing or elevating.
	require.True(t, s.HasUniverse())
	assert.Equal(t, universeID, s.Universe.ID)
	assert.Equal(t, rbac.RoleSpectator, s.Universe.Role)
	assert.Contains(t, buf.String(), "membership lookup failed")
}

func TestResolver_FirstMembershipFallback(t *testing.T) {
	userID := uuid.New()
	older := uuid.New()
	newer := uuid.New()

	store := session.NewMemoryStore()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	// Insert the newer membership first to prove selection is by CreatedAt,
	// not insertion order.
	store.Add(session.Membership{UserID: userID, UniverseID: newer, Role: "game_master", CreatedAt: base.Add(time.Hour)})
	store.Add(session.Membership{UserID: userID, UniverseID: older, Role: "role_player", CreatedAt: base})

	resolver, _ := newTestResolver(store)

	s := resolver.Resolve(context.Background(), &session.Identity{ID: userID, GlobalRole: "default"})

	require.True(t, s.HasUniverse())
	assert.Equal(t, older, s.Universe.ID)
	assert.Equal(t, rbac.RoleRolePlayer, s.Universe.Role)
}

func TestResolver_FirstMembershipTieBreak(t *testing.T) {
	userID := uuid.New()
	idA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	idB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	store := session.NewMemoryStore()
	store.Add(session.Membership{UserID: userID, UniverseID: idB, Role: "game_master", CreatedAt: created})
	store.Add(session.Membership{UserID: userID, UniverseID: idA, Role: "spectator", CreatedAt: created})

	resolver, _ := newTestResolver(store)

	s := resolver.Resolve(context.Background(), &session.Identity{ID: userID, GlobalRole: "default"})

	require.True(t, s.HasUniverse())
	assert.Equal(t, idA, s.Universe.ID)
}

func TestResolver_NoMemberships(t *testing.T) {
	resolver, buf := newTestResolver(session.NewMemoryStore())

	s := resolver.Resolve(context.Background(), &session.Identity{ID: uuid.New(), GlobalRole: "default"})

	require.NotNil(t, s)
	assert.False(t, s.HasUniverse())
	assert.Empty(t, buf.String())
}

// failingStore simulates an unavailable membership backend.
type failingStore struct{}

func (failingStore) FindRole(ctx context.Context, userID, universeID uuid.UUID) (string, error) {
	return "", errors.New("connection refused")
}

func (failingStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]session.Membership, error) {
	return nil, errors.New("connection refused")
}

func TestResolver_StoreFailure(t *testing.T) {
	resolver, buf := newTestResolver(failingStore{})
	userID := uuid.New()
	universeID := uuid.New()

	// Listing failure: no universe context at all.
	s := resolver.Resolve(context.Background(), &session.Identity{ID: userID, GlobalRole: "default"})
	require.NotNil(t, s)
	assert.False(t, s.HasUniverse())
	assert.Contains(t, buf.String(), "membership listing failed")

	// Stored-selection failure: bottom role, never elevated.
	buf.Reset()
	s = resolver.Resolve(context.Background(), &session.Identity{ID: userID, GlobalRole: "default"},
		session.WithStoredUniverse(universeID))
	require.True(t, s.HasUniverse())
	assert.Equal(t, rbac.RoleSpectator, s.Universe.Role)
	assert.Contains(t, buf.String(), "membership lookup failed")
}
