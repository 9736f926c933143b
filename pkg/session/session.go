package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/lorekit/lorekit/pkg/rbac"
)

// Session is the per-request projection of authentication state that the
// authorization facade reads. It is derived, never persisted: the
// authentication layer owns its lifecycle (created at login, refreshed on
// universe switch, discarded at logout). A nil *Session is a valid anonymous
// session.
type Session struct {
	UserID     uuid.UUID
	GlobalRole rbac.RoleID
	Universe   *UniverseContext
}

// UniverseContext carries the active universe and the actor's role within it.
type UniverseContext struct {
	ID   uuid.UUID
	Role rbac.RoleID
}

// IsAuthenticated reports whether the session belongs to a known user.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != uuid.Nil
}

// HasUniverse reports whether the session has an active universe.
func (s *Session) HasUniverse() bool {
	return s != nil && s.Universe != nil
}

// Identity is the already-authenticated actor as provided by the
// authentication layer: a user id plus the stored global role string.
type Identity struct {
	ID         uuid.UUID
	GlobalRole string
}

// Membership links a user to a universe with a role. CreatedAt participates
// in the deterministic first-membership selection during resolution.
type Membership struct {
	UserID     uuid.UUID
	UniverseID uuid.UUID
	Role       string
	CreatedAt  time.Time
}
