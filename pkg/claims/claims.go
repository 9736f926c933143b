package claims

import (
	"time"

	"github.com/google/uuid"

	"github.com/lorekit/lorekit/pkg/session"
)

// Claims is the LoreKit token payload. The universe fields encode the two
// sources of an active universe: UniverseRole is present only on tokens
// minted by an explicit "switch universe" action (an override), while a bare
// UniverseID is the selection persisted at login.
type Claims struct {
	Subject      string `json:"sub"`
	GlobalRole   string `json:"role,omitempty"`
	UniverseID   string `json:"universe_id,omitempty"`
	UniverseRole string `json:"universe_role,omitempty"`
	Issuer       string `json:"iss,omitempty"`
	ExpiresAt    int64  `json:"exp,omitempty"`
	IssuedAt     int64  `json:"iat,omitempty"`
}

// Valid validates the temporal claims against current time. Zero values are
// treated as unset and ignored.
func (c Claims) Valid() error {
	if c.ExpiresAt > 0 && time.Now().Unix() > c.ExpiresAt {
		return ErrExpiredToken
	}
	return nil
}

// Identity converts the claims into the resolver's identity input. Returns
// nil when the subject is missing or not a UUID, which downstream consumers
// treat as anonymous.
func (c Claims) Identity() *session.Identity {
	id, err := uuid.Parse(c.Subject)
	if err != nil || id == uuid.Nil {
		return nil
	}
	return &session.Identity{ID: id, GlobalRole: c.GlobalRole}
}

// ResolveOptions maps the universe fields onto the resolver's precedence
// inputs: a role-bearing universe claim becomes an explicit override, a bare
// universe id becomes the stored selection. A malformed universe id yields
// no options, leaving resolution to the first-membership fallback.
func (c Claims) ResolveOptions() []session.ResolveOption {
	if c.UniverseID == "" {
		return nil
	}

	id, err := uuid.Parse(c.UniverseID)
	if err != nil || id == uuid.Nil {
		return nil
	}

	if c.UniverseRole != "" {
		return []session.ResolveOption{session.WithUniverse(id, c.UniverseRole)}
	}
	return []session.ResolveOption{session.WithStoredUniverse(id)}
}
