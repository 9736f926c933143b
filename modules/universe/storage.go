package universe

import (
	"context"

	"github.com/google/uuid"

	"github.com/lorekit/lorekit/pkg/session"
)

// Storage persists universes. Implementations return ErrUniverseNotFound for
// lookups and mutations on unknown ids.
type Storage interface {
	Create(ctx context.Context, u Universe) error
	Get(ctx context.Context, id uuid.UUID) (Universe, error)
	List(ctx context.Context) ([]Universe, error)
	Update(ctx context.Context, u Universe) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MembershipStore extends the resolver's read-only view with the writes the
// module needs for joining and member administration.
type MembershipStore interface {
	session.MembershipStore
	Upsert(ctx context.Context, m session.Membership) error
	Delete(ctx context.Context, userID, universeID uuid.UUID) error
	ListByUniverse(ctx context.Context, universeID uuid.UUID) ([]session.Membership, error)
}
