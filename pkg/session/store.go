package session

import (
	"context"

	"github.com/google/uuid"
)

// MembershipStore looks up universe memberships for session resolution. The
// lookup may hit a database; implementations must honor ctx cancellation
// inherited from the surrounding request.
type MembershipStore interface {
	// FindRole returns the role string of the user's membership in the
	// universe, or ErrMembershipNotFound.
	FindRole(ctx context.Context, userID, universeID uuid.UUID) (string, error)

	// ListByUser returns all memberships of the user ordered by CreatedAt,
	// then UniverseID. The ordering makes default-universe selection
	// deterministic.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Membership, error)
}
