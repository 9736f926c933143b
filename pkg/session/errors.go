package session

import "errors"

var (
	// ErrMembershipNotFound indicates the user has no membership in the
	// requested universe.
	ErrMembershipNotFound = errors.New("session.membership_not_found")

	// ErrNoStore indicates a resolver was constructed without a membership
	// store.
	ErrNoStore = errors.New("session.no_store")
)
