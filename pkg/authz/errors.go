package authz

import "errors"

// Errors used by HTTP-facing callers to keep the three denial outcomes
// distinct: no session, session present but denied, and granted but target
// missing (the last one belongs to the storage layer, not here).
var (
	// ErrAuthenticationRequired maps to 401: no authenticated session.
	ErrAuthenticationRequired = errors.New("authz.authentication_required")

	// ErrForbidden maps to 403: an authenticated session was denied.
	ErrForbidden = errors.New("authz.forbidden")
)
