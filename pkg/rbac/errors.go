package rbac

import "errors"

// Configuration errors returned by Builder.Build. A process must not start
// with a malformed registry, so callers are expected to treat any of these
// as fatal.
var (
	// ErrUnknownParentRole is returned when a role extends a role that was
	// not defined in the same namespace.
	ErrUnknownParentRole = errors.New("rbac.unknown_parent_role")

	// ErrCircularInheritance is returned when extend edges form a cycle.
	ErrCircularInheritance = errors.New("rbac.circular_inheritance")

	// ErrInvalidGrant is returned for a grant with an unknown action or
	// possession value.
	ErrInvalidGrant = errors.New("rbac.invalid_grant")

	// ErrInvalidResource is returned for an empty resource identifier or one
	// containing whitespace.
	ErrInvalidResource = errors.New("rbac.invalid_resource")

	// ErrDuplicateRole is returned when the same role is defined twice in a
	// namespace.
	ErrDuplicateRole = errors.New("rbac.duplicate_role")

	// ErrMissingBottomRole is returned when a namespace has roles but none
	// was marked as its least-privileged default.
	ErrMissingBottomRole = errors.New("rbac.missing_bottom_role")
)
