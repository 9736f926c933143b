package session

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lorekit/lorekit/pkg/rbac"
)

// Resolver derives the two-role session projection from raw authentication
// state. It is a read-only derivation with one observable side effect: a
// diagnostic log line whenever resolution degrades to a bottom role.
//
// Resolution never fails. Missing or malformed memberships, unrecognized
// role strings, and store errors all resolve to the least-privileged role of
// the affected namespace, never to an elevated one.
type Resolver struct {
	store MembershipStore
	log   *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger used for degradation warnings.
func WithLogger(log *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// NewResolver creates a session resolver backed by the given membership
// store.
func NewResolver(store MembershipStore, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		store: store,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// resolveState carries the per-call inputs that precede the membership
// lookup in the precedence order.
type resolveState struct {
	override  *UniverseContext
	storedID  uuid.UUID
	hasStored bool
}

// ResolveOption supplies optional per-request resolution inputs.
type ResolveOption func(*resolveState)

// WithUniverse sets an explicit universe-role override, as produced by a
// "switch universe" action in the current request. It takes precedence over
// any stored selection.
func WithUniverse(id uuid.UUID, role string) ResolveOption {
	return func(s *resolveState) {
		s.override = &UniverseContext{ID: id, Role: rbac.RoleID(role)}
	}
}

// WithStoredUniverse sets the universe selection persisted from a previous
// login. The membership store is consulted for the actual role.
func WithStoredUniverse(id uuid.UUID) ResolveOption {
	return func(s *resolveState) {
		s.storedID = id
		s.hasStored = true
	}
}

// Resolve produces the session projection for the identity. A nil identity
// yields a nil session, which downstream consumers treat as anonymous.
//
// Universe role precedence:
//
//  1. explicit override from the current request,
//  2. stored universe selection, role looked up in the membership store,
//  3. the user's first membership by (CreatedAt, UniverseID),
//  4. none: the session has no universe context and universe-scoped queries
//     fall back to the namespace bottom role.
func (r *Resolver) Resolve(ctx context.Context, identity *Identity, opts ...ResolveOption) *Session {
	if identity == nil {
		return nil
	}

	var state resolveState
	for _, opt := range opts {
		opt(&state)
	}

	s := &Session{
		UserID:     identity.ID,
		GlobalRole: r.globalRole(ctx, identity),
	}
	s.Universe = r.universeContext(ctx, identity.ID, state)
	return s
}

// globalRole reads the stored global role, defaulting an unrecognized value
// to RoleDefault: the identity proved authentication, only its privilege
// claim is distrusted.
func (r *Resolver) globalRole(ctx context.Context, identity *Identity) rbac.RoleID {
	switch rbac.RoleID(identity.GlobalRole) {
	case rbac.RoleAnonymous, rbac.RoleDefault, rbac.RoleAdministrator:
		return rbac.RoleID(identity.GlobalRole)
	}

	r.log.WarnContext(ctx, "unrecognized global role, defaulting",
		slog.String("user_id", identity.ID.String()),
		slog.String("role", identity.GlobalRole))
	return rbac.RoleDefault
}

func (r *Resolver) universeContext(ctx context.Context, userID uuid.UUID, state resolveState) *UniverseContext {
	if state.override != nil {
		return &UniverseContext{
			ID:   state.override.ID,
			Role: r.universeRole(ctx, userID, state.override.ID, string(state.override.Role)),
		}
	}

	if state.hasStored {
		role, err := r.store.FindRole(ctx, userID, state.storedID)
		if err != nil {
			r.log.WarnContext(ctx, "stored universe membership lookup failed, degrading to bottom role",
				slog.String("user_id", userID.String()),
				slog.String("universe_id", state.storedID.String()),
				slog.Any("error", err))
			return &UniverseContext{ID: state.storedID, Role: rbac.RoleSpectator}
		}
		return &UniverseContext{
			ID:   state.storedID,
			Role: r.universeRole(ctx, userID, state.storedID, role),
		}
	}

	memberships, err := r.store.ListByUser(ctx, userID)
	if err != nil {
		r.log.WarnContext(ctx, "membership listing failed, resolving without universe",
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
		return nil
	}
	if len(memberships) == 0 {
		return nil
	}

	first := memberships[0]
	return &UniverseContext{
		ID:   first.UniverseID,
		Role: r.universeRole(ctx, userID, first.UniverseID, first.Role),
	}
}

// universeRole validates a role string against the closed universe role set,
// degrading unknown values to the bottom role.
func (r *Resolver) universeRole(ctx context.Context, userID, universeID uuid.UUID, role string) rbac.RoleID {
	switch rbac.RoleID(role) {
	case rbac.RoleSpectator, rbac.RoleRolePlayer, rbac.RoleGameMaster:
		return rbac.RoleID(role)
	}

	r.log.WarnContext(ctx, "unrecognized universe role, degrading to bottom role",
		slog.String("user_id", userID.String()),
		slog.String("universe_id", universeID.String()),
		slog.String("role", role))
	return rbac.RoleSpectator
}
