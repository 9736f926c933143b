// Package session derives the per-request session projection consumed by the
// authorization facade: who the actor is, their global role, and their role
// in the active universe.
//
// The projection is read-only and ephemeral. It is computed from an
// authenticated Identity plus optional per-request inputs, with a strict
// precedence for the universe role:
//
//  1. an explicit override from a "switch universe" action in the current
//     request,
//  2. the universe selection persisted at a previous login, with the role
//     looked up in the membership store,
//  3. the user's first membership in (CreatedAt, UniverseID) order,
//  4. none, in which case universe-scoped queries fall back to the
//     spectator bottom role.
//
// Resolution never fails: unrecognized role strings, missing memberships,
// and store errors degrade to the least-privileged role of the affected
// namespace and emit a single warning log line. "Fail open" here always
// means failing to least privilege.
//
//	store := session.NewMemoryStore()
//	resolver := session.NewResolver(store, session.WithLogger(log))
//
//	s := resolver.Resolve(ctx, &session.Identity{ID: userID, GlobalRole: "default"},
//		session.WithStoredUniverse(universeID))
//
// Membership lookups can be served from Postgres (NewPostgresStore) and
// optionally decorated with an in-memory or Redis cache (NewCachedStore)
// keyed on (user, universe). Resolved grants are never cached here.
package session
