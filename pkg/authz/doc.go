// Package authz is the authorization facade for LoreKit: the only API
// application code should call to gate mutations. It combines the role
// registry (pkg/rbac) with the session projection (pkg/session) into two
// entry points, one per namespace:
//
//	a := authz.Default()
//
//	if !a.Can(s).CreateOwn(authz.ResourceUnivers).Granted {
//		// abort before touching storage
//	}
//
//	if !a.CanInUniverse(s).DeleteAny(authz.ResourceCharacter).Granted {
//		// abort
//	}
//
// A nil session resolves to the anonymous role and a session without an
// active universe resolves to the spectator role, so absent or degraded
// authentication state always lands on least privilege.
//
// Queries are pure and cheap: no state is cached across calls. If a cache is
// ever introduced it must be keyed on (namespace, role) — the only inputs
// the decision depends on — never on the session object.
//
// Every mutation handler is expected to consult the facade first and treat
// Decision.Granted == false as a hard stop. The HTTP middleware in this
// package does that translation for routed handlers, keeping 401 (no
// session) distinct from 403 (denied).
package authz
