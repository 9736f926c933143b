package authz

import (
	"github.com/lorekit/lorekit/pkg/rbac"
	"github.com/lorekit/lorekit/pkg/session"
)

// Decision is the outcome of a single permission query. The core never
// raises an "authorization denied" error; it is the caller's responsibility
// to translate a negative decision into a user-visible failure and to treat
// it as a hard stop before touching persistent storage.
type Decision struct {
	Granted bool
}

// Authorizer is the facade every mutation handler calls before acting. It is
// stateless per call: each query re-resolves the session's role for the
// relevant namespace, so a role change is picked up on the next call without
// any invalidation.
type Authorizer struct {
	registry *rbac.Registry
}

// New creates an authorizer over the given registry.
func New(registry *rbac.Registry) *Authorizer {
	return &Authorizer{registry: registry}
}

// Default returns an authorizer over the platform grant table. It panics if
// the table is malformed, which is a programming error caught by the package
// tests; the process must not start with a broken registry.
func Default() *Authorizer {
	reg, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return New(reg)
}

// Can returns the query surface for the global namespace. A nil session is
// not a special case: it simply resolves to the anonymous bottom role.
func (a *Authorizer) Can(s *session.Session) Query {
	role := rbac.RoleAnonymous
	if s != nil && s.GlobalRole != "" {
		role = s.GlobalRole
	}
	return Query{grants: a.registry.Resolve(rbac.NamespaceGlobal, role)}
}

// CanInUniverse returns the query surface for the universe namespace. A
// session without an active universe resolves to the spectator bottom role.
func (a *Authorizer) CanInUniverse(s *session.Session) Query {
	role := rbac.RoleSpectator
	if s.HasUniverse() && s.Universe.Role != "" {
		role = s.Universe.Role
	}
	return Query{grants: a.registry.Resolve(rbac.NamespaceUniverse, role)}
}

// Query answers permission questions against one resolved grant set.
//
// Each code path checks exactly one possession: "own" when the caller has
// already verified the actor owns the target, "any" otherwise. The two are
// never combined with AND, and an "any" grant does not satisfy an "own"
// check.
type Query struct {
	grants rbac.GrantSet
}

func (q Query) query(action rbac.Action, possession rbac.Possession, resource string) Decision {
	return Decision{Granted: q.grants.Query(action, possession, resource)}
}

// CreateOwn checks creation of a resource the actor will own.
func (q Query) CreateOwn(resource string) Decision {
	return q.query(rbac.ActionCreate, rbac.PossessionOwn, resource)
}

// CreateAny checks creation of a resource regardless of ownership.
func (q Query) CreateAny(resource string) Decision {
	return q.query(rbac.ActionCreate, rbac.PossessionAny, resource)
}

// ReadOwn checks reading a resource the actor owns.
func (q Query) ReadOwn(resource string) Decision {
	return q.query(rbac.ActionRead, rbac.PossessionOwn, resource)
}

// ReadAny checks reading any resource of the type.
func (q Query) ReadAny(resource string) Decision {
	return q.query(rbac.ActionRead, rbac.PossessionAny, resource)
}

// UpdateOwn checks updating a resource the actor owns.
func (q Query) UpdateOwn(resource string) Decision {
	return q.query(rbac.ActionUpdate, rbac.PossessionOwn, resource)
}

// UpdateAny checks updating any resource of the type.
func (q Query) UpdateAny(resource string) Decision {
	return q.query(rbac.ActionUpdate, rbac.PossessionAny, resource)
}

// DeleteOwn checks deleting a resource the actor owns.
func (q Query) DeleteOwn(resource string) Decision {
	return q.query(rbac.ActionDelete, rbac.PossessionOwn, resource)
}

// DeleteAny checks deleting any resource of the type.
func (q Query) DeleteAny(resource string) Decision {
	return q.query(rbac.ActionDelete, rbac.PossessionAny, resource)
}
