// Package rbac provides the role registry and grant evaluator for LoreKit's
// two-tier access control model: a global namespace of platform roles and a
// universe namespace of per-universe roles. The namespaces are fully
// independent; a grant defined in one is never visible from the other.
//
// Roles are declared once at process start through a builder, validated
// (unknown parents, inheritance cycles, malformed grants are configuration
// errors), and frozen into an immutable Registry with all inherited grants
// precomputed. Unknown role identifiers resolve to the namespace's bottom
// role so queries degrade to least privilege rather than failing.
//
// Basic usage:
//
//	b := rbac.NewBuilder()
//	b.Role(rbac.NamespaceUniverse, rbac.RoleSpectator).Bottom().
//		Grant(rbac.ActionRead, rbac.PossessionAny, "species")
//	b.Role(rbac.NamespaceUniverse, rbac.RoleRolePlayer).
//		Extend(rbac.RoleSpectator).
//		Grant(rbac.ActionCreate, rbac.PossessionOwn, "character")
//
//	reg, err := b.Build()
//	if err != nil {
//		// Fatal: the process must not start with a malformed registry.
//	}
//
//	grants := reg.Resolve(rbac.NamespaceUniverse, rbac.RoleRolePlayer)
//	grants.Query(rbac.ActionRead, rbac.PossessionAny, "species") // true, inherited
//
// Matching is exact on (action, possession, resource). In particular an "any"
// grant does not satisfy an "own" query; the caller chooses the possession
// that fits its code path.
package rbac
