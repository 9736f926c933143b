package authz

import "github.com/lorekit/lorekit/pkg/rbac"

// Resource types gated by the platform grant table. The evaluator treats
// resources as opaque strings, so content modules may introduce new ones by
// adding grant entries here; nothing else changes.
const (
	ResourceUnivers    = "univers"
	ResourceCharacter  = "character"
	ResourceSpecies    = "species"
	ResourcePopulation = "population"
	ResourceClass      = "class"
	ResourceItem       = "item"
	ResourceUser       = "user"
)

// NewRegistry builds the platform grant table. Grants are defined in code
// rather than configuration: they are a security boundary and should be
// reviewable at build time, not mutable at runtime.
func NewRegistry() (*rbac.Registry, error) {
	b := rbac.NewBuilder()

	// Global namespace. Anonymous visitors hold no grants at all; they can
	// only reach whatever the application exposes without authorization.
	b.Role(rbac.NamespaceGlobal, rbac.RoleAnonymous).Bottom()

	b.Role(rbac.NamespaceGlobal, rbac.RoleDefault).
		Extend(rbac.RoleAnonymous).
		Grant(rbac.ActionCreate, rbac.PossessionOwn, ResourceUnivers).
		Grant(rbac.ActionRead, rbac.PossessionOwn, ResourceUnivers).
		Grant(rbac.ActionUpdate, rbac.PossessionOwn, ResourceUnivers).
		Grant(rbac.ActionDelete, rbac.PossessionOwn, ResourceUnivers).
		Grant(rbac.ActionRead, rbac.PossessionAny, ResourceUnivers).
		Grant(rbac.ActionCreate, rbac.PossessionOwn, ResourceCharacter).
		Grant(rbac.ActionRead, rbac.PossessionOwn, ResourceCharacter).
		Grant(rbac.ActionUpdate, rbac.PossessionOwn, ResourceCharacter).
		Grant(rbac.ActionDelete, rbac.PossessionOwn, ResourceCharacter)

	b.Role(rbac.NamespaceGlobal, rbac.RoleAdministrator).
		Extend(rbac.RoleDefault).
		Grant(rbac.ActionCreate, rbac.PossessionAny, ResourceUnivers).
		Grant(rbac.ActionUpdate, rbac.PossessionAny, ResourceUnivers).
		Grant(rbac.ActionDelete, rbac.PossessionAny, ResourceUnivers).
		Grant(rbac.ActionCreate, rbac.PossessionAny, ResourceCharacter).
		Grant(rbac.ActionRead, rbac.PossessionAny, ResourceCharacter).
		Grant(rbac.ActionUpdate, rbac.PossessionAny, ResourceCharacter).
		Grant(rbac.ActionDelete, rbac.PossessionAny, ResourceCharacter).
		Grant(rbac.ActionCreate, rbac.PossessionAny, ResourceUser).
		Grant(rbac.ActionRead, rbac.PossessionAny, ResourceUser).
		Grant(rbac.ActionUpdate, rbac.PossessionAny, ResourceUser).
		Grant(rbac.ActionDelete, rbac.PossessionAny, ResourceUser)

	// Universe namespace. Spectators can browse everything in a universe
	// they were invited to, but touch nothing.
	b.Role(rbac.NamespaceUniverse, rbac.RoleSpectator).Bottom().
		Grant(rbac.ActionRead, rbac.PossessionAny, ResourceUnivers).
		Grant(rbac.ActionRead, rbac.PossessionAny, ResourceSpecies).
		Grant(rbac.ActionRead, rbac.PossessionAny, ResourcePopulation).
		Grant(rbac.ActionRead, rbac.PossessionAny, ResourceClass).
		Grant(rbac.ActionRead, rbac.PossessionAny, ResourceItem).
		Grant(rbac.ActionRead, rbac.PossessionAny, ResourceCharacter)

	b.Role(rbac.NamespaceUniverse, rbac.RoleRolePlayer).
		Extend(rbac.RoleSpectator).
		Grant(rbac.ActionCreate, rbac.PossessionOwn, ResourceCharacter).
		Grant(rbac.ActionRead, rbac.PossessionOwn, ResourceCharacter).
		Grant(rbac.ActionUpdate, rbac.PossessionOwn, ResourceCharacter).
		Grant(rbac.ActionDelete, rbac.PossessionOwn, ResourceCharacter).
		Grant(rbac.ActionCreate, rbac.PossessionOwn, ResourceItem).
		Grant(rbac.ActionUpdate, rbac.PossessionOwn, ResourceItem).
		Grant(rbac.ActionDelete, rbac.PossessionOwn, ResourceItem)

	b.Role(rbac.NamespaceUniverse, rbac.RoleGameMaster).
		Extend(rbac.RoleRolePlayer).
		Grant(rbac.ActionCreate, rbac.PossessionAny, ResourceSpecies).
		Grant(rbac.ActionUpdate, rbac.PossessionAny, ResourceSpecies).
		Grant(rbac.ActionDelete, rbac.PossessionAny, ResourceSpecies).
		Grant(rbac.ActionCreate, rbac.PossessionAny, ResourcePopulation).
		Grant(rbac.ActionUpdate, rbac.PossessionAny, ResourcePopulation).
		Grant(rbac.ActionDelete, rbac.PossessionAny, ResourcePopulation).
		Grant(rbac.ActionCreate, rbac.PossessionAny, ResourceClass).
		Grant(rbac.ActionUpdate, rbac.PossessionAny, ResourceClass).
		Grant(rbac.ActionDelete, rbac.PossessionAny, ResourceClass).
		Grant(rbac.ActionCreate, rbac.PossessionAny, ResourceItem).
		Grant(rbac.ActionUpdate, rbac.PossessionAny, ResourceItem).
		Grant(rbac.ActionDelete, rbac.PossessionAny, ResourceItem).
		Grant(rbac.ActionCreate, rbac.PossessionAny, ResourceCharacter).
		Grant(rbac.ActionUpdate, rbac.PossessionAny, ResourceCharacter).
		Grant(rbac.ActionDelete, rbac.PossessionAny, ResourceCharacter).
		Grant(rbac.ActionUpdate, rbac.PossessionOwn, ResourceUnivers).
		Grant(rbac.ActionUpdate, rbac.PossessionAny, ResourceUnivers)

	return b.Build()
}
