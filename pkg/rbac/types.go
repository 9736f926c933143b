package rbac

// MaxInheritanceDepth is the maximum allowed depth of role inheritance
// to prevent excessive nesting and potential performance issues.
const MaxInheritanceDepth = 10

// Namespace identifies an independent role scope. Grants defined in one
// namespace are never visible from another.
type Namespace string

const (
	// NamespaceGlobal holds platform-wide roles, independent of any universe.
	NamespaceGlobal Namespace = "global"

	// NamespaceUniverse holds roles scoped to a single universe.
	NamespaceUniverse Namespace = "universe"
)

// RoleID is a role identifier within a namespace. The role sets are closed:
// application code should use the constants below rather than raw strings.
type RoleID string

// Global roles.
const (
	RoleAnonymous     RoleID = "anonymous"
	RoleDefault       RoleID = "default"
	RoleAdministrator RoleID = "administrator"
)

// Universe roles.
const (
	RoleSpectator  RoleID = "spectator"
	RoleRolePlayer RoleID = "role_player"
	RoleGameMaster RoleID = "game_master"
)

// Action is a CRUD operation a grant applies to.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Possession scopes a grant to resources the actor owns ("own") or to any
// resource of the type ("any"). The two are independent permission points:
// holding "any" does not imply "own" and vice versa.
type Possession string

const (
	PossessionOwn Possession = "own"
	PossessionAny Possession = "any"
)

// Grant is an atomic permission record attached to a role. Resource is an
// open identifier (e.g. "character", "species"); the evaluator treats it as
// opaque, so new resource types need new grant entries only.
type Grant struct {
	Action     Action
	Possession Possession
	Resource   string
}

func validAction(a Action) bool {
	switch a {
	case ActionCreate, ActionRead, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

func validPossession(p Possession) bool {
	return p == PossessionOwn || p == PossessionAny
}

// validResource rejects empty identifiers and identifiers containing
// whitespace, catching typos at build time without constraining the set of
// resource types.
func validResource(resource string) bool {
	if resource == "" {
		return false
	}
	for _, r := range resource {
		switch r {
		case ' ', '\t', '\n', '\r':
			return false
		}
	}
	return true
}
