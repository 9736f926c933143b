package rbac

// Registry holds the resolved grant tables for every namespace. It is built
// once at process start by Builder.Build and is read-only afterwards, so
// concurrent reads from request handlers need no synchronization.
type Registry struct {
	grants  map[Namespace]map[RoleID]GrantSet
	bottoms map[Namespace]RoleID
	sorted  map[Namespace][]RoleID
}

// Resolve returns the flattened grant set for the role, including everything
// inherited transitively. An unrecognized role identifier resolves to the
// namespace's bottom role so authorization queries degrade to least privilege
// instead of failing; an unknown namespace resolves to an empty set.
func (r *Registry) Resolve(ns Namespace, id RoleID) GrantSet {
	roles, ok := r.grants[ns]
	if !ok {
		return GrantSet{}
	}

	if set, ok := roles[id]; ok {
		return set
	}
	return roles[r.bottoms[ns]]
}

// Known reports whether the role is defined in the namespace.
func (r *Registry) Known(ns Namespace, id RoleID) bool {
	roles, ok := r.grants[ns]
	if !ok {
		return false
	}
	_, ok = roles[id]
	return ok
}

// BottomRole returns the namespace's least-privileged role.
func (r *Registry) BottomRole(ns Namespace) (RoleID, bool) {
	id, ok := r.bottoms[ns]
	return id, ok
}

// Roles returns the namespace's role identifiers sorted by inheritance depth,
// base roles first.
func (r *Registry) Roles(ns Namespace) []RoleID {
	sorted, ok := r.sorted[ns]
	if !ok {
		return nil
	}
	result := make([]RoleID, len(sorted))
	copy(result, sorted)
	return result
}
