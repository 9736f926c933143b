package rbac

import "slices"

// GrantSet is an immutable set of grants resolved for one role. The zero
// value is an empty set that denies every query.
type GrantSet struct {
	grants map[Grant]struct{}
}

func newGrantSet(grants []Grant) GrantSet {
	set := make(map[Grant]struct{}, len(grants))
	for _, g := range grants {
		set[g] = struct{}{}
	}
	return GrantSet{grants: set}
}

// Query reports whether the set contains an exact (action, possession,
// resource) grant. There is no wildcard matching and no possession widening:
// a query for "own" is not satisfied by an "any" grant. The caller decides
// which possession applies to its code path.
func (s GrantSet) Query(action Action, possession Possession, resource string) bool {
	_, ok := s.grants[Grant{Action: action, Possession: possession, Resource: resource}]
	return ok
}

// Has reports whether the set contains the exact grant.
func (s GrantSet) Has(g Grant) bool {
	_, ok := s.grants[g]
	return ok
}

// Len returns the number of grants in the set.
func (s GrantSet) Len() int {
	return len(s.grants)
}

// Grants returns the set's contents in a stable order, sorted by resource,
// action, then possession.
func (s GrantSet) Grants() []Grant {
	result := make([]Grant, 0, len(s.grants))
	for g := range s.grants {
		result = append(result, g)
	}
	slices.SortFunc(result, func(a, b Grant) int {
		if a.Resource != b.Resource {
			if a.Resource < b.Resource {
				return -1
			}
			return 1
		}
		if a.Action != b.Action {
			if a.Action < b.Action {
				return -1
			}
			return 1
		}
		if a.Possession != b.Possession {
			if a.Possession < b.Possession {
				return -1
			}
			return 1
		}
		return 0
	})
	return result
}
