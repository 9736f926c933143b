package rbac

import (
	"errors"
	"fmt"
)

// Builder assembles the role registry declaratively. Configuration errors are
// sticky: the first invalid definition is recorded and reported by Build, so
// role declarations can be chained without per-call error handling.
type Builder struct {
	namespaces map[Namespace]*namespaceDef
	err        error
}

type namespaceDef struct {
	roles  map[RoleID]*roleDef
	order  []RoleID
	bottom RoleID
}

type roleDef struct {
	grants  []Grant
	extends []RoleID
}

// NewBuilder creates an empty registry builder.
func NewBuilder() *Builder {
	return &Builder{
		namespaces: make(map[Namespace]*namespaceDef),
	}
}

// Role defines a role in the given namespace and returns a RoleBuilder for
// attaching grants and inheritance edges. Defining the same role twice is a
// configuration error.
func (b *Builder) Role(ns Namespace, id RoleID) *RoleBuilder {
	def, ok := b.namespaces[ns]
	if !ok {
		def = &namespaceDef{roles: make(map[RoleID]*roleDef)}
		b.namespaces[ns] = def
	}

	if _, exists := def.roles[id]; exists {
		b.fail(errors.Join(ErrDuplicateRole, fmt.Errorf("role %q already defined in namespace %q", id, ns)))
	} else {
		def.roles[id] = &roleDef{}
		def.order = append(def.order, id)
	}

	return &RoleBuilder{builder: b, ns: ns, id: id}
}

// fail records the first configuration error. Later definitions are still
// accepted so a single Build call reports the earliest problem.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// RoleBuilder attaches grants and inheritance edges to a single role.
type RoleBuilder struct {
	builder *Builder
	ns      Namespace
	id      RoleID
}

// Bottom marks the role as its namespace's least-privileged default. Unknown
// role identifiers resolve to this role's grants, so every namespace must
// designate exactly one.
func (rb *RoleBuilder) Bottom() *RoleBuilder {
	def := rb.builder.namespaces[rb.ns]
	if def.bottom != "" && def.bottom != rb.id {
		rb.builder.fail(errors.Join(ErrDuplicateRole,
			fmt.Errorf("namespace %q already has bottom role %q", rb.ns, def.bottom)))
		return rb
	}
	def.bottom = rb.id
	return rb
}

// Extend declares that the role inherits all grants of parent, transitively.
// The parent must already be defined in the same namespace, and the new edge
// must not close a cycle over the edges registered so far.
func (rb *RoleBuilder) Extend(parent RoleID) *RoleBuilder {
	def := rb.builder.namespaces[rb.ns]

	if _, ok := def.roles[parent]; !ok {
		rb.builder.fail(errors.Join(ErrUnknownParentRole,
			fmt.Errorf("role %q extends unknown role %q in namespace %q", rb.id, parent, rb.ns)))
		return rb
	}

	if def.reaches(parent, rb.id, make(map[RoleID]bool)) || parent == rb.id {
		rb.builder.fail(errors.Join(ErrCircularInheritance,
			fmt.Errorf("edge %q -> %q closes an inheritance cycle in namespace %q", rb.id, parent, rb.ns)))
		return rb
	}

	def.roles[rb.id].extends = append(def.roles[rb.id].extends, parent)
	return rb
}

// Grant attaches a permission to the role. Action and possession must be one
// of the declared constants; the resource identifier must be non-empty with
// no whitespace.
func (rb *RoleBuilder) Grant(action Action, possession Possession, resource string) *RoleBuilder {
	if !validAction(action) || !validPossession(possession) {
		rb.builder.fail(errors.Join(ErrInvalidGrant,
			fmt.Errorf("role %q: invalid grant (%s, %s, %s)", rb.id, action, possession, resource)))
		return rb
	}
	if !validResource(resource) {
		rb.builder.fail(errors.Join(ErrInvalidResource,
			fmt.Errorf("role %q: invalid resource %q", rb.id, resource)))
		return rb
	}

	def := rb.builder.namespaces[rb.ns]
	def.roles[rb.id].grants = append(def.roles[rb.id].grants, Grant{
		Action:     action,
		Possession: possession,
		Resource:   resource,
	})
	return rb
}

// reaches reports whether to is reachable from from over registered extend
// edges, using DFS with a visited set.
func (d *namespaceDef) reaches(from, to RoleID, visited map[RoleID]bool) bool {
	if from == to {
		return true
	}
	if visited[from] {
		return false
	}
	visited[from] = true

	def, ok := d.roles[from]
	if !ok {
		return false
	}
	for _, parent := range def.extends {
		if d.reaches(parent, to, visited) {
			return true
		}
	}
	return false
}

// Build validates the configuration and produces an immutable Registry with
// all inherited grants precomputed. The builder must not be reused after a
// successful Build.
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}

	reg := &Registry{
		grants:  make(map[Namespace]map[RoleID]GrantSet, len(b.namespaces)),
		bottoms: make(map[Namespace]RoleID, len(b.namespaces)),
		sorted:  make(map[Namespace][]RoleID, len(b.namespaces)),
	}

	for ns, def := range b.namespaces {
		if def.bottom == "" {
			return nil, errors.Join(ErrMissingBottomRole,
				fmt.Errorf("namespace %q has no bottom role", ns))
		}

		if err := def.validateDepth(ns); err != nil {
			return nil, err
		}

		resolved := make(map[RoleID]GrantSet, len(def.roles))
		for _, id := range def.order {
			flat := def.flatten(id, make(map[RoleID]bool))
			resolved[id] = newGrantSet(flat)
		}

		reg.grants[ns] = resolved
		reg.bottoms[ns] = def.bottom
		reg.sorted[ns] = def.sortByDepth()
	}

	return reg, nil
}

// flatten collects the role's own grants plus all ancestors', using DFS with
// a visited set to short-circuit diamond inheritance.
func (d *namespaceDef) flatten(id RoleID, visited map[RoleID]bool) []Grant {
	if visited[id] {
		return nil
	}
	visited[id] = true

	def, ok := d.roles[id]
	if !ok {
		return nil
	}

	result := make([]Grant, len(def.grants))
	copy(result, def.grants)
	for _, parent := range def.extends {
		result = append(result, d.flatten(parent, visited)...)
	}
	return result
}

// validateDepth rejects inheritance chains deeper than MaxInheritanceDepth.
// Cycles cannot occur here because Extend rejects them before insertion.
func (d *namespaceDef) validateDepth(ns Namespace) error {
	depths := make(map[RoleID]int, len(d.roles))
	for id := range d.roles {
		if d.depth(id, depths) > MaxInheritanceDepth {
			return errors.Join(ErrCircularInheritance,
				fmt.Errorf("namespace %q: role %q exceeds maximum inheritance depth %d", ns, id, MaxInheritanceDepth))
		}
	}
	return nil
}

func (d *namespaceDef) depth(id RoleID, depths map[RoleID]int) int {
	if v, ok := depths[id]; ok {
		return v
	}

	max := 0
	for _, parent := range d.roles[id].extends {
		if v := d.depth(parent, depths) + 1; v > max {
			max = v
		}
	}
	depths[id] = max
	return max
}

// sortByDepth returns role identifiers ordered base roles first, preserving
// definition order among roles of equal depth.
func (d *namespaceDef) sortByDepth() []RoleID {
	depths := make(map[RoleID]int, len(d.roles))
	for id := range d.roles {
		d.depth(id, depths)
	}

	result := make([]RoleID, len(d.order))
	copy(result, d.order)
	// Stable insertion sort keeps definition order within a depth level.
	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && depths[result[j-1]] > depths[result[j]]; j-- {
			result[j-1], result[j] = result[j], result[j-1]
		}
	}
	return result
}
