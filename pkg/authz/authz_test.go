package authz_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/lorekit/lorekit/pkg/authz"
	"github.com/lorekit/lorekit/pkg/rbac"
	"github.com/lorekit/lorekit/pkg/session"
)

func TestAuthorizer_AnonymousGlobal(t *testing.T) {
	a := authz.Default()

	// Anonymous visitors hold no grants in the platform table.
	assert.False(t, a.Can(nil).ReadAny(authz.ResourceUnivers).Granted)
	assert.False(t, a.Can(nil).CreateOwn(authz.ResourceUnivers).Granted)
	assert.False(t, a.Can(nil).DeleteAny(authz.ResourceUser).Granted)
}

func TestAuthorizer_NilSessionEqualsAnonymous(t *testing.T) {
	a := authz.Default()
	anonymous := &session.Session{GlobalRole: rbac.RoleAnonymous}

	resources := []string{
		authz.ResourceUnivers,
		authz.ResourceCharacter,
		authz.ResourceSpecies,
		authz.ResourceItem,
		authz.ResourceUser,
		"nonexistent-resource",
	}

	for _, resource := range resources {
		assert.Equal(t,
			a.Can(anonymous).ReadAny(resource),
			a.Can(nil).ReadAny(resource), "readAny %s", resource)
		assert.Equal(t,
			a.Can(anonymous).CreateOwn(resource),
			a.Can(nil).CreateOwn(resource), "createOwn %s", resource)
	}
}

func TestAuthorizer_DefaultUser(t *testing.T) {
	a := authz.Default()
	s := &session.Session{UserID: uuid.New(), GlobalRole: rbac.RoleDefault}

	assert.True(t, a.Can(s).CreateOwn(authz.ResourceUnivers).Granted)
	assert.True(t, a.Can(s).ReadAny(authz.ResourceUnivers).Granted)
	assert.True(t, a.Can(s).UpdateOwn(authz.ResourceCharacter).Granted)

	// No possession widening: own grants never satisfy any checks.
	assert.False(t, a.Can(s).CreateAny(authz.ResourceUnivers).Granted)
	assert.False(t, a.Can(s).UpdateAny(authz.ResourceCharacter).Granted)
}

func TestAuthorizer_Administrator(t *testing.T) {
	a := authz.Default()
	s := &session.Session{UserID: uuid.New(), GlobalRole: rbac.RoleAdministrator}

	// Direct any-grants plus everything inherited from default.
	assert.True(t, a.Can(s).DeleteAny(authz.ResourceUnivers).Granted)
	assert.True(t, a.Can(s).UpdateAny(authz.ResourceUser).Granted)
	assert.True(t, a.Can(s).CreateOwn(authz.ResourceUnivers).Granted)
}

func TestAuthorizer_UniverseInheritance(t *testing.T) {
	a := authz.Default()
	s := &session.Session{
		UserID:     uuid.New(),
		GlobalRole: rbac.RoleDefault,
		Universe:   &session.UniverseContext{ID: uuid.New(), Role: rbac.RoleGameMaster},
	}

	// Direct grant.
	assert.True(t, a.CanInUniverse(s).DeleteAny(authz.ResourceCharacter).Granted)
	// Inherited transitively from spectator via role_player.
	assert.True(t, a.CanInUniverse(s).ReadAny(authz.ResourceSpecies).Granted)
	// Inherited from role_player.
	assert.True(t, a.CanInUniverse(s).CreateOwn(authz.ResourceCharacter).Granted)
}

func TestAuthorizer_MissingUniverse(t *testing.T) {
	a := authz.Default()
	s := &session.Session{UserID: uuid.New(), GlobalRole: rbac.RoleDefault}

	// Falls back to spectator: browse-only.
	assert.False(t, a.CanInUniverse(s).CreateAny(authz.ResourceItem).Granted)
	assert.False(t, a.CanInUniverse(s).CreateOwn(authz.ResourceCharacter).Granted)
	assert.True(t, a.CanInUniverse(s).ReadAny(authz.ResourceItem).Granted)

	// A nil session behaves the same way.
	assert.True(t, a.CanInUniverse(nil).ReadAny(authz.ResourceItem).Granted)
	assert.False(t, a.CanInUniverse(nil).CreateAny(authz.ResourceItem).Granted)
}

func TestAuthorizer_UnknownRoleDegrades(t *testing.T) {
	a := authz.Default()

	global := &session.Session{UserID: uuid.New(), GlobalRole: "ex-administrator"}
	assert.Equal(t, a.Can(nil).ReadAny(authz.ResourceUnivers), a.Can(global).ReadAny(authz.ResourceUnivers))
	assert.False(t, a.Can(global).DeleteAny(authz.ResourceUser).Granted)

	universe := &session.Session{
		UserID:     uuid.New(),
		GlobalRole: rbac.RoleDefault,
		Universe:   &session.UniverseContext{ID: uuid.New(), Role: "ex-game_master"},
	}
	assert.False(t, a.CanInUniverse(universe).DeleteAny(authz.ResourceCharacter).Granted)
	assert.True(t, a.CanInUniverse(universe).ReadAny(authz.ResourceSpecies).Granted)
}

func TestAuthorizer_UnknownResource(t *testing.T) {
	a := authz.Default()
	admin := &session.Session{UserID: uuid.New(), GlobalRole: rbac.RoleAdministrator}
	gm := &session.Session{
		UserID:     uuid.New(),
		GlobalRole: rbac.RoleAdministrator,
		Universe:   &session.UniverseContext{ID: uuid.New(), Role: rbac.RoleGameMaster},
	}

	// No wildcard matching: even top roles are denied on unknown resources.
	assert.False(t, a.Can(admin).ReadAny("nonexistent-resource").Granted)
	assert.False(t, a.CanInUniverse(gm).ReadAny("nonexistent-resource").Granted)
}

func TestNewRegistry(t *testing.T) {
	reg, err := authz.NewRegistry()
	assert.NoError(t, err)
	assert.NotNil(t, reg)

	bottom, ok := reg.BottomRole(rbac.NamespaceGlobal)
	assert.True(t, ok)
	assert.Equal(t, rbac.RoleAnonymous, bottom)

	bottom, ok = reg.BottomRole(rbac.NamespaceUniverse)
	assert.True(t, ok)
	assert.Equal(t, rbac.RoleSpectator, bottom)
}
