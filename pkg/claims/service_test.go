package claims_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekit/lorekit/pkg/claims"
)

const testSigningKey = "test-signing-key-at-least-32-bytes!!"

func TestService_IssueAndParse(t *testing.T) {
	svc, err := claims.NewService(testSigningKey, claims.WithIssuer("lorekit"), claims.WithTTL(time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	universeID := uuid.New()

	token, err := svc.Issue(claims.Claims{
		Subject:    userID.String(),
		GlobalRole: "default",
		UniverseID: universeID.String(),
	})
	require.NoError(t, err)
	require.Equal(t, 3, len(strings.Split(token, ".")))

	parsed, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), parsed.Subject)
	assert.Equal(t, "default", parsed.GlobalRole)
	assert.Equal(t, universeID.String(), parsed.UniverseID)
	assert.Equal(t, "lorekit", parsed.Issuer)
	assert.NotZero(t, parsed.IssuedAt)
	assert.NotZero(t, parsed.ExpiresAt)
}

func TestService_MissingSigningKey(t *testing.T) {
	_, err := claims.NewService("")
	assert.ErrorIs(t, err, claims.ErrMissingSigningKey)
}

func TestService_ParseRejectsTampering(t *testing.T) {
	svc, err := claims.NewService(testSigningKey)
	require.NoError(t, err)

	token, err := svc.Issue(claims.Claims{Subject: uuid.NewString(), GlobalRole: "default"})
	require.NoError(t, err)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Parse("not-a-token")
		assert.ErrorIs(t, err, claims.ErrInvalidToken)
	})

	t.Run("modified payload", func(t *testing.T) {
		parts := strings.Split(token, ".")
		tampered := parts[0] + "." + parts[1] + "x." + parts[2]
		_, err := svc.Parse(tampered)
		assert.ErrorIs(t, err, claims.ErrInvalidSignature)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := claims.NewService("another-signing-key-also-32-bytes!!!")
		require.NoError(t, err)
		_, err = other.Parse(token)
		assert.ErrorIs(t, err, claims.ErrInvalidSignature)
	})
}

func TestService_ParseRejectsExpired(t *testing.T) {
	svc, err := claims.NewService(testSigningKey)
	require.NoError(t, err)

	token, err := svc.Issue(claims.Claims{
		Subject:   uuid.NewString(),
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	})
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, claims.ErrExpiredToken)
}

func TestClaims_Identity(t *testing.T) {
	userID := uuid.New()

	identity := claims.Claims{Subject: userID.String(), GlobalRole: "administrator"}.Identity()
	require.NotNil(t, identity)
	assert.Equal(t, userID, identity.ID)
	assert.Equal(t, "administrator", identity.GlobalRole)

	assert.Nil(t, claims.Claims{}.Identity())
	assert.Nil(t, claims.Claims{Subject: "not-a-uuid"}.Identity())
	assert.Nil(t, claims.Claims{Subject: uuid.Nil.String()}.Identity())
}

func TestClaims_ResolveOptions(t *testing.T) {
	t.Run("no universe yields no options", func(t *testing.T) {
		assert.Empty(t, claims.Claims{Subject: uuid.NewString()}.ResolveOptions())
	})

	t.Run("malformed universe id yields no options", func(t *testing.T) {
		c := claims.Claims{Subject: uuid.NewString(), UniverseID: "not-a-uuid", UniverseRole: "game_master"}
		assert.Empty(t, c.ResolveOptions())
	})

	t.Run("id with role is an override", func(t *testing.T) {
		c := claims.Claims{Subject: uuid.NewString(), UniverseID: uuid.NewString(), UniverseRole: "game_master"}
		assert.Len(t, c.ResolveOptions(), 1)
	})

	t.Run("bare id is a stored selection", func(t *testing.T) {
		c := claims.Claims{Subject: uuid.NewString(), UniverseID: uuid.NewString()}
		assert.Len(t, c.ResolveOptions(), 1)
	})
}
