package claims_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekit/lorekit/pkg/claims"
)

func TestMiddleware(t *testing.T) {
	svc, err := claims.NewService(testSigningKey)
	require.NoError(t, err)

	var got claims.Claims
	var present bool
	handler := claims.Middleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, present = claims.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("no header passes through anonymously", func(t *testing.T) {
		present = false
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, present)
	})

	t.Run("valid token injects claims", func(t *testing.T) {
		userID := uuid.New()
		token, err := svc.Issue(claims.Claims{Subject: userID.String(), GlobalRole: "default"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.True(t, present)
		assert.Equal(t, userID.String(), got.Subject)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer bogus.token.here")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
