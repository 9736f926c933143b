package universe

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lorekit/lorekit/pkg/authz"
	"github.com/lorekit/lorekit/pkg/claims"
	"github.com/lorekit/lorekit/pkg/session"
)

// ResolveSession turns parsed token claims into an authorization session and
// stores it in the request context. Requests without claims resolve with a
// nil identity, which downstream guards treat as anonymous.
func ResolveSession(resolver *session.Resolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var identity *session.Identity
			var opts []session.ResolveOption

			if c, ok := claims.FromContext(r.Context()); ok {
				identity = c.Identity()
				opts = c.ResolveOptions()
			}

			s := resolver.Resolve(r.Context(), identity, opts...)
			next.ServeHTTP(w, r.WithContext(authz.WithSession(r.Context(), s)))
		})
	}
}

type universeIDCtxKey struct{}

// ActiveUniverse parses the universeID route parameter and, when the current
// session is not already active in that universe, re-resolves the session
// with the route's universe as the stored selection. A token pinned to a
// different universe does not carry its role over; the membership roster
// decides the role here.
func ActiveUniverse(resolver *session.Resolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := uuid.Parse(chi.URLParam(r, "universeID"))
			if err != nil {
				http.Error(w, ErrInvalidUniverseID.Error(), http.StatusBadRequest)
				return
			}

			ctx := r.Context()
			s := authz.SessionFromContext(ctx)
			if s.IsAuthenticated() && (!s.HasUniverse() || s.Universe.ID != id) {
				identity := &session.Identity{
					ID:         s.UserID,
					GlobalRole: string(s.GlobalRole),
				}
				s = resolver.Resolve(ctx, identity, session.WithStoredUniverse(id))
				ctx = authz.WithSession(ctx, s)
			}

			ctx = context.WithValue(ctx, universeIDCtxKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// universeIDFromContext returns the id parsed by ActiveUniverse.
func universeIDFromContext(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(universeIDCtxKey{}).(uuid.UUID)
	return id
}
