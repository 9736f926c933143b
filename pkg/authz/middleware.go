package authz

import "net/http"

// CheckFunc selects the permission query a guarded route requires, e.g.
//
//	func(q authz.Query) authz.Decision { return q.CreateAny(authz.ResourceItem) }
type CheckFunc func(q Query) Decision

// RequireGlobal guards a route with a query against the global namespace.
// The session is read from the request context (see WithSession); a denied
// anonymous request gets 401, a denied authenticated one gets 403.
func RequireGlobal(a *Authorizer, check CheckFunc) func(next http.Handler) http.Handler {
	return requireMiddleware(a, check, false)
}

// RequireUniverse guards a route with a query against the namespace of the
// session's active universe.
func RequireUniverse(a *Authorizer, check CheckFunc) func(next http.Handler) http.Handler {
	return requireMiddleware(a, check, true)
}

func requireMiddleware(a *Authorizer, check CheckFunc, universe bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := SessionFromContext(r.Context())

			var q Query
			if universe {
				q = a.CanInUniverse(s)
			} else {
				q = a.Can(s)
			}

			if !check(q).Granted {
				if !s.IsAuthenticated() {
					http.Error(w, ErrAuthenticationRequired.Error(), http.StatusUnauthorized)
					return
				}
				http.Error(w, ErrForbidden.Error(), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
