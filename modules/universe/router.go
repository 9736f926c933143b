package universe

import (
	"github.com/go-chi/chi/v5"

	"github.com/lorekit/lorekit/pkg/authz"
	"github.com/lorekit/lorekit/pkg/claims"
	"github.com/lorekit/lorekit/pkg/session"
)

// RouterConfig wires the universe module's dependencies.
type RouterConfig struct {
	Service  *Service
	Auth     *authz.Authorizer
	Tokens   *claims.Service
	Resolver *session.Resolver
}

// Router builds the universe module's routes with the full authorization
// chain: bearer token parsing, session resolution, and per-route guards.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/universes", universe.Router(universe.RouterConfig{
//	    Service:  svc,
//	    Auth:     auth,
//	    Tokens:   tokens,
//	    Resolver: resolver,
//	}))
func Router(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(claims.Middleware(cfg.Tokens))
	r.Use(ResolveSession(cfg.Resolver))

	browse := authz.RequireGlobal(cfg.Auth, func(q authz.Query) authz.Decision {
		return q.ReadAny(authz.ResourceUnivers)
	})
	create := authz.RequireGlobal(cfg.Auth, func(q authz.Query) authz.Decision {
		return q.CreateOwn(authz.ResourceUnivers)
	})
	// Joining creates the caller's own membership, so it rides on the same
	// grant as creating a universe of one's own.
	join := authz.RequireGlobal(cfg.Auth, func(q authz.Query) authz.Decision {
		return q.CreateOwn(authz.ResourceUnivers)
	})
	manageMembers := authz.RequireUniverse(cfg.Auth, func(q authz.Query) authz.Decision {
		return q.UpdateAny(authz.ResourceUnivers)
	})

	r.With(browse).Get("/", cfg.Service.handleList)
	r.With(create).Post("/", cfg.Service.handleCreate)

	r.Route("/{universeID}", func(ur chi.Router) {
		ur.Use(ActiveUniverse(cfg.Resolver))

		ur.With(browse).Get("/", cfg.Service.handleGet)
		ur.Patch("/", cfg.Service.handleUpdate)
		ur.Delete("/", cfg.Service.handleDelete)

		ur.With(join).Post("/join", cfg.Service.handleJoin)

		ur.Route("/members", func(mr chi.Router) {
			mr.With(browse).Get("/", cfg.Service.handleListMembers)
			mr.With(manageMembers).Post("/", cfg.Service.handleAddMember)
			mr.With(manageMembers).Delete("/{userID}", cfg.Service.handleRemoveMember)
		})
	})

	return r
}
