package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lorekit/lorekit/modules/universe"
	"github.com/lorekit/lorekit/pkg/authz"
	"github.com/lorekit/lorekit/pkg/claims"
	"github.com/lorekit/lorekit/pkg/config"
	"github.com/lorekit/lorekit/pkg/httpserver"
	"github.com/lorekit/lorekit/pkg/logger"
	"github.com/lorekit/lorekit/pkg/pg"
	"github.com/lorekit/lorekit/pkg/redis"
	"github.com/lorekit/lorekit/pkg/session"
)

type appConfig struct {
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	Server   httpserver.Config
	Postgres pg.Config
	Redis    redis.Config
	Session  session.Config
	Auth     claims.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithService("lorekit"),
	)
	slog.SetDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.Postgres, log); err != nil {
		return err
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.ErrorContext(ctx, "failed to close redis client", slog.Any("error", err))
		}
	}()

	tokens, err := claims.NewServiceFromConfig(cfg.Auth)
	if err != nil {
		return err
	}

	memberships := session.NewPostgresStore(pool)

	// The resolver reads through the cache; membership writes go straight to
	// the store and stay bounded by the cache TTL.
	var resolverStore session.MembershipStore = memberships
	if cfg.Session.MembershipCacheTTL > 0 {
		cache := session.NewRedisCache(redisClient, cfg.Session.RedisCachePrefix)
		resolverStore = session.NewCachedStore(memberships, cache, cfg.Session.MembershipCacheTTL)
	}
	resolver := session.NewResolver(resolverStore, session.WithLogger(log))

	auth := authz.Default()
	svc := universe.NewService(
		universe.NewPostgresStorage(pool),
		memberships,
		auth,
		universe.WithServiceLogger(log),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log,
		pg.Healthcheck(pool),
		redis.Healthcheck(redisClient),
	))

	r.Mount("/universes", universe.Router(universe.RouterConfig{
		Service:  svc,
		Auth:     auth,
		Tokens:   tokens,
		Resolver: resolver,
	}))

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
