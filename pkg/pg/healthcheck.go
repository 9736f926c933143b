package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrHealthcheckFailed indicates the database did not answer a ping.
var ErrHealthcheckFailed = errors.New("postgres healthcheck failed")

// Healthcheck returns a readiness probe function for the pool.
func Healthcheck(pool *pgxpool.Pool) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
