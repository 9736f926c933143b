package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is a MembershipStore backed by the memberships table (see
// migrations/). Lookups run on the shared pgx pool and inherit the caller's
// context for cancellation.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a membership store on top of the connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// FindRole returns the role of the user's membership in the universe.
func (s *PostgresStore) FindRole(ctx context.Context, userID, universeID uuid.UUID) (string, error) {
	const query = `SELECT role FROM memberships WHERE user_id = $1 AND universe_id = $2`

	var role string
	err := s.pool.QueryRow(ctx, query, userID, universeID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrMembershipNotFound
		}
		return "", err
	}
	return role, nil
}

// ListByUniverse returns every membership in the universe ordered by
// CreatedAt, then UserID.
func (s *PostgresStore) ListByUniverse(ctx context.Context, universeID uuid.UUID) ([]Membership, error) {
	const query = `
		SELECT user_id, universe_id, role, created_at
		FROM memberships
		WHERE universe_id = $1
		ORDER BY created_at, user_id`

	rows, err := s.pool.Query(ctx, query, universeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []Membership
	for rows.Next() {
		var m Membership
		if err := rows.Scan(&m.UserID, &m.UniverseID, &m.Role, &m.CreatedAt); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}

// Upsert inserts the membership or, when the user already belongs to the
// universe, replaces its role. CreatedAt is preserved on conflict so the
// resolver's first-membership ordering stays stable across role changes.
func (s *PostgresStore) Upsert(ctx context.Context, m Membership) error {
	const query = `
		INSERT INTO memberships (user_id, universe_id, role, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, universe_id) DO UPDATE SET role = EXCLUDED.role`

	_, err := s.pool.Exec(ctx, query, m.UserID, m.UniverseID, m.Role, m.CreatedAt)
	return err
}

// Delete removes the user's membership in the universe, if present.
func (s *PostgresStore) Delete(ctx context.Context, userID, universeID uuid.UUID) error {
	const query = `DELETE FROM memberships WHERE user_id = $1 AND universe_id = $2`

	_, err := s.pool.Exec(ctx, query, userID, universeID)
	return err
}

// ListByUser returns the user's memberships ordered by CreatedAt, then
// UniverseID, matching the resolver's first-membership selection rule.
func (s *PostgresStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]Membership, error) {
	const query = `
		SELECT user_id, universe_id, role, created_at
		FROM memberships
		WHERE user_id = $1
		ORDER BY created_at, universe_id`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memberships []Membership
	for rows.Next() {
		var m Membership
		if err := rows.Scan(&m.UserID, &m.UniverseID, &m.Role, &m.CreatedAt); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}
