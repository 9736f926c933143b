package universe

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lorekit/lorekit/pkg/pg"
)

// PostgresStorage is a Storage backed by the universes table.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage creates a universe storage on top of the connection
// pool.
func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

func (s *PostgresStorage) Create(ctx context.Context, u Universe) error {
	const query = `
		INSERT INTO universes (id, owner_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.pool.Exec(ctx, query, u.ID, u.OwnerID, u.Name, u.Description, u.CreatedAt, u.UpdatedAt)
	if pg.IsDuplicateKeyError(err) {
		return errors.Join(ErrUniverseExists, err)
	}
	return err
}

func (s *PostgresStorage) Get(ctx context.Context, id uuid.UUID) (Universe, error) {
	const query = `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM universes
		WHERE id = $1`

	var u Universe
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.OwnerID, &u.Name, &u.Description, &u.CreatedAt, &u.UpdatedAt,
	)
	if pg.IsNotFoundError(err) {
		return Universe{}, ErrUniverseNotFound
	}
	if err != nil {
		return Universe{}, err
	}
	return u, nil
}

func (s *PostgresStorage) List(ctx context.Context) ([]Universe, error) {
	const query = `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM universes
		ORDER BY created_at, id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var universes []Universe
	for rows.Next() {
		var u Universe
		if err := rows.Scan(&u.ID, &u.OwnerID, &u.Name, &u.Description, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		universes = append(universes, u)
	}
	return universes, rows.Err()
}

func (s *PostgresStorage) Update(ctx context.Context, u Universe) error {
	const query = `
		UPDATE universes
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query, u.ID, u.Name, u.Description, u.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUniverseNotFound
	}
	return nil
}

func (s *PostgresStorage) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM universes WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUniverseNotFound
	}
	return nil
}
