package users

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB Querier
}

func (r *PGRepo) Create(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, email, display_name, created_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (id) DO UPDATE SET
  email = EXCLUDED.email,
  display_name = EXCLUDED.display_name`
	_, err := r.DB.ExecContext(ctx, query, user.ID, user.Email, user.DisplayName)
	return err
}

func (r *PGRepo) Ensure(ctx context.Context, userID string) error {
	const query = `
INSERT INTO users (id, email, display_name, created_at)
VALUES ($1, '', '', now())
ON CONFLICT (id) DO NOTHING`
	_, err := r.DB.ExecContext(ctx, query, userID)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, email, display_name, created_at
FROM users
WHERE id = $1
LIMIT 1`
	var user User
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

func (r *PGRepo) Exists(ctx context.Context, userID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

var _ Repo = (*PGRepo)(nil)
