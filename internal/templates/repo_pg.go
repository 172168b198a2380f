package templates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type PGRepo struct {
	DB Querier
}

func (r *PGRepo) Create(ctx context.Context, tpl Template) error {
	const query = `
INSERT INTO templates (id, name, kind, version, content, created_at)
VALUES ($1, $2, $3, $4, $5, now())`
	if tpl.Version <= 0 {
		tpl.Version = 1
	}
	_, err := r.DB.ExecContext(ctx, query, tpl.ID, tpl.Name, tpl.Kind, tpl.Version, tpl.Content)
	return err
}

// GetByName returns the highest version for a name.
func (r *PGRepo) GetByName(ctx context.Context, name string) (Template, error) {
	const query = `
SELECT id, name, kind, version, content, created_at
FROM templates
WHERE name = $1
ORDER BY version DESC
LIMIT 1`
	var tpl Template
	err := r.DB.QueryRowContext(ctx, query, name).Scan(
		&tpl.ID, &tpl.Name, &tpl.Kind, &tpl.Version, &tpl.Content, &tpl.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Template{}, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return Template{}, err
	}
	return tpl, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Template, error) {
	const query = `
SELECT id, name, kind, version, content, created_at
FROM templates
WHERE id = $1
LIMIT 1`
	var tpl Template
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&tpl.ID, &tpl.Name, &tpl.Kind, &tpl.Version, &tpl.Content, &tpl.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Template{}, fmt.Errorf("%w: id %q", ErrNotFound, id)
		}
		return Template{}, err
	}
	return tpl, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Template, error) {
	const query = `
SELECT id, name, kind, version, content, created_at
FROM templates
ORDER BY name, version DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Template
	for rows.Next() {
		var tpl Template
		if err := rows.Scan(&tpl.ID, &tpl.Name, &tpl.Kind, &tpl.Version, &tpl.Content, &tpl.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, tpl)
	}
	return out, rows.Err()
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM templates WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: id %q", ErrNotFound, id)
	}
	return nil
}

func (r *PGRepo) Exists(ctx context.Context, name string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM templates WHERE name = $1)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

var _ Repo = (*PGRepo)(nil)
