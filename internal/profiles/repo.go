package profiles

import (
	"context"
	"database/sql"
)

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "profile not found" }

// Repo stores one profile per user.
type Repo interface {
	GetByUser(ctx context.Context, userID string) (Profile, error)
	Upsert(ctx context.Context, profile Profile) error
	Delete(ctx context.Context, userID string) error
	Exists(ctx context.Context, userID string) (bool, error)
}

// Querier is satisfied by *sql.DB and *sql.Tx so repos run both
// standalone and inside a unit-of-work scope.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
