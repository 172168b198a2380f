package users

import (
	"context"
	"database/sql"
)

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "user not found" }

type Repo interface {
	Create(ctx context.Context, user User) error
	// Ensure provisions a bare user row for an externally issued
	// identity without touching an existing row's fields.
	Ensure(ctx context.Context, userID string) error
	GetByID(ctx context.Context, userID string) (User, error)
	Exists(ctx context.Context, userID string) (bool, error)
}

// Querier is satisfied by *sql.DB and *sql.Tx so repos run both
// standalone and inside a unit-of-work scope.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
