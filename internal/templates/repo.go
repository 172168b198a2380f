package templates

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound indicates a missing template name. Generation treats it
// as a hard failure: compiling without a preamble cannot succeed.
var ErrNotFound = errors.New("template not found")

type Repo interface {
	Create(ctx context.Context, tpl Template) error
	GetByName(ctx context.Context, name string) (Template, error)
	GetByID(ctx context.Context, id string) (Template, error)
	List(ctx context.Context) ([]Template, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, name string) (bool, error)
}

// Querier is satisfied by *sql.DB and *sql.Tx so repos run both
// standalone and inside a unit-of-work scope.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
