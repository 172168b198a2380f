package documents

import (
	"context"
	"database/sql"
)

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "document not found" }

type Repo interface {
	Create(ctx context.Context, doc Document) error
	Update(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, id string) (Document, error)
	GetLatestByUser(ctx context.Context, userID string) (Document, error)
	ListByUser(ctx context.Context, userID string) ([]Document, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

// Querier is satisfied by *sql.DB and *sql.Tx so repos run both
// standalone and inside a unit-of-work scope.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
