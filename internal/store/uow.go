// Package store groups the entity repositories behind a unit of work
// so one generation run commits or rolls back as a whole.
package store

import (
	"context"
	"fmt"

	"resume-tailor/internal/documents"
	"resume-tailor/internal/profiles"
	"resume-tailor/internal/templates"
	"resume-tailor/internal/users"
)

// Scope exposes the typed repositories bound to one transaction.
type Scope interface {
	Users() users.Repo
	Profiles() profiles.Repo
	Documents() documents.Repo
	Templates() templates.Repo
}

// UnitOfWork runs a function inside a transaction scope. A nil return
// commits; any error rolls back every write made through the scope.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, s Scope) error) error
}

// TransactionError wraps a failure of the transaction machinery itself
// (begin, commit, rollback). Errors returned by the scoped function
// pass through unchanged so domain sentinels stay matchable.
type TransactionError struct {
	Op  string
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction %s: %v", e.Op, e.Err)
}

func (e *TransactionError) Unwrap() error { return e.Err }
