package store

import (
	"context"
	"database/sql"
	"errors"

	"resume-tailor/internal/documents"
	"resume-tailor/internal/profiles"
	"resume-tailor/internal/templates"
	"resume-tailor/internal/users"
)

// PGUnitOfWork runs scopes on database/sql transactions.
type PGUnitOfWork struct {
	DB *sql.DB
}

func NewPGUnitOfWork(db *sql.DB) *PGUnitOfWork {
	return &PGUnitOfWork{DB: db}
}

type pgScope struct {
	tx *sql.Tx
}

func (s *pgScope) Users() users.Repo         { return &users.PGRepo{DB: s.tx} }
func (s *pgScope) Profiles() profiles.Repo   { return &profiles.PGRepo{DB: s.tx} }
func (s *pgScope) Documents() documents.Repo { return &documents.PGRepo{DB: s.tx} }
func (s *pgScope) Templates() templates.Repo { return &templates.PGRepo{DB: s.tx} }

func (u *PGUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, s Scope) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return &TransactionError{Op: "begin", Err: err}
	}

	if err := fn(ctx, &pgScope{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return &TransactionError{Op: "rollback", Err: errors.Join(err, rbErr)}
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return &TransactionError{Op: "commit", Err: err}
	}
	return nil
}

var _ UnitOfWork = (*PGUnitOfWork)(nil)
