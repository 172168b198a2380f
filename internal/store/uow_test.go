package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-tailor/internal/documents"
)

func TestMemoryUnitOfWorkCommits(t *testing.T) {
	uow := NewMemoryUnitOfWork()
	err := uow.WithinTx(context.Background(), func(ctx context.Context, s Scope) error {
		return s.Documents().Create(ctx, documents.Document{ID: "doc-1", UserID: "user-1"})
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}
	if _, err := uow.DocumentsRepo.GetByID(context.Background(), "doc-1"); err != nil {
		t.Fatalf("document not committed: %v", err)
	}
}

func TestMemoryUnitOfWorkRollsBackAllRepos(t *testing.T) {
	uow := NewMemoryUnitOfWork()
	boom := errors.New("boom")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, s Scope) error {
		if err := s.Documents().Create(ctx, documents.Document{ID: "doc-1", UserID: "user-1"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want the scoped error", err)
	}
	if _, err := uow.DocumentsRepo.GetByID(context.Background(), "doc-1"); !errors.Is(err, documents.ErrNotFound) {
		t.Fatalf("write survived rollback: %v", err)
	}
}

func TestPGUnitOfWorkCommitsOnNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO documents").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	uow := NewPGUnitOfWork(db)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, s Scope) error {
		return s.Documents().Create(ctx, documents.Document{ID: "doc-1", UserID: "user-1"})
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGUnitOfWorkRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	uow := NewPGUnitOfWork(db)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, s Scope) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want the scoped error", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGUnitOfWorkWrapsCommitFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	uow := NewPGUnitOfWork(db)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, s Scope) error {
		return nil
	})
	var txErr *TransactionError
	if !errors.As(err, &txErr) {
		t.Fatalf("got %v, want *TransactionError", err)
	}
	if txErr.Op != "commit" {
		t.Fatalf("got op %q", txErr.Op)
	}
}
