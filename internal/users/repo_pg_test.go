package users

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoEnsureIsIdempotentInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("INSERT INTO users(.|\n)+ON CONFLICT \\(id\\) DO NOTHING").
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO users(.|\n)+ON CONFLICT \\(id\\) DO NOTHING").
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &PGRepo{DB: db}
	if err := repo.Ensure(context.Background(), "user-1"); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if err := repo.Ensure(context.Background(), "user-1"); err != nil {
		t.Fatalf("second Ensure: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT(.|\n)+FROM users").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "display_name", "created_at"}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByID(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestPGRepoExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := &PGRepo{DB: db}
	ok, err := repo.Exists(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !ok {
		t.Fatal("expected user to exist")
	}
}

func TestMemoryRepoEnsureKeepsExistingRow(t *testing.T) {
	repo := NewMemoryRepo()
	seed := User{ID: "user-1", Email: "ada@example.com", DisplayName: "Ada"}
	if err := repo.Create(context.Background(), seed); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Ensure(context.Background(), "user-1"); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	got, err := repo.GetByID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != "ada@example.com" || got.DisplayName != "Ada" {
		t.Fatalf("Ensure clobbered existing row: %+v", got)
	}

	if err := repo.Ensure(context.Background(), "user-2"); err != nil {
		t.Fatalf("Ensure new: %v", err)
	}
	if ok, _ := repo.Exists(context.Background(), "user-2"); !ok {
		t.Fatal("provisioned user missing")
	}
}
