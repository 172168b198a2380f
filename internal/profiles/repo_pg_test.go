package profiles

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-tailor/internal/sections"
)

func TestPGRepoGetByUserDecodesDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	data := `{
		"personalInformation": {"name": "Ada"},
		"skills": [{"category": "Languages", "items": ["Go", "Python"]}],
		"sectionPolicies": {"skills": "verbatim"}
	}`
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "data", "signature", "created_at", "updated_at"}).
		AddRow("p1", "user-1", []byte(data), []byte{0x89, 0x50}, now, now)
	mock.ExpectQuery("SELECT(.|\n)+FROM profiles").
		WithArgs("user-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	profile, err := repo.GetByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if profile.PersonalInfo["name"] != "Ada" {
		t.Fatalf("got personal info %v", profile.PersonalInfo)
	}
	if len(profile.Skills) != 1 || profile.Skills[0].Category != "Languages" {
		t.Fatalf("got skills %v", profile.Skills)
	}
	if profile.SectionPolicies[sections.Skills] != sections.Verbatim {
		t.Fatalf("got policies %v", profile.SectionPolicies)
	}
	if len(profile.Signature) != 2 {
		t.Fatalf("got signature %v", profile.Signature)
	}
}

func TestPGRepoGetByUserNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT(.|\n)+FROM profiles").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "data", "signature", "created_at", "updated_at"}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByUser(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestPGRepoUpsertEncodesPolicies(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs("p1", "user-1", sqlmock.AnyArg(), nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := &PGRepo{DB: db}
	profile := Profile{
		ID:     "p1",
		UserID: "user-1",
		SectionPolicies: sections.PolicyMap{
			sections.Awards: sections.Omit,
		},
	}
	if err := repo.Upsert(context.Background(), profile); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
