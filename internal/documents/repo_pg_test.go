package documents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateStoresProviderSnapshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := Document{
		ID:             "doc-1",
		UserID:         "user-1",
		CompanyName:    "Acme",
		JobTitle:       "Engineer",
		JobDescription: "jd",
		CareerSummary:  "\\section*{Career Summary} text",
		ResumePDF:      []byte("%PDF-1.5"),
		ArtifactKey:    "abc/resume.pdf",
		ProviderName:   "openai",
		ModelName:      "gpt-4o-mini",
		Temperature:    0.3,
	}

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(
			doc.ID, doc.UserID, doc.CompanyName, doc.JobTitle, doc.JobDescription,
			doc.PersonalInformation, doc.CareerSummary, doc.Skills, doc.WorkExperience,
			doc.Education, doc.Projects, doc.Awards, doc.Publications,
			doc.ResumePDF, doc.CoverLetterContent, nil, doc.ArtifactKey,
			doc.ProviderName, doc.ModelName, doc.Temperature,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func documentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "company_name", "job_title", "job_description",
		"personal_information", "career_summary", "skills", "work_experience",
		"education", "projects", "awards", "publications",
		"resume_pdf", "cover_letter_content", "cover_letter_pdf", "artifact_key",
		"provider_name", "model_name", "temperature", "created_at", "updated_at",
	})
}

func TestPGRepoGetLatestByUserOrdersByCreatedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	rows := documentRows().AddRow(
		"doc-2", "user-1", "Acme", "Engineer", "jd",
		"", "", "", "", "", "", "", "",
		[]byte("%PDF"), "", nil, "key",
		"openai", "gpt-4o-mini", 0.3, now, now,
	)
	mock.ExpectQuery("SELECT(.|\n)+FROM documents(.|\n)+ORDER BY created_at DESC(.|\n)+LIMIT 1").
		WithArgs("user-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	doc, err := repo.GetLatestByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetLatestByUser: %v", err)
	}
	if doc.ID != "doc-2" {
		t.Fatalf("got %q", doc.ID)
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

	mock.ExpectQuery("SELECT(.|\n)+FROM documents").
		WithArgs("missing").
		WillReturnRows(documentRows())

	repo := &PGRepo{DB: db}
	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestPGRepoUpdateMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("UPDATE documents SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &PGRepo{DB: db}
	if err := repo.Update(context.Background(), Document{ID: "missing"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
