package documents

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB Querier
}

const documentColumns = `
id, user_id, company_name, job_title, job_description,
personal_information, career_summary, skills, work_experience,
education, projects, awards, publications,
resume_pdf, cover_letter_content, cover_letter_pdf, artifact_key,
provider_name, model_name, temperature, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
  id, user_id, company_name, job_title, job_description,
  personal_information, career_summary, skills, work_experience,
  education, projects, awards, publications,
  resume_pdf, cover_letter_content, cover_letter_pdf, artifact_key,
  provider_name, model_name, temperature, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		doc.ID, doc.UserID, doc.CompanyName, doc.JobTitle, doc.JobDescription,
		doc.PersonalInformation, doc.CareerSummary, doc.Skills, doc.WorkExperience,
		doc.Education, doc.Projects, doc.Awards, doc.Publications,
		nullableBytes(doc.ResumePDF), doc.CoverLetterContent, nullableBytes(doc.CoverLetterPDF), doc.ArtifactKey,
		doc.ProviderName, doc.ModelName, doc.Temperature,
	)
	return err
}

func (r *PGRepo) Update(ctx context.Context, doc Document) error {
	const query = `
UPDATE documents SET
  company_name = $2, job_title = $3, job_description = $4,
  personal_information = $5, career_summary = $6, skills = $7,
  work_experience = $8, education = $9, projects = $10,
  awards = $11, publications = $12,
  resume_pdf = $13, cover_letter_content = $14, cover_letter_pdf = $15,
  artifact_key = $16, provider_name = $17, model_name = $18,
  temperature = $19, updated_at = now()
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		doc.ID, doc.CompanyName, doc.JobTitle, doc.JobDescription,
		doc.PersonalInformation, doc.CareerSummary, doc.Skills,
		doc.WorkExperience, doc.Education, doc.Projects,
		doc.Awards, doc.Publications,
		nullableBytes(doc.ResumePDF), doc.CoverLetterContent, nullableBytes(doc.CoverLetterPDF),
		doc.ArtifactKey, doc.ProviderName, doc.ModelName, doc.Temperature,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 LIMIT 1`
	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

func (r *PGRepo) GetLatestByUser(ctx context.Context, userID string) (Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`
	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM documents WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Exists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM documents WHERE id = $1)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	var resumePDF, coverLetterPDF []byte
	err := row.Scan(
		&doc.ID, &doc.UserID, &doc.CompanyName, &doc.JobTitle, &doc.JobDescription,
		&doc.PersonalInformation, &doc.CareerSummary, &doc.Skills, &doc.WorkExperience,
		&doc.Education, &doc.Projects, &doc.Awards, &doc.Publications,
		&resumePDF, &doc.CoverLetterContent, &coverLetterPDF, &doc.ArtifactKey,
		&doc.ProviderName, &doc.ModelName, &doc.Temperature,
		&doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		return Document{}, err
	}
	doc.ResumePDF = resumePDF
	doc.CoverLetterPDF = coverLetterPDF
	return doc, nil
}

func nullableBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}

var _ Repo = (*PGRepo)(nil)
