package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type PGRepo struct {
	DB Querier
}

// profileDoc is the JSONB shape of the data column. Identity, signature
// and timestamps live in their own columns.
type profileDoc struct {
	PersonalInfo    map[string]string `json:"personalInformation"`
	CareerSummary   CareerSummary     `json:"careerSummary"`
	Skills          []SkillCategory   `json:"skills"`
	WorkExperience  []Experience      `json:"workExperience"`
	Education       []Education       `json:"education"`
	Projects        []Project         `json:"projects"`
	Awards          []Award           `json:"awards"`
	Publications    []Publication     `json:"publications"`
	Narrative       string            `json:"narrative"`
	SectionPolicies map[string]string `json:"sectionPolicies"`
}

func (r *PGRepo) GetByUser(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT id, user_id, data, signature, created_at, updated_at
FROM profiles
WHERE user_id = $1
LIMIT 1`
	var profile Profile
	var raw []byte
	var signature []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&raw,
		&signature,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	if err := decodeDoc(raw, &profile); err != nil {
		return Profile{}, fmt.Errorf("decode profile %s: %w", profile.ID, err)
	}
	profile.Signature = signature
	return profile, nil
}

func (r *PGRepo) Upsert(ctx context.Context, profile Profile) error {
	raw, err := encodeDoc(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	const query = `
INSERT INTO profiles (id, user_id, data, signature, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
  data = EXCLUDED.data,
  signature = EXCLUDED.signature,
  updated_at = now()`
	_, err = r.DB.ExecContext(ctx, query, profile.ID, profile.UserID, raw, nullableBytes(profile.Signature))
	return err
}

func (r *PGRepo) Delete(ctx context.Context, userID string) error {
	const query = `DELETE FROM profiles WHERE user_id = $1`
	res, err := r.DB.ExecContext(ctx, query, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Exists(ctx context.Context, userID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM profiles WHERE user_id = $1)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func encodeDoc(p Profile) ([]byte, error) {
	doc := profileDoc{
		PersonalInfo:    p.PersonalInfo,
		CareerSummary:   p.CareerSummary,
		Skills:          p.Skills,
		WorkExperience:  p.WorkExperience,
		Education:       p.Education,
		Projects:        p.Projects,
		Awards:          p.Awards,
		Publications:    p.Publications,
		Narrative:       p.Narrative,
		SectionPolicies: policiesToStrings(p.SectionPolicies),
	}
	return json.Marshal(doc)
}

func decodeDoc(raw []byte, p *Profile) error {
	var doc profileDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	p.PersonalInfo = doc.PersonalInfo
	p.CareerSummary = doc.CareerSummary
	p.Skills = doc.Skills
	p.WorkExperience = doc.WorkExperience
	p.Education = doc.Education
	p.Projects = doc.Projects
	p.Awards = doc.Awards
	p.Publications = doc.Publications
	p.Narrative = doc.Narrative
	p.SectionPolicies = policiesFromStrings(doc.SectionPolicies)
	return nil
}

func nullableBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}

var _ Repo = (*PGRepo)(nil)
