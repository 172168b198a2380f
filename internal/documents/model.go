// Package documents holds the generated document entity: one tailored
// résumé (and optionally its cover letter) per generation run.
package documents

import (
	"time"

	"resume-tailor/internal/sections"
)

type Document struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	CompanyName    string `json:"companyName"`
	JobTitle       string `json:"jobTitle"`
	JobDescription string `json:"jobDescription"`

	PersonalInformation string `json:"personalInformation"`
	CareerSummary       string `json:"careerSummary"`
	Skills              string `json:"skills"`
	WorkExperience      string `json:"workExperience"`
	Education           string `json:"education"`
	Projects            string `json:"projects"`
	Awards              string `json:"awards"`
	Publications        string `json:"publications"`

	ResumePDF          []byte `json:"-"`
	CoverLetterContent string `json:"coverLetterContent"`
	CoverLetterPDF     []byte `json:"-"`
	ArtifactKey        string `json:"artifactKey"`

	ProviderName string  `json:"providerName"`
	ModelName    string  `json:"modelName"`
	Temperature  float64 `json:"temperature"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SectionContent returns the stored text for a section.
func (d Document) SectionContent(s sections.Section) string {
	switch s {
	case sections.PersonalInformation:
		return d.PersonalInformation
	case sections.CareerSummary:
		return d.CareerSummary
	case sections.Skills:
		return d.Skills
	case sections.WorkExperience:
		return d.WorkExperience
	case sections.Education:
		return d.Education
	case sections.Projects:
		return d.Projects
	case sections.Awards:
		return d.Awards
	case sections.Publications:
		return d.Publications
	}
	return ""
}

// SetSection stores text for a section. Unknown sections are ignored;
// callers validate names before reaching the entity.
func (d *Document) SetSection(s sections.Section, content string) {
	switch s {
	case sections.PersonalInformation:
		d.PersonalInformation = content
	case sections.CareerSummary:
		d.CareerSummary = content
	case sections.Skills:
		d.Skills = content
	case sections.WorkExperience:
		d.WorkExperience = content
	case sections.Education:
		d.Education = content
	case sections.Projects:
		d.Projects = content
	case sections.Awards:
		d.Awards = content
	case sections.Publications:
		d.Publications = content
	}
}
