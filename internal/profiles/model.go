// Package profiles holds the candidate profile: the single source of
// truth generation reads from. Decoding from storage happens in one
// place so canonical field names are enforced at the boundary.
package profiles

import (
	"encoding/json"
	"fmt"
	"time"

	"resume-tailor/internal/sections"
)

type Profile struct {
	ID              string             `json:"id"`
	UserID          string             `json:"userId"`
	PersonalInfo    map[string]string  `json:"personalInformation"`
	CareerSummary   CareerSummary      `json:"careerSummary"`
	Skills          []SkillCategory    `json:"skills"`
	WorkExperience  []Experience       `json:"workExperience"`
	Education       []Education        `json:"education"`
	Projects        []Project          `json:"projects"`
	Awards          []Award            `json:"awards"`
	Publications    []Publication      `json:"publications"`
	Narrative       string             `json:"narrative"`
	SectionPolicies sections.PolicyMap `json:"sectionPolicies"`
	Signature       []byte             `json:"-"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

type CareerSummary struct {
	JobTitles         []string `json:"jobTitles"`
	YearsOfExperience string   `json:"yearsOfExperience"`
	DefaultSummary    string   `json:"defaultSummary"`
}

type SkillCategory struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type Experience struct {
	JobTitle         string   `json:"jobTitle"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Period           string   `json:"period"`
	Responsibilities []string `json:"responsibilities"`
}

type Education struct {
	Degree     string   `json:"degree"`
	University string   `json:"university"`
	Location   string   `json:"location"`
	Period     string   `json:"period"`
	KeyCourses []string `json:"keyCourses"`
}

type Project struct {
	Name         string   `json:"name"`
	Technologies string   `json:"technologies"`
	Date         string   `json:"date"`
	BulletPoints []string `json:"bulletPoints"`
}

type Award struct {
	Name        string `json:"name"`
	Explanation string `json:"explanation"`
}

type Publication struct {
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
	Year      string `json:"year"`
	Link      string `json:"link"`
}

// SectionData returns the JSON payload sent to providers for one
// section, or "" for sections with no structured data.
func (p Profile) SectionData(s sections.Section) (string, error) {
	var v any
	switch s {
	case sections.PersonalInformation:
		v = p.PersonalInfo
	case sections.CareerSummary:
		v = p.CareerSummary
	case sections.Skills:
		v = p.Skills
	case sections.WorkExperience:
		v = p.WorkExperience
	case sections.Education:
		v = p.Education
	case sections.Projects:
		v = p.Projects
	case sections.Awards:
		v = p.Awards
	case sections.Publications:
		v = p.Publications
	default:
		return "", fmt.Errorf("%w: %q", sections.ErrUnknownSection, s)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// FormatSkills renders skill categories the way provider prompts
// expect: one "Category:" line followed by a comma-joined item list.
func FormatSkills(skills []SkillCategory) string {
	out := ""
	for _, sc := range skills {
		out += sc.Category + ":\n- " + joinItems(sc.Items) + "\n"
	}
	return out
}

func joinItems(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}
