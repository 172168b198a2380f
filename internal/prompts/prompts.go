// Package prompts holds the embedded model instructions, one per
// resume section plus the cover-letter and naming prompts.
package prompts

import (
	_ "embed"

	"resume-tailor/internal/sections"
)

var (
	//go:embed prompts/personal.txt
	personal string
	//go:embed prompts/career_summary.txt
	careerSummary string
	//go:embed prompts/skills.txt
	skills string
	//go:embed prompts/work_experience.txt
	workExperience string
	//go:embed prompts/education.txt
	education string
	//go:embed prompts/projects.txt
	projects string
	//go:embed prompts/awards.txt
	awards string
	//go:embed prompts/publications.txt
	publications string
	//go:embed prompts/cover_letter.txt
	coverLetter string
	//go:embed prompts/folder_name.txt
	folderName string
)

// ForSection returns the generation instruction for a section and
// whether the section has one.
func ForSection(s sections.Section) (string, bool) {
	switch s {
	case sections.PersonalInformation:
		return personal, true
	case sections.CareerSummary:
		return careerSummary, true
	case sections.Skills:
		return skills, true
	case sections.WorkExperience:
		return workExperience, true
	case sections.Education:
		return education, true
	case sections.Projects:
		return projects, true
	case sections.Awards:
		return awards, true
	case sections.Publications:
		return publications, true
	default:
		return "", false
	}
}

// CoverLetter returns the cover-letter body instruction.
func CoverLetter() string { return coverLetter }

// FolderName returns the company/title extraction instruction.
func FolderName() string { return folderName }
