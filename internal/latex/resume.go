package latex

import (
	"strings"

	"resume-tailor/internal/sections"
)

// Section titles used as source comment markers.
var sectionTitles = map[sections.Section]string{
	sections.PersonalInformation: "Personal Information",
	sections.CareerSummary:       "Career Summary",
	sections.Skills:              "Skills",
	sections.WorkExperience:      "Work Experience",
	sections.Education:           "Education",
	sections.Projects:            "Projects",
	sections.Awards:              "Awards",
	sections.Publications:        "Publications",
}

// BuildResumeSource concatenates the preamble and the section bodies
// in the fixed order into one compilable document. Empty sections
// still get their marker so sources stay diffable across runs.
func BuildResumeSource(preamble string, content map[sections.Section]string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimRight(preamble, "\n"))
	sb.WriteString("\n\\begin{document}\n")
	for _, s := range sections.Order {
		sb.WriteString("\n% ")
		sb.WriteString(sectionTitles[s])
		sb.WriteString("\n")
		if body := strings.TrimSpace(content[s]); body != "" {
			sb.WriteString(body)
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n\\end{document}\n")
	return sb.String()
}
