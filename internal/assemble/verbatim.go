package assemble

import (
	"context"
	"fmt"
	"strings"

	"resume-tailor/internal/latex"
	"resume-tailor/internal/profiles"
	"resume-tailor/internal/sections"
)

// renderVerbatim produces a section straight from profile data through
// its stored sub-template, with no model involvement.
func (a *Assembler) renderVerbatim(ctx context.Context, s sections.Section, profile profiles.Profile) (string, error) {
	tpl, err := a.Templates.Get(ctx, string(s))
	if err != nil {
		return "", err
	}

	var values map[string]string
	switch s {
	case sections.PersonalInformation:
		values = personalValues(profile.PersonalInfo)
	case sections.CareerSummary:
		values = map[string]string{"SUMMARY": latex.Escape(profile.CareerSummary.DefaultSummary)}
	case sections.Skills:
		values = map[string]string{"ITEMS": skillItems(profile.Skills)}
	case sections.WorkExperience:
		values = map[string]string{"ITEMS": experienceItems(profile.WorkExperience)}
	case sections.Education:
		values = map[string]string{"ITEMS": educationItems(profile.Education)}
	case sections.Projects:
		values = map[string]string{"ITEMS": projectItems(profile.Projects)}
	case sections.Awards:
		values = map[string]string{"ITEMS": awardItems(profile.Awards)}
	case sections.Publications:
		values = map[string]string{"ITEMS": publicationItems(profile.Publications)}
	default:
		return "", fmt.Errorf("%w: %q", sections.ErrUnknownSection, s)
	}

	return latex.Fill(tpl, values)
}

func personalValues(info map[string]string) map[string]string {
	var contact []string
	for _, key := range []string{"phone", "email", "linkedin", "github", "address"} {
		if v := info[key]; v != "" {
			contact = append(contact, latex.Escape(v))
		}
	}
	return map[string]string{
		"NAME":         latex.Escape(info["name"]),
		"CONTACT_LINE": strings.Join(contact, " \\quad "),
	}
}

func skillItems(skills []profiles.SkillCategory) string {
	var sb strings.Builder
	for _, sc := range skills {
		items := make([]string, len(sc.Items))
		for i, item := range sc.Items {
			items[i] = latex.Escape(item)
		}
		fmt.Fprintf(&sb, "\\item \\textbf{%s:} %s\n", latex.Escape(sc.Category), strings.Join(items, ", "))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func experienceItems(jobs []profiles.Experience) string {
	var sb strings.Builder
	for _, job := range jobs {
		fmt.Fprintf(&sb, "\\textbf{%s}, %s, %s \\hfill %s\n",
			latex.Escape(job.JobTitle), latex.Escape(job.Company), latex.Escape(job.Location), latex.Escape(job.Period))
		sb.WriteString(bulletList(job.Responsibilities))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func educationItems(entries []profiles.Education) string {
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "\\textbf{%s}, %s, %s \\hfill %s\n",
			latex.Escape(e.Degree), latex.Escape(e.University), latex.Escape(e.Location), latex.Escape(e.Period))
		if len(e.KeyCourses) > 0 {
			courses := make([]string, len(e.KeyCourses))
			for i, c := range e.KeyCourses {
				courses[i] = latex.Escape(c)
			}
			fmt.Fprintf(&sb, "Key courses: %s\\\\\n", strings.Join(courses, ", "))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func projectItems(projects []profiles.Project) string {
	var sb strings.Builder
	for _, p := range projects {
		fmt.Fprintf(&sb, "\\textbf{%s} (%s) \\hfill %s\n",
			latex.Escape(p.Name), latex.Escape(p.Technologies), latex.Escape(p.Date))
		sb.WriteString(bulletList(p.BulletPoints))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func awardItems(awards []profiles.Award) string {
	var sb strings.Builder
	for _, a := range awards {
		fmt.Fprintf(&sb, "\\item \\textbf{%s}: %s\n", latex.Escape(a.Name), latex.Escape(a.Explanation))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func publicationItems(pubs []profiles.Publication) string {
	var sb strings.Builder
	for _, p := range pubs {
		fmt.Fprintf(&sb, "\\item \\textbf{%s}, %s, %s", latex.Escape(p.Name), latex.Escape(p.Publisher), latex.Escape(p.Year))
		if p.Link != "" {
			fmt.Fprintf(&sb, " \\,\\url{%s}", p.Link)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func bulletList(points []string) string {
	if len(points) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\\begin{itemize}\n")
	for _, p := range points {
		sb.WriteString("\\item " + latex.Escape(p) + "\n")
	}
	sb.WriteString("\\end{itemize}\n")
	return sb.String()
}
