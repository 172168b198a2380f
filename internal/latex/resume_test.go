package latex

import (
	"strings"
	"testing"

	"resume-tailor/internal/sections"
)

func TestBuildResumeSourceFixedOrder(t *testing.T) {
	source := BuildResumeSource("\\documentclass{article}", map[sections.Section]string{
		sections.Skills:              "\\section*{Skills} Go",
		sections.PersonalInformation: "\\begin{center}Ada\\end{center}",
	})

	if !strings.HasPrefix(source, "\\documentclass{article}\n\\begin{document}\n") {
		t.Fatalf("bad prefix: %q", source[:50])
	}
	if !strings.HasSuffix(source, "\\end{document}\n") {
		t.Fatal("missing document end")
	}

	personal := strings.Index(source, "% Personal Information")
	skills := strings.Index(source, "% Skills")
	awards := strings.Index(source, "% Awards")
	if personal < 0 || skills < 0 || awards < 0 {
		t.Fatal("missing section markers")
	}
	if !(personal < skills && skills < awards) {
		t.Fatalf("markers out of order: %d %d %d", personal, skills, awards)
	}
	if !strings.Contains(source, "\\section*{Skills} Go") {
		t.Fatal("missing skills body")
	}
}
