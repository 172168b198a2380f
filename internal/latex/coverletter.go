package latex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const signatureFileName = "signature.png"

// CoverLetterInput carries everything the letter template needs.
type CoverLetterInput struct {
	Name        string
	Phone       string
	Email       string
	LinkedIn    string
	GitHub      string
	Address     string
	CompanyName string
	JobTitle    string
	Body        string
	Signature   []byte
}

// BuildCoverLetterSource fills the letter template with escaped
// values. When a signature image is present it is written into the
// build directory and a \graphicspath pointing there is injected
// before \begin{document} so pdflatex can resolve it regardless of
// the working directory.
func BuildCoverLetterSource(template string, in CoverLetterInput, buildDir string) (string, error) {
	values := map[string]string{
		"NAME":                 Escape(in.Name),
		"PHONE":                Escape(in.Phone),
		"EMAIL":                Escape(in.Email),
		"LINKEDIN":             Escape(in.LinkedIn),
		"GITHUB":               Escape(in.GitHub),
		"ADDRESS":              Escape(in.Address),
		"COMPANY_NAME":         Escape(in.CompanyName),
		"JOB_TITLE":            Escape(in.JobTitle),
		"COVER_LETTER_CONTENT": escapeParagraphs(in.Body),
		"SIGNATURE":            "",
	}

	if len(in.Signature) > 0 {
		sigPath := filepath.Join(buildDir, signatureFileName)
		if err := os.WriteFile(sigPath, in.Signature, 0o600); err != nil {
			return "", fmt.Errorf("write signature image: %w", err)
		}
		values["SIGNATURE"] = `\includegraphics[width=3.5cm]{` + signatureFileName + `}\\`
	}

	source, err := Fill(template, values)
	if err != nil {
		return "", err
	}
	if len(in.Signature) > 0 {
		graphicsPath := `\graphicspath{{` + filepath.ToSlash(buildDir) + `/}}` + "\n"
		const begin = `\begin{document}`
		if i := strings.Index(source, begin); i >= 0 {
			source = source[:i] + graphicsPath + source[i:]
		} else {
			source = graphicsPath + source
		}
	}
	return source, nil
}

// escapeParagraphs escapes letter body text paragraph by paragraph so
// blank-line breaks survive.
func escapeParagraphs(body string) string {
	paragraphs := strings.Split(body, "\n\n")
	for i, p := range paragraphs {
		paragraphs[i] = Escape(strings.TrimSpace(p))
	}
	return strings.Join(paragraphs, "\n\n")
}
