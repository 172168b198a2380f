// Package templates stores the named, versioned LaTeX building blocks:
// the résumé preamble, the cover-letter shell and the per-section
// sub-templates used for verbatim rendering.
package templates

import "time"

// Template kinds.
const (
	KindPreamble    = "preamble"
	KindCoverLetter = "cover_letter"
	KindSection     = "section"
)

// Well-known template names.
const (
	NamePreamble    = "preamble"
	NameCoverLetter = "cover_letter"
)

type Template struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Version   int       `json:"version"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
