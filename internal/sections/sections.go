// Package sections defines the fixed document section set and the
// per-section policy resolution used to drive generation.
package sections

import (
	"errors"
	"fmt"
)

// Section identifies one block of a generated document.
type Section string

const (
	PersonalInformation Section = "personal_information"
	CareerSummary       Section = "career_summary"
	Skills              Section = "skills"
	WorkExperience      Section = "work_experience"
	Education           Section = "education"
	Projects            Section = "projects"
	Awards              Section = "awards"
	Publications        Section = "publications"
)

// Order is the fixed assembly and rendering order for all sections.
var Order = []Section{
	PersonalInformation,
	CareerSummary,
	Skills,
	WorkExperience,
	Education,
	Projects,
	Awards,
	Publications,
}

// Action decides how a section's content is produced.
type Action string

const (
	// Generate produces the section with a content provider.
	Generate Action = "generate"
	// Verbatim renders the section directly from profile data.
	Verbatim Action = "verbatim"
	// Omit contributes an empty section.
	Omit Action = "omit"
)

// PolicyMap maps sections to the action used to produce them.
// Sections without an entry default to Generate.
type PolicyMap map[Section]Action

// ErrUnknownSection indicates a section name outside the fixed set.
var ErrUnknownSection = errors.New("unknown section")

var known = func() map[Section]struct{} {
	m := make(map[Section]struct{}, len(Order))
	for _, s := range Order {
		m[s] = struct{}{}
	}
	return m
}()

// Valid reports whether s is part of the fixed section set.
func Valid(s Section) bool {
	_, ok := known[s]
	return ok
}

// Resolve returns the action for a section under the given policies.
// Missing entries default to Generate. Unknown section names are a
// caller bug and fail with ErrUnknownSection.
func Resolve(s Section, policies PolicyMap) (Action, error) {
	if !Valid(s) {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
	}
	if action, ok := policies[s]; ok {
		switch action {
		case Generate, Verbatim, Omit:
			return action, nil
		}
	}
	return Generate, nil
}

// Merge overlays per-request overrides on a stored policy map without
// mutating either input.
func Merge(base, overrides PolicyMap) PolicyMap {
	out := make(PolicyMap, len(base)+len(overrides))
	for s, a := range base {
		out[s] = a
	}
	for s, a := range overrides {
		out[s] = a
	}
	return out
}
