// Package assemble turns a profile and a job description into the
// per-section LaTeX bodies of one document.
package assemble

import (
	"context"
	"fmt"

	"resume-tailor/internal/profiles"
	"resume-tailor/internal/prompts"
	"resume-tailor/internal/provider"
	"resume-tailor/internal/sections"
	"resume-tailor/internal/shared/telemetry"
	"resume-tailor/internal/templates"
)

// Assembler walks the fixed section order and produces content per the
// resolved policy for each section.
type Assembler struct {
	Templates *templates.Cache

	CheckClearance    bool
	ClearanceKeywords []string
}

// Result is the outcome of one assembly pass.
type Result struct {
	Content  map[sections.Section]string
	Warnings []string
	// Degraded is set when at least one section fell back to empty
	// content after a failure.
	Degraded bool
}

// Progress is called after each section completes, pass or fail.
type Progress func(section sections.Section, completed, total int)

// Assemble produces every section in order. Individual section
// failures never abort the run; they degrade to empty content with a
// warning. The only hard stops are the clearance policy, which fires
// before any provider call, and context cancellation.
func (a *Assembler) Assemble(
	ctx context.Context,
	prov provider.Provider,
	profile profiles.Profile,
	jobDescription string,
	policies sections.PolicyMap,
	emit Progress,
) (Result, error) {
	if a.CheckClearance {
		if kw, hit := ContainsClearanceKeyword(jobDescription, a.ClearanceKeywords); hit {
			return Result{}, fmt.Errorf("%w: matched %q", ErrPolicyBlocked, kw)
		}
	}

	result := Result{Content: make(map[sections.Section]string, len(sections.Order))}
	total := len(sections.Order)

	for i, s := range sections.Order {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		action, err := sections.Resolve(s, policies)
		if err != nil {
			return Result{}, err
		}

		content, err := a.produce(ctx, s, action, prov, profile, jobDescription)
		if err != nil {
			warning := fmt.Sprintf("section %s failed, continuing without it: %v", s, err)
			result.Warnings = append(result.Warnings, warning)
			result.Degraded = true
			content = ""
			telemetry.Warn("section degraded", map[string]any{"section": string(s), "error": err.Error()})
		}
		result.Content[s] = content

		if emit != nil {
			emit(s, i+1, total)
		}
	}
	return result, nil
}

func (a *Assembler) produce(
	ctx context.Context,
	s sections.Section,
	action sections.Action,
	prov provider.Provider,
	profile profiles.Profile,
	jobDescription string,
) (string, error) {
	switch action {
	case sections.Omit:
		return "", nil
	case sections.Verbatim:
		return a.renderVerbatim(ctx, s, profile)
	default:
		return a.generate(ctx, s, prov, profile, jobDescription)
	}
}

func (a *Assembler) generate(
	ctx context.Context,
	s sections.Section,
	prov provider.Provider,
	profile profiles.Profile,
	jobDescription string,
) (string, error) {
	instruction, ok := prompts.ForSection(s)
	if !ok {
		return "", fmt.Errorf("%w: %q", sections.ErrUnknownSection, s)
	}

	data, err := sectionData(s, profile)
	if err != nil {
		return "", err
	}
	return prov.GenerateContent(ctx, instruction, data, jobDescription)
}

// sectionData picks the provider payload for a section. Skills go out
// in the category-list text form instead of JSON.
func sectionData(s sections.Section, profile profiles.Profile) (string, error) {
	if s == sections.Skills {
		return profiles.FormatSkills(profile.Skills), nil
	}
	return profile.SectionData(s)
}
