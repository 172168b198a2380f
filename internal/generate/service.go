// Package generate orchestrates one document generation run: policy
// check, section assembly, LaTeX compilation and transactional
// persistence, reported through a progress event stream.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-tailor/internal/assemble"
	"resume-tailor/internal/documents"
	"resume-tailor/internal/latex"
	"resume-tailor/internal/profiles"
	"resume-tailor/internal/prompts"
	"resume-tailor/internal/provider"
	"resume-tailor/internal/sections"
	"resume-tailor/internal/shared/metrics"
	"resume-tailor/internal/shared/storage/object"
	"resume-tailor/internal/shared/telemetry"
	"resume-tailor/internal/store"
	"resume-tailor/internal/templates"
)

// Type selects what a run produces.
type Type string

const (
	TypeResume      Type = "resume"
	TypeCoverLetter Type = "cover_letter"
	TypeBoth        Type = "both"
)

// Request describes one generation run.
type Request struct {
	UserID         string             `json:"-"`
	JobDescription string             `json:"jobDescription"`
	Type           Type               `json:"type"`
	Overrides      sections.PolicyMap `json:"overrides"`
	// DocumentID anchors a cover-letter run on an existing document.
	// Empty means the user's latest document.
	DocumentID string            `json:"documentId"`
	Provider   ProviderSelection `json:"provider"`
}

// ProviderSelection is the request-side provider override. Temperature
// is a pointer so an explicit zero survives default filling.
type ProviderSelection struct {
	Name        string   `json:"name"`
	Model       string   `json:"model"`
	Temperature *float64 `json:"temperature"`
	MaxTokens   int      `json:"maxTokens"`
}

// ProviderFactory builds a vendor client for a validated config.
type ProviderFactory func(cfg provider.Config) (provider.Provider, error)

// Service wires the pipeline together.
type Service struct {
	UOW         store.UnitOfWork
	Assembler   *assemble.Assembler
	Compiler    *latex.Compiler
	Templates   *templates.Cache
	Objects     object.ObjectStore
	NewProvider ProviderFactory

	OutputDir       string
	DefaultProvider provider.Config

	// Verify overrides artifact verification. Nil means the real
	// PDF parse check.
	Verify func([]byte) error
}

func (s *Service) verifyArtifact(pdf []byte) error {
	if s.Verify != nil {
		return s.Verify(pdf)
	}
	return latex.VerifyPDF(pdf)
}

// Generate validates the request, resolves the cover-letter anchor if
// one is needed, and returns a stream of progress events. The run
// itself is lazy: it advances only as events are consumed, and stops
// when ctx is cancelled. Setup failures return a direct error and no
// channel.
func (s *Service) Generate(ctx context.Context, req Request) (<-chan Event, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(req.JobDescription) == "" && req.Type != TypeCoverLetter {
		return nil, fmt.Errorf("%w: job description is required", ErrInvalidRequest)
	}
	switch req.Type {
	case TypeResume, TypeCoverLetter, TypeBoth:
	default:
		return nil, fmt.Errorf("%w: unknown generation type %q", ErrInvalidRequest, req.Type)
	}
	for section := range req.Overrides {
		if !sections.Valid(section) {
			return nil, fmt.Errorf("%w: %q", sections.ErrUnknownSection, section)
		}
	}

	cfg := s.effectiveConfig(req.Provider)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	prov, err := s.NewProvider(cfg)
	if err != nil {
		return nil, err
	}

	var anchor documents.Document
	if req.Type == TypeCoverLetter {
		anchor, err = s.resolveAnchor(ctx, req)
		if err != nil {
			return nil, err
		}
		if req.JobDescription == "" {
			req.JobDescription = anchor.JobDescription
		}
	}

	profile, err := s.loadProfile(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		s.run(ctx, events, req, cfg, prov, profile, anchor)
	}()
	return events, nil
}

func (s *Service) effectiveConfig(sel ProviderSelection) provider.Config {
	cfg := s.DefaultProvider
	if sel.Name != "" {
		cfg.Name = sel.Name
	}
	if sel.Model != "" {
		cfg.Model = sel.Model
	}
	if sel.Temperature != nil {
		cfg.Temperature = *sel.Temperature
	}
	if sel.MaxTokens != 0 {
		cfg.MaxTokens = sel.MaxTokens
	}
	return cfg
}

func (s *Service) resolveAnchor(ctx context.Context, req Request) (documents.Document, error) {
	var doc documents.Document
	err := s.UOW.WithinTx(ctx, func(ctx context.Context, scope store.Scope) error {
		var err error
		if req.DocumentID != "" {
			doc, err = scope.Documents().GetByID(ctx, req.DocumentID)
		} else {
			doc, err = scope.Documents().GetLatestByUser(ctx, req.UserID)
		}
		return err
	})
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return documents.Document{}, ErrNoDocumentAvailable
		}
		return documents.Document{}, err
	}
	if doc.UserID != req.UserID {
		return documents.Document{}, ErrNoDocumentAvailable
	}
	return doc, nil
}

func (s *Service) loadProfile(ctx context.Context, userID string) (profiles.Profile, error) {
	var profile profiles.Profile
	err := s.UOW.WithinTx(ctx, func(ctx context.Context, scope store.Scope) error {
		var err error
		profile, err = scope.Profiles().GetByUser(ctx, userID)
		return err
	})
	return profile, err
}

// run drives the state machine, pushing events as the run advances.
func (s *Service) run(
	ctx context.Context,
	events chan<- Event,
	req Request,
	cfg provider.Config,
	prov provider.Provider,
	profile profiles.Profile,
	anchor documents.Document,
) {
	start := time.Now()
	metrics.IncGenerationStarted()
	defer func() {
		metrics.ObserveGenerationDurationMs(float64(time.Since(start).Milliseconds()))
	}()

	emit := func(e Event) bool {
		switch e.State {
		case StateCompleted:
			metrics.IncGenerationCompleted()
		case StateAborted:
			metrics.IncGenerationAborted()
		}
		select {
		case events <- e:
			return true
		case <-ctx.Done():
			return false
		}
	}

	if !emit(Event{State: StateRequested, Message: "generation requested"}) {
		return
	}

	// Policy gate before anything touches a provider.
	if s.Assembler.CheckClearance {
		if kw, hit := assemble.ContainsClearanceKeyword(req.JobDescription, s.Assembler.ClearanceKeywords); hit {
			err := fmt.Errorf("%w: matched %q", assemble.ErrPolicyBlocked, kw)
			emit(Event{State: StateAborted, Error: err.Error(), Done: true})
			return
		}
	}
	if !emit(Event{State: StatePolicyChecked, Message: "screening policy passed"}) {
		return
	}

	var doc documents.Document
	switch req.Type {
	case TypeResume, TypeBoth:
		company, title := prov.DeriveLabelPair(ctx, prompts.FolderName(), req.JobDescription)
		var ok bool
		doc, ok = s.runResume(ctx, emit, req, cfg, prov, profile, company, title)
		if !ok {
			return
		}
		if req.Type == TypeResume {
			emit(Event{State: StateCompleted, Fraction: 1, DocumentID: doc.ID, Done: true})
			return
		}
	case TypeCoverLetter:
		doc = anchor
		// Labels are only derived when the anchor has none; an anchored
		// letter run otherwise makes no naming call at all.
		if doc.CompanyName == "" {
			doc.CompanyName, doc.JobTitle = prov.DeriveLabelPair(ctx, prompts.FolderName(), req.JobDescription)
		}
	}

	ok := s.runCoverLetter(ctx, emit, req, prov, profile, &doc)
	if !ok {
		return
	}
	emit(Event{State: StateCompleted, Fraction: 1, DocumentID: doc.ID, Done: true})
}

func (s *Service) runResume(
	ctx context.Context,
	emit func(Event) bool,
	req Request,
	cfg provider.Config,
	prov provider.Provider,
	profile profiles.Profile,
	company, title string,
) (documents.Document, bool) {
	if !emit(Event{State: StateSectionsAssembling, Message: "assembling sections"}) {
		return documents.Document{}, false
	}

	policies := sections.Merge(profile.SectionPolicies, req.Overrides)
	result, err := s.Assembler.Assemble(ctx, prov, profile, req.JobDescription, policies,
		func(section sections.Section, completed, total int) {
			emit(Event{
				State:    StateSectionsAssembling,
				Message:  fmt.Sprintf("section %s done", section),
				Fraction: float64(completed) / float64(total),
			})
		})
	if err != nil {
		// Policy errors were handled before assembly; anything here is
		// cancellation or a programming error.
		emit(Event{State: StateAborted, Error: err.Error(), Done: true})
		return documents.Document{}, false
	}

	if !emit(Event{State: StateCompiling, Message: "compiling resume", Fraction: 1, Warnings: result.Warnings}) {
		return documents.Document{}, false
	}

	preamble, err := s.Templates.Get(ctx, templates.NamePreamble)
	if err != nil {
		emit(Event{State: StateAborted, Error: err.Error(), Done: true})
		return documents.Document{}, false
	}
	source := latex.BuildResumeSource(preamble, result.Content)

	stagingDir, err := latex.NewStagingDir(s.OutputDir, company, title)
	if err != nil {
		emit(Event{State: StateAborted, Error: err.Error(), Done: true})
		return documents.Document{}, false
	}
	s.saveJobDescription(stagingDir, req.JobDescription)

	compiled, err := s.Compiler.Compile(ctx, stagingDir, "resume", source)
	if err != nil {
		emit(Event{State: StateAborted, Error: err.Error(), Done: true})
		return documents.Document{}, false
	}
	if !compiled.OK {
		emit(Event{
			State:          StateAborted,
			Error:          "resume compilation failed",
			CompilerOutput: compilerDiagnostics(compiled),
			Done:           true,
		})
		return documents.Document{}, false
	}
	if err := s.verifyArtifact(compiled.PDF); err != nil {
		emit(Event{State: StateAborted, Error: err.Error(), Done: true})
		return documents.Document{}, false
	}

	if !emit(Event{State: StatePersisting, Message: "persisting document", Fraction: 1}) {
		return documents.Document{}, false
	}

	doc := documents.Document{
		ID:             uuid.NewString(),
		UserID:         req.UserID,
		CompanyName:    company,
		JobTitle:       title,
		JobDescription: req.JobDescription,
		ResumePDF:      compiled.PDF,
		ProviderName:   cfg.Name,
		ModelName:      cfg.Model,
		Temperature:    cfg.Temperature,
	}
	for section, content := range result.Content {
		doc.SetSection(section, content)
	}

	err = s.UOW.WithinTx(ctx, func(ctx context.Context, scope store.Scope) error {
		if err := scope.Users().Ensure(ctx, req.UserID); err != nil {
			return fmt.Errorf("ensure user: %w", err)
		}
		key, _, _, err := s.Objects.Save(ctx, req.UserID, "resume.pdf", bytes.NewReader(compiled.PDF))
		if err != nil {
			return fmt.Errorf("store artifact: %w", err)
		}
		doc.ArtifactKey = key
		return scope.Documents().Create(ctx, doc)
	})
	if err != nil {
		emit(Event{State: StateAborted, Error: err.Error(), Done: true})
		return documents.Document{}, false
	}

	telemetry.Info("resume generated", map[string]any{
		"document_id": doc.ID,
		"user_id":     req.UserID,
		"company":     company,
		"degraded":    result.Degraded,
	})
	return doc, true
}

func (s *Service) runCoverLetter(
	ctx context.Context,
	emit func(Event) bool,
	req Request,
	prov provider.Provider,
	profile profiles.Profile,
	doc *documents.Document,
) bool {
	if !emit(Event{State: StateSectionsAssembling, Message: "writing cover letter"}) {
		return false
	}

	var warnings []string
	body, err := prov.GenerateContent(ctx, prompts.CoverLetter(), coverLetterData(profile), req.JobDescription)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("cover letter body failed, continuing empty: %v", err))
		body = ""
	}

	if !emit(Event{State: StateCompiling, Message: "compiling cover letter", Fraction: 1, Warnings: warnings}) {
		return false
	}

	template, err := s.Templates.Get(ctx, templates.NameCoverLetter)
	if err != nil {
		emit(Event{State: StateAborted, Error: err.Error(), Done: true})
		return false
	}

	stagingDir, err := latex.NewStagingDir(s.OutputDir, doc.CompanyName, doc.JobTitle)
	if err != nil {
		emit(Event{State: StateAborted, Error: err.Error(), Done: true})
		return false
	}
	s.saveJobDescription(stagingDir, req.JobDescription)

	source, err := latex.BuildCoverLetterSource(template, latex.CoverLetterInput{
		Name:        profile.PersonalInfo["name"],
		Phone:       profile.PersonalInfo["phone"],
		Email:       profile.PersonalInfo["email"],
		LinkedIn:    profile.PersonalInfo["linkedin"],
		GitHub:      profile.PersonalInfo["github"],
		Address:     profile.PersonalInfo["address"],
		CompanyName: doc.CompanyName,
		JobTitle:    doc.JobTitle,
		Body:        body,
		Signature:   profile.Signature,
	}, stagingDir)
	if err != nil {
		emit(Event{State: StateAborted, Error: err.Error(), Done: true})
		return false
	}

	compiled, err := s.Compiler.Compile(ctx, stagingDir, "cover_letter", source)
	if err != nil {
		emit(Event{State: StateAborted, Error: err.Error(), Done: true})
		return false
	}
	if !compiled.OK {
		emit(Event{
			State:          StateAborted,
			Error:          "cover letter compilation failed",
			CompilerOutput: compilerDiagnostics(compiled),
			Done:           true,
		})
		return false
	}
	if err := s.verifyArtifact(compiled.PDF); err != nil {
		emit(Event{State: StateAborted, Error: err.Error(), Done: true})
		return false
	}

	if !emit(Event{State: StatePersisting, Message: "persisting cover letter", Fraction: 1}) {
		return false
	}

	doc.CoverLetterContent = body
	doc.CoverLetterPDF = compiled.PDF
	err = s.UOW.WithinTx(ctx, func(ctx context.Context, scope store.Scope) error {
		return scope.Documents().Update(ctx, *doc)
	})
	if err != nil {
		emit(Event{State: StateAborted, Error: err.Error(), Done: true})
		return false
	}

	telemetry.Info("cover letter generated", map[string]any{
		"document_id": doc.ID,
		"user_id":     req.UserID,
	})
	return true
}

// saveJobDescription drops the posting text next to the build files
// for later inspection. Best effort.
func (s *Service) saveJobDescription(dir, jobDescription string) {
	path := filepath.Join(dir, "job_description.txt")
	if err := os.WriteFile(path, []byte(jobDescription), 0o600); err != nil {
		telemetry.Warn("save job description", map[string]any{"error": err.Error()})
	}
}

func coverLetterData(profile profiles.Profile) string {
	data := map[string]any{
		"personalInformation": profile.PersonalInfo,
		"careerSummary":       profile.CareerSummary,
		"workExperience":      profile.WorkExperience,
		"narrative":           profile.Narrative,
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return string(raw)
}

func compilerDiagnostics(r latex.CompileResult) string {
	out := r.Stdout
	if r.Stderr != "" {
		out += "\n" + r.Stderr
	}
	if r.TimedOut {
		out += "\ncompiler timed out"
	}
	const limit = 4000
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return strings.TrimSpace(out)
}
