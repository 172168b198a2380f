// Package provider abstracts the language-model backends used to tailor
// document sections. Callers depend on the Provider interface only; the
// concrete vendor is chosen by configuration at construction time.
package provider

import (
	"context"
	"fmt"
)

// Provider is the capability interface over interchangeable generation
// backends.
//
// GenerateContent returns the model's text for one section. An empty
// response is a successful-but-empty result, not an error; the caller
// decides whether that is fatal.
//
// DeriveLabelPair extracts a (company, title) pair from a job
// description. It is a best-effort naming aid: vendor failures and
// unparseable responses degrade to sentinel labels instead of errors.
type Provider interface {
	GenerateContent(ctx context.Context, instruction, data, jobDescription string) (string, error)
	DeriveLabelPair(ctx context.Context, instruction, jobDescription string) (company, title string)
}

// Error wraps a vendor API failure with its provider name, preserving
// the original cause for errors.Is/As.
type Error struct {
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// SystemInstruction is the shared system prompt for all vendors.
const SystemInstruction = "You are a professional resume writer. Answer only with the asked markup content, no introduction or explanation."

// FormatPrompt builds the user message sent to every vendor. Data and
// job description are wrapped in tags so models can tell them apart
// from the instruction.
func FormatPrompt(instruction, data, jobDescription string) string {
	out := instruction + "\n\n"
	if data != "" {
		out += "Here is the personal information in JSON format:\n<data>\n" + data + "\n</data>\n\n"
	}
	if jobDescription != "" {
		out += "Job Description:\n<job_description>\n" + jobDescription + "\n</job_description>\n\n"
	}
	return out
}
