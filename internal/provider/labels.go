package provider

import (
	"regexp"
	"strings"
)

// Sentinel labels used when a response cannot be parsed into a pair.
const (
	UnknownCompany  = "Unknown_Company"
	UnknownPosition = "Unknown_Position"
)

var labelToken = regexp.MustCompile(`[A-Za-z][A-Za-z0-9&.+' -]*`)

// ParseLabelPair extracts (company, title) from a model response.
// The expected shape is "Company|Title". Responses that are not in
// two-part form fall back to the first two plausible tokens; if that
// also fails, sentinel labels are returned. Label derivation never
// fails hard.
func ParseLabelPair(raw string) (string, string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return UnknownCompany, UnknownPosition
	}

	if parts := strings.Split(trimmed, "|"); len(parts) == 2 {
		company := strings.TrimSpace(parts[0])
		title := strings.TrimSpace(parts[1])
		if company != "" && title != "" {
			return company, title
		}
	}

	// Permissive fallback: first two word-like runs in the response.
	tokens := labelToken.FindAllString(trimmed, 3)
	if len(tokens) >= 2 {
		return strings.TrimSpace(tokens[0]), strings.TrimSpace(tokens[1])
	}

	return UnknownCompany, UnknownPosition
}
