package provider

import (
	"errors"
	"fmt"
	"strings"
)

// Known provider names.
const (
	NameOpenAI    = "openai"
	NameAnthropic = "anthropic"
	NameOllama    = "ollama"
)

// ErrInvalidConfiguration indicates bad provider settings at request setup.
var ErrInvalidConfiguration = errors.New("invalid provider configuration")

// Config selects and parameterizes a provider for one generation request.
// It is not persisted as its own entity; the chosen values are embedded
// in the resulting document for reproducibility.
type Config struct {
	Name        string  `json:"name"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// Validate checks the configuration. Temperature is bounded to [0.0, 1.0].
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Name)) {
	case NameOpenAI, NameAnthropic, NameOllama:
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidConfiguration, c.Name)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: model name is required", ErrInvalidConfiguration)
	}
	if c.Temperature < 0.0 || c.Temperature > 1.0 {
		return fmt.Errorf("%w: temperature %v outside [0.0, 1.0]", ErrInvalidConfiguration, c.Temperature)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("%w: max tokens must be positive", ErrInvalidConfiguration)
	}
	return nil
}

// EffectiveMaxTokens returns the configured output limit or the default.
func (c Config) EffectiveMaxTokens() int {
	if c.MaxTokens > 0 {
		return c.MaxTokens
	}
	return 1000
}
