// Package ollama implements the provider interface against a local
// Ollama server.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resume-tailor/internal/provider"
)

const defaultBaseURL = "http://localhost:11434"

// Client calls the Ollama generate endpoint. No API key is needed.
type Client struct {
	BaseURL    string
	Config     provider.Config
	HTTPClient *http.Client
}

// New builds a client for the given configuration. baseURL may be
// empty to target a local server.
func New(cfg provider.Config, baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Config:  cfg,
		// Local models can be slow on first load.
		HTTPClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

type generateRequest struct {
	Model   string          `json:"model"`
	System  string          `json:"system"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

// GenerateContent sends one non-streaming generate request and
// returns the model text. An empty response is returned as ("", nil).
func (c *Client) GenerateContent(ctx context.Context, instruction, data, jobDescription string) (string, error) {
	body := generateRequest{
		Model:  c.Config.Model,
		System: provider.SystemInstruction,
		Prompt: provider.FormatPrompt(instruction, data, jobDescription),
		Stream: false,
		Options: generateOptions{
			Temperature: c.Config.Temperature,
			NumPredict:  c.Config.EffectiveMaxTokens(),
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", &provider.Error{Provider: provider.NameOllama, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", &provider.Error{Provider: provider.NameOllama, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", &provider.Error{Provider: provider.NameOllama, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &provider.Error{Provider: provider.NameOllama, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &provider.Error{
			Provider: provider.NameOllama,
			Err:      fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(raw), 300)),
		}
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &provider.Error{Provider: provider.NameOllama, Err: fmt.Errorf("decode response: %w", err)}
	}
	if parsed.Error != "" {
		return "", &provider.Error{Provider: provider.NameOllama, Err: fmt.Errorf("%s", parsed.Error)}
	}
	return strings.TrimSpace(parsed.Response), nil
}

// DeriveLabelPair asks the model for a "Company|Title" pair. Failures
// degrade to sentinel labels.
func (c *Client) DeriveLabelPair(ctx context.Context, instruction, jobDescription string) (string, string) {
	out, err := c.GenerateContent(ctx, instruction, "", jobDescription)
	if err != nil {
		return provider.UnknownCompany, provider.UnknownPosition
	}
	return provider.ParseLabelPair(out)
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return defaultBaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

var _ provider.Provider = (*Client)(nil)
