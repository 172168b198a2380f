// Package openai implements the provider interface against the OpenAI
// chat completions API.
package openai

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

const defaultBaseURL = "https://api.openai.com"

// Client calls the OpenAI chat completions endpoint.
type Client struct {
	APIKey     string
	BaseURL    string
	Config     provider.Config
	HTTPClient *http.Client
}

// New builds a client for the given configuration.
func New(cfg provider.Config, apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		Config:     cfg,
		HTTPClient: &http.Client{Timeout: 90 * time.Second},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// GenerateContent sends one chat completion request and returns the
// model text. An empty completion is returned as ("", nil).
func (c *Client) GenerateContent(ctx context.Context, instruction, data, jobDescription string) (string, error) {
	body := chatRequest{
		Model: c.Config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: provider.SystemInstruction},
			{Role: "user", Content: provider.FormatPrompt(instruction, data, jobDescription)},
		},
		Temperature: c.Config.Temperature,
		MaxTokens:   c.Config.EffectiveMaxTokens(),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", &provider.Error{Provider: provider.NameOpenAI, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", &provider.Error{Provider: provider.NameOpenAI, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", &provider.Error{Provider: provider.NameOpenAI, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &provider.Error{Provider: provider.NameOpenAI, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &provider.Error{
			Provider: provider.NameOpenAI,
			Err:      fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(raw), 300)),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &provider.Error{Provider: provider.NameOpenAI, Err: fmt.Errorf("decode response: %w", err)}
	}
	if parsed.Error != nil {
		return "", &provider.Error{
			Provider: provider.NameOpenAI,
			Err:      fmt.Errorf("%s: %s", parsed.Error.Type, parsed.Error.Message),
		}
	}
	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
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
