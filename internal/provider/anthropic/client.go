// Package anthropic implements the provider interface against the
// Anthropic messages API.
package anthropic

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

const (
	defaultBaseURL = "https://api.anthropic.com"
	apiVersion     = "2023-06-01"
)

// Client calls the Anthropic messages endpoint.
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

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateContent sends one messages request and returns the model
// text. An empty message is returned as ("", nil).
func (c *Client) GenerateContent(ctx context.Context, instruction, data, jobDescription string) (string, error) {
	body := messagesRequest{
		Model:       c.Config.Model,
		MaxTokens:   c.Config.EffectiveMaxTokens(),
		Temperature: c.Config.Temperature,
		System:      provider.SystemInstruction,
		Messages: []message{
			{Role: "user", Content: provider.FormatPrompt(instruction, data, jobDescription)},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", &provider.Error{Provider: provider.NameAnthropic, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", &provider.Error{Provider: provider.NameAnthropic, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", &provider.Error{Provider: provider.NameAnthropic, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &provider.Error{Provider: provider.NameAnthropic, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &provider.Error{
			Provider: provider.NameAnthropic,
			Err:      fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(raw), 300)),
		}
	}

	var parsed messagesResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &provider.Error{Provider: provider.NameAnthropic, Err: fmt.Errorf("decode response: %w", err)}
	}
	if parsed.Error != nil {
		return "", &provider.Error{
			Provider: provider.NameAnthropic,
			Err:      fmt.Errorf("%s: %s", parsed.Error.Type, parsed.Error.Message),
		}
	}

	var sb strings.Builder
	for _, block := range parsed.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(sb.String()), nil
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
