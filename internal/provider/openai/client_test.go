package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"resume-tailor/internal/provider"
)

func testConfig() provider.Config {
	return provider.Config{Name: provider.NameOpenAI, Model: "gpt-4o-mini", Temperature: 0.3, MaxTokens: 500}
}

func TestGenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("unexpected messages %+v", req.Messages)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "  \\section{Summary} text  "}},
			},
		})
	}))
	defer srv.Close()

	c := New(testConfig(), "test-key")
	c.BaseURL = srv.URL

	out, err := c.GenerateContent(context.Background(), "Write a summary.", `{"name":"A"}`, "Go developer")
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if out != "\\section{Summary} text" {
		t.Fatalf("got %q", out)
	}
}

func TestGenerateContentEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := New(testConfig(), "k")
	c.BaseURL = srv.URL

	out, err := c.GenerateContent(context.Background(), "x", "", "")
	if err != nil {
		t.Fatalf("empty completion must not be an error, got %v", err)
	}
	if out != "" {
		t.Fatalf("got %q, want empty", out)
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit"}}`))
	}))
	defer srv.Close()

	c := New(testConfig(), "k")
	c.BaseURL = srv.URL

	_, err := c.GenerateContent(context.Background(), "x", "", "")
	var perr *provider.Error
	if !errors.As(err, &perr) {
		t.Fatalf("got %v, want *provider.Error", err)
	}
	if perr.Provider != provider.NameOpenAI {
		t.Fatalf("got provider %q", perr.Provider)
	}
}

func TestDeriveLabelPairDegradesToSentinels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(testConfig(), "k")
	c.BaseURL = srv.URL

	company, title := c.DeriveLabelPair(context.Background(), "label instruction", "jd")
	if company != provider.UnknownCompany || title != provider.UnknownPosition {
		t.Fatalf("got %q, %q", company, title)
	}
}
