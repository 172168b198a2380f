package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"resume-tailor/internal/provider"
)

func TestGenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Stream {
			t.Error("stream must be disabled")
		}
		if req.Model != "llama3" {
			t.Errorf("got model %q", req.Model)
		}
		json.NewEncoder(w).Encode(map[string]any{"response": "content"})
	}))
	defer srv.Close()

	cfg := provider.Config{Name: provider.NameOllama, Model: "llama3", Temperature: 0.1}
	c := New(cfg, srv.URL)

	out, err := c.GenerateContent(context.Background(), "instr", "data", "jd")
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if out != "content" {
		t.Fatalf("got %q", out)
	}
}

func TestGenerateContentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"error": "model not found"})
	}))
	defer srv.Close()

	cfg := provider.Config{Name: provider.NameOllama, Model: "missing", Temperature: 0.1}
	c := New(cfg, srv.URL)

	_, err := c.GenerateContent(context.Background(), "instr", "", "")
	var perr *provider.Error
	if !errors.As(err, &perr) {
		t.Fatalf("got %v, want *provider.Error", err)
	}
}
