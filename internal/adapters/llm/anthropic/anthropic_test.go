package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"seekdomains/internal/adapters/llm"
	perr "seekdomains/internal/platform/errors"
)

type seenReq struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	System      []struct {
		Text string `json:"text"`
	} `json:"system"`
	Messages []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"messages"`
}

func okBody(text string) map[string]any {
	return map[string]any{
		"id":            "msg_1",
		"type":          "message",
		"role":          "assistant",
		"model":         "claude-sonnet-4-5",
		"stop_reason":   "end_turn",
		"stop_sequence": nil,
		"content":       []any{map[string]any{"type": "text", "text": text}},
		"usage":         map[string]any{"input_tokens": 12, "output_tokens": 7},
	}
}

func TestComplete_SystemBlockAndText(t *testing.T) {
	var seen seenReq
	var key string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("path = %s", r.URL.Path)
		}
		key = r.Header.Get("X-Api-Key")
		_ = json.NewDecoder(r.Body).Decode(&seen)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(okBody("```json\n{\"domain_names\":[\"a.io\"]}\n```"))
	}))
	defer srv.Close()

	c := New(Options{APIKey: "ak", BaseURL: srv.URL, MaxTokens: 256})
	out, err := c.Complete(context.Background(), llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "rules"},
			{Role: llm.RoleUser, Content: "REQUEST: tea"},
		},
		Model:       "gpt-4o",
		JSONMode:    true,
		Temperature: 0.5,
	})
	if err != nil {
		t.Fatalf("Complete err: %v", err)
	}
	if llm.Unfence(out) != `{"domain_names":["a.io"]}` {
		t.Fatalf("content = %q", out)
	}
	if key != "ak" {
		t.Fatalf("api key header = %q", key)
	}
	if seen.Model != defaultModel {
		t.Fatalf("model = %q want provider default", seen.Model)
	}
	if seen.MaxTokens != 256 || seen.Temperature != 0.5 {
		t.Fatalf("max_tokens=%d temperature=%v", seen.MaxTokens, seen.Temperature)
	}
	if len(seen.System) != 1 || !strings.HasPrefix(seen.System[0].Text, "rules") || !strings.Contains(seen.System[0].Text, jsonOnly) {
		t.Fatalf("system = %+v", seen.System)
	}
	if len(seen.Messages) != 1 || seen.Messages[0].Role != "user" || seen.Messages[0].Content[0].Text != "REQUEST: tea" {
		t.Fatalf("messages = %+v", seen.Messages)
	}
}

func TestComplete_UpstreamErrorIsGeneration(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
	}))
	defer srv.Close()

	c := New(Options{APIKey: "ak", BaseURL: srv.URL})
	_, err := c.Complete(context.Background(), llm.Request{Messages: []llm.Message{{Role: llm.RoleUser, Content: "x"}}})
	if !perr.IsCode(err, perr.ErrorCodeGeneration) {
		t.Fatalf("want generation error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d want single attempt", calls)
	}
}

func TestComplete_NoTextBlocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		body := okBody("")
		body["content"] = []any{}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	c := New(Options{APIKey: "ak", BaseURL: srv.URL})
	_, err := c.Complete(context.Background(), llm.Request{Messages: []llm.Message{{Role: llm.RoleUser, Content: "x"}}})
	if !perr.IsCode(err, perr.ErrorCodeGeneration) {
		t.Fatalf("want generation error, got %v", err)
	}
}
