package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"precisionpercent/model"
)

func TestOpenAICompatibleGenerate(t *testing.T) {
	tests := []struct {
		name      string
		newFn     func(baseURL string) model.Provider
		tokensKey string
	}{
		{
			name: "openai",
			newFn: func(baseURL string) model.Provider {
				p, _ := NewOpenAIProvider(baseURL, "sk-test", "gpt-4o-mini")
				return p
			},
			tokensKey: "max_completion_tokens",
		},
		{
			name: "openrouter",
			newFn: func(baseURL string) model.Provider {
				p, _ := NewOpenRouterProvider(baseURL, "or-test", "google/gemini-2.5-flash")
				return p
			},
			tokensKey: "max_tokens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]any
			var auth string

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
					http.NotFound(w, r)
					return
				}
				auth = r.Header.Get("Authorization")
				_ = json.NewDecoder(r.Body).Decode(&got)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","created":1,"model":"m",
					"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"It is 36."}}]}`))
			}))
			defer srv.Close()

			p := tt.newFn(srv.URL)
			text, err := p.Generate(context.Background(), "What is 15% of 240?", model.DefaultGenerationParams)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if text != "It is 36." {
				t.Errorf("text = %q", text)
			}
			if !strings.HasPrefix(auth, "Bearer ") {
				t.Errorf("Authorization = %q", auth)
			}
			if got["temperature"] != 0.7 || got["top_p"] != 0.95 || got[tt.tokensKey] != float64(500) {
				t.Errorf("request = %+v", got)
			}
		})
	}
}

func TestOpenAIGenerateNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","created":1,"model":"m","choices":[]}`))
	}))
	defer srv.Close()

	p, _ := NewOpenAIProvider(srv.URL, "sk-test", "")
	text, err := p.Generate(context.Background(), "q", model.DefaultGenerationParams)
	if err != nil || text != "" {
		t.Errorf("Generate() = %q, %v; want empty text and no error", text, err)
	}
}

func TestOpenAIGenerateUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	p, _ := NewOpenAIProvider(srv.URL, "", "")
	if _, err := p.Generate(context.Background(), "q", model.DefaultGenerationParams); err == nil {
		t.Error("expected an error for 401")
	}
}

func TestAnthropicGenerate(t *testing.T) {
	var got map[string]any
	var apiKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			http.NotFound(w, r)
			return
		}
		apiKey = r.Header.Get("X-Api-Key")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-sonnet-4-5-20250929",
			"content":[{"type":"text","text":"It is "},{"type":"text","text":"36."}],
			"stop_reason":"end_turn","usage":{"input_tokens":10,"output_tokens":4}}`))
	}))
	defer srv.Close()

	p, _ := NewAnthropicProvider(srv.URL, "ak-test", "")
	text, err := p.Generate(context.Background(), "What is 15% of 240?", model.DefaultGenerationParams)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != "It is 36." {
		t.Errorf("text = %q", text)
	}
	if apiKey != "ak-test" {
		t.Errorf("X-Api-Key = %q", apiKey)
	}
	if got["temperature"] != 0.7 || got["max_tokens"] != float64(500) {
		t.Errorf("request = %+v", got)
	}
	if _, ok := got["top_p"]; ok {
		t.Error("top_p must not be sent together with temperature")
	}
}
