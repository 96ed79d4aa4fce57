package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"precisionpercent/model"
)

func TestGeminiGenerate(t *testing.T) {
	var got geminiRequest
	var gotPath, gotKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"15% of 240 "},{"text":"is 36."}]}}]}`))
	}))
	defer srv.Close()

	p, err := NewGeminiProvider(srv.URL, "secret", "gemini-3-flash-preview")
	if err != nil {
		t.Fatal(err)
	}

	text, err := p.Generate(context.Background(), "What is 15% of 240?", model.DefaultGenerationParams)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != "15% of 240 is 36." {
		t.Errorf("text = %q", text)
	}

	if gotPath != "/models/gemini-3-flash-preview:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "secret" {
		t.Errorf("api key header = %q", gotKey)
	}
	if len(got.Contents) != 1 || got.Contents[0].Parts[0].Text != "What is 15% of 240?" {
		t.Errorf("contents = %+v", got.Contents)
	}
	cfg := got.GenerationConfig
	if cfg.Temperature != 0.7 || cfg.TopP != 0.95 || cfg.MaxOutputTokens != 500 {
		t.Errorf("generationConfig = %+v", cfg)
	}
}

func TestGeminiGenerateNoCandidates(t *testing.T) {
	for _, body := range []string{`{}`, `{"candidates":[]}`, `{"candidates":[{"finishReason":"SAFETY"}]}`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		p, _ := NewGeminiProvider(srv.URL, "k", "")
		text, err := p.Generate(context.Background(), "q", model.DefaultGenerationParams)
		srv.Close()

		if err != nil {
			t.Errorf("%s: unexpected error %v", body, err)
		}
		if text != "" {
			t.Errorf("%s: text = %q, want empty", body, text)
		}
	}
}

func TestGeminiGenerateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":400,"message":"API key not valid"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	p, _ := NewGeminiProvider(srv.URL, "", "")
	if _, err := p.Generate(context.Background(), "q", model.DefaultGenerationParams); err == nil {
		t.Error("expected an error for a non-200 response")
	}
}

func TestGeminiGenerateMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	p, _ := NewGeminiProvider(srv.URL, "k", "")
	if _, err := p.Generate(context.Background(), "q", model.DefaultGenerationParams); err == nil {
		t.Error("expected a decode error")
	}
}

func TestGeminiListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			http.NotFound(w, r)
			return
		}
		switch r.URL.Query().Get("pageToken") {
		case "":
			_, _ = w.Write([]byte(`{"models":[
				{"name":"models/gemini-3-flash-preview","supportedGenerationMethods":["generateContent","countTokens"]},
				{"name":"models/text-embedding-004","supportedGenerationMethods":["embedContent"]}
			],"nextPageToken":"Cg5wYWdl+dG9r/ZW4=&x"}`))
		case "Cg5wYWdl+dG9r/ZW4=&x":
			_, _ = w.Write([]byte(`{"models":[{"name":"models/gemini-2.5-pro","supportedGenerationMethods":["generateContent"]}]}`))
		default:
			http.Error(w, `{"error":{"message":"invalid page token"}}`, http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	p, _ := NewGeminiProvider(srv.URL, "k", "")
	models, err := p.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels() error = %v", err)
	}

	if len(models) != 2 {
		t.Fatalf("got %d models, want 2: %+v", len(models), models)
	}
	if models[0].Name != "gemini-3-flash-preview" || models[1].Name != "gemini-2.5-pro" {
		t.Errorf("unexpected models %+v", models)
	}
	if models[0].Provider != "gemini" {
		t.Errorf("Provider = %q", models[0].Provider)
	}
}

func TestGeminiPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/models/gemini-3-flash-preview" {
			_, _ = w.Write([]byte(`{"name":"models/gemini-3-flash-preview"}`))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	p, _ := NewGeminiProvider(srv.URL, "k", "")
	if err := p.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}

	p.SetModel("missing")
	if err := p.Ping(context.Background()); err == nil {
		t.Error("expected ping error for unknown model")
	}
}
