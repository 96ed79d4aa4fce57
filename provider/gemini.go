package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"precisionpercent/model"
	"precisionpercent/ollama"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiModel struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"displayName"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}

type geminiModelList struct {
	Models        []geminiModel `json:"models"`
	NextPageToken string        `json:"nextPageToken"`
}

// GeminiProvider talks to the Generative Language REST API.
type GeminiProvider struct {
	httpClient *http.Client
	model      string
	baseURL    string
	apiKey     string
}

// NewGeminiProvider creates a new Gemini provider instance.
//
// Parameters:
//   - baseURL: API base URL (default: "https://generativelanguage.googleapis.com/v1beta")
//   - apiKey: Gemini API key. Not validated here; a missing key fails at request time.
//   - model: Initial model to use (default: "gemini-3-flash-preview")
func NewGeminiProvider(baseURL, apiKey, model string) (*GeminiProvider, error) {
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if model == "" {
		model = "gemini-3-flash-preview"
	}

	return &GeminiProvider{
		httpClient: &http.Client{},
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}, nil
}

// Generate implements Provider.Generate with a single generateContent call.
// The text parts of the first candidate are joined; no candidate means "".
func (p *GeminiProvider) Generate(ctx context.Context, prompt string, params model.GenerationParams) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     params.Temperature,
			TopP:            params.TopP,
			MaxOutputTokens: params.MaxOutputTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode Gemini request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, p.model)
	resBody, err := p.do(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", err
	}

	var res geminiResponse
	if err := json.Unmarshal(resBody, &res); err != nil {
		return "", fmt.Errorf("failed to decode Gemini response: %w", err)
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}

// ListModels implements Provider.ListModels. Only models that support
// generateContent are returned.
func (p *GeminiProvider) ListModels(ctx context.Context) ([]ollama.ModelInfo, error) {
	var result []ollama.ModelInfo
	pageToken := ""

	for {
		query := url.Values{"pageSize": {"100"}}
		if pageToken != "" {
			query.Set("pageToken", pageToken)
		}

		resBody, err := p.do(ctx, http.MethodGet, p.baseURL+"/models?"+query.Encode(), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to list Gemini models: %w", err)
		}

		var page geminiModelList
		if err := json.Unmarshal(resBody, &page); err != nil {
			return nil, fmt.Errorf("failed to decode Gemini model list: %w", err)
		}

		for _, m := range page.Models {
			if !supportsGenerateContent(m.SupportedGenerationMethods) {
				continue
			}
			name := strings.TrimPrefix(m.Name, "models/")
			result = append(result, ollama.ModelInfo{
				Name:         name,
				InternalName: name,
				Size:         0, // Gemini doesn't provide size info
				Provider:     "gemini",
			})
		}

		if page.NextPageToken == "" {
			return result, nil
		}
		pageToken = page.NextPageToken
	}
}

func supportsGenerateContent(methods []string) bool {
	for _, m := range methods {
		if m == "generateContent" {
			return true
		}
	}
	return false
}

func (p *GeminiProvider) GetModel() string {
	return p.model
}

// GetDisplayName implements Provider.GetDisplayName (same as GetModel for Gemini).
func (p *GeminiProvider) GetDisplayName() string {
	return p.model
}

func (p *GeminiProvider) SetModel(model string) {
	p.model = model
}

// Ping implements Provider.Ping by fetching the active model's metadata.
func (p *GeminiProvider) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := p.do(ctx, http.MethodGet, fmt.Sprintf("%s/models/%s", p.baseURL, p.model), nil); err != nil {
		return fmt.Errorf("Gemini ping failed: %w", err)
	}
	return nil
}

func (p *GeminiProvider) do(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini request: %w", err)
	}
	req.Header.Set("x-goog-api-key", p.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Gemini request failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Gemini response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Gemini status %d: %s", res.StatusCode, strings.TrimSpace(string(resBody)))
	}
	return resBody, nil
}
