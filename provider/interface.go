// Package provider implements text generation backends for the assistant.
//
// Precision Percent can send assistant questions to several providers
// (Gemini, Ollama, OpenAI, Anthropic, OpenRouter) through the common
// model.Provider interface, so the calculator and the UI never depend on a
// specific vendor SDK.
//
// # Architecture
//
//   - model.Provider defines the contract (interface)
//   - provider.GeminiProvider calls the Generative Language REST API (default)
//   - provider.OllamaProvider wraps ollama.Client for local models
//   - provider.OpenAIProvider and provider.OpenRouterProvider use openai-go
//   - provider.AnthropicProvider uses anthropic-sdk-go
//   - provider.NewProvider() factory creates providers from config
//
// # Usage
//
//	cfg := provider.Config{
//	    Type:   provider.ProviderTypeGemini,
//	    Model:  "gemini-3-flash-preview",
//	    APIKey: os.Getenv("API_KEY"),
//	}
//	p, err := provider.NewProvider(cfg)
//	if err != nil {
//	    // handle error
//	}
//	text, err := p.Generate(ctx, prompt, model.DefaultGenerationParams)
package provider

// Note: The Provider interface is defined in the model package
// (model/provider.go) to avoid import cycles. This package implements model.Provider.

// ProviderType identifies the provider implementation.
type ProviderType string

const (
	ProviderTypeGemini     ProviderType = "gemini"
	ProviderTypeOllama     ProviderType = "ollama"
	ProviderTypeOpenRouter ProviderType = "openrouter"
	ProviderTypeOpenAI     ProviderType = "openai"
	ProviderTypeAnthropic  ProviderType = "anthropic"
)

// Config holds provider-specific configuration.
type Config struct {
	Type    ProviderType
	BaseURL string
	Model   string
	APIKey  string // Unused for Ollama
}
