package model

import (
	"context"

	"precisionpercent/ollama"
)

// Provider abstracts text generation backends (Gemini, Ollama, OpenAI,
// Anthropic, OpenRouter).
//
// This interface is defined in the model package (not provider package) to avoid
// import cycles: provider implementations can import model, and model can use the
// Provider interface without importing the provider package.
type Provider interface {
	// Generate sends a single prompt and returns the complete response text.
	// An empty string with a nil error means the backend produced no text.
	Generate(ctx context.Context, prompt string, params GenerationParams) (string, error)

	// ListModels returns available models for this provider.
	ListModels(ctx context.Context) ([]ollama.ModelInfo, error)

	// GetModel returns the currently selected model name (InternalName for API calls).
	// For OpenRouter, this returns the full name with vendor prefix (e.g., "google/gemini-2.5-flash").
	GetModel() string

	// GetDisplayName returns the model name formatted for UI display.
	// For OpenRouter, this strips the vendor prefix (e.g., "google/gemini-2.5-flash" → "gemini-2.5-flash").
	GetDisplayName() string

	// SetModel changes the active model.
	SetModel(model string)

	// Ping checks if the provider is reachable.
	Ping(ctx context.Context) error
}

// GenerationParams are the sampling settings sent with every request.
type GenerationParams struct {
	Temperature     float64
	TopP            float64
	MaxOutputTokens int
}
