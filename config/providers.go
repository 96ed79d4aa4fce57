package config

// ProviderIDs lists the supported providers in display order.
var ProviderIDs = []string{"gemini", "ollama", "openai", "anthropic", "openrouter"}

// ProviderDisplayName returns the display name for a provider
func ProviderDisplayName(providerID string) string {
	switch providerID {
	case "gemini":
		return "Gemini"
	case "ollama":
		return "Ollama"
	case "openrouter":
		return "OpenRouter"
	case "anthropic":
		return "Anthropic"
	case "openai":
		return "OpenAI"
	default:
		return providerID
	}
}

// ProviderDefaultBaseURL returns the default base URL for a provider
func ProviderDefaultBaseURL(providerID string) string {
	switch providerID {
	case "gemini":
		return "https://generativelanguage.googleapis.com/v1beta"
	case "ollama":
		return "http://localhost:11434"
	case "openrouter":
		return "https://openrouter.ai/api/v1"
	case "anthropic":
		return "https://api.anthropic.com"
	case "openai":
		return "https://api.openai.com/v1"
	default:
		return ""
	}
}

// DefaultModel returns the model used when none is configured
func DefaultModel(providerID string) string {
	switch providerID {
	case "gemini":
		return "gemini-3-flash-preview"
	case "ollama":
		return "llama3.1:latest"
	case "openrouter":
		return "google/gemini-2.5-flash"
	case "anthropic":
		return "claude-sonnet-4-5-20250929"
	case "openai":
		return "gpt-4o-mini"
	default:
		return ""
	}
}

// IsKnownProvider reports whether providerID is supported.
func IsKnownProvider(providerID string) bool {
	for _, id := range ProviderIDs {
		if id == providerID {
			return true
		}
	}
	return false
}
