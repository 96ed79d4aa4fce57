package config

import (
	"os"
	"strings"
)

// EnvAPIKey is the provider-neutral credential variable.
const EnvAPIKey = "API_KEY"

// providerKeyEnv maps provider IDs to their conventional credential variable.
var providerKeyEnv = map[string]string{
	"gemini":     "GEMINI_API_KEY",
	"openai":     "OPENAI_API_KEY",
	"anthropic":  "ANTHROPIC_API_KEY",
	"openrouter": "OPENROUTER_API_KEY",
}

// ResolveAPIKey returns the credential for providerID from the environment.
// API_KEY wins over the provider-specific variable. Ollama needs none.
func ResolveAPIKey(providerID string) string {
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key
	}
	if name, ok := providerKeyEnv[providerID]; ok {
		return strings.TrimSpace(os.Getenv(name))
	}
	return ""
}

// APIKeyEnvName returns the provider-specific credential variable, or "" if
// the provider does not use one.
func APIKeyEnvName(providerID string) string {
	return providerKeyEnv[providerID]
}

// HasAPIKey reports whether a credential is available for providerID.
func HasAPIKey(providerID string) bool {
	return ResolveAPIKey(providerID) != ""
}
