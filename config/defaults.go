package config

const (
	DefaultProvider   = "gemini"
	DefaultServerAddr = ":8080"
)

func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		DataDirectory: "~/.local/share/precisionpercent",
		Assistant: AssistantConfig{
			Provider:            DefaultProvider,
			Model:               DefaultModel(DefaultProvider),
			DiscardStaleAnswers: false,
		},
		Server: ServerConfig{
			Addr: DefaultServerAddr,
		},
	}
}

func GenerateSystemConfigTemplate() string {
	return `# Precision Percent Configuration
# Location: ~/.config/precisionpercent/settings.toml
# This file uses TOML format: https://toml.io

# Directory for the debug log, keybindings and exported charts
data_directory = "~/.local/share/precisionpercent"

[assistant]
# Text generation provider: gemini, ollama, openai, anthropic, openrouter
provider = "gemini"

# Model used for assistant questions
model = "gemini-3-flash-preview"

# Optional API base URL override (e.g. a local Ollama host)
# base_url = "http://localhost:11434"

# When two questions overlap, the answer that settles last is shown.
# Set to true to show only the answer to the most recent question.
discard_stale_answers = false

# The API key is never stored here. Export API_KEY (or GEMINI_API_KEY,
# OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY) or put it in a .env file.

[server]
# Listen address for "precisionpercent serve"
addr = ":8080"
`
}
