package config

import (
	"fmt"
	"os"
	"strings"
)

type SystemConfig struct {
	DataDirectory string          `toml:"data_directory"`
	Assistant     AssistantConfig `toml:"assistant"`
	Server        ServerConfig    `toml:"server"`
}

type AssistantConfig struct {
	Provider            string `toml:"provider"`
	Model               string `toml:"model"`
	BaseURL             string `toml:"base_url,omitempty"`
	DiscardStaleAnswers bool   `toml:"discard_stale_answers"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type Config struct {
	DataDirectory       string
	Provider            string
	Model               string
	BaseURL             string
	APIKey              string // resolved from the environment, never written to disk
	DiscardStaleAnswers bool
	ServerAddr          string
	Keybindings         *KeyBindingsConfig

	// Warnings are non-fatal problems found while loading. They are logged
	// once the diagnostics log is open.
	Warnings []string
}

const (
	EnvProvider   = "PPERCENT_PROVIDER"
	EnvModel      = "PPERCENT_MODEL"
	EnvBaseURL    = "PPERCENT_BASE_URL"
	EnvDataDir    = "PPERCENT_DATA_DIR"
	EnvServerAddr = "PPERCENT_SERVER_ADDR"
	EnvDebug      = "PPERCENT_DEBUG"
)

func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

// ProviderName returns the display name of the configured provider.
func (c *Config) ProviderName() string {
	return ProviderDisplayName(c.Provider)
}

func (c *Config) applyEnvOverrides() {
	if p := os.Getenv(EnvProvider); p != "" {
		c.Provider = strings.ToLower(p)
	}
	if model := os.Getenv(EnvModel); model != "" {
		c.Model = model
	}
	if baseURL := os.Getenv(EnvBaseURL); baseURL != "" {
		c.BaseURL = baseURL
	}
	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		c.DataDirectory = dataDir
	}
	if addr := os.Getenv(EnvServerAddr); addr != "" {
		c.ServerAddr = addr
	}
}

func CheckDebug() bool {
	debug := os.Getenv(EnvDebug)
	return debug == "true" || debug == "1"
}

// Load reads settings.toml (creating it from the template when missing),
// applies environment overrides and resolves the API credential.
func Load() (*Config, error) {
	systemCfg, err := LoadSystemConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load system config: %w", err)
	}

	cfg := &Config{
		DataDirectory:       systemCfg.DataDirectory,
		Provider:            strings.ToLower(systemCfg.Assistant.Provider),
		Model:               systemCfg.Assistant.Model,
		BaseURL:             systemCfg.Assistant.BaseURL,
		DiscardStaleAnswers: systemCfg.Assistant.DiscardStaleAnswers,
		ServerAddr:          systemCfg.Server.Addr,
	}
	settingsProvider := cfg.Provider
	cfg.applyEnvOverrides()

	if cfg.DataDirectory == "" {
		cfg.DataDirectory = GetDefaultDataDir()
	}
	if cfg.Provider == "" {
		cfg.Provider = DefaultProvider
	}
	// A provider switched through the environment does not inherit the
	// model configured for another provider.
	if cfg.Model == "" || (cfg.Provider != settingsProvider && os.Getenv(EnvModel) == "") {
		cfg.Model = DefaultModel(cfg.Provider)
	}
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = DefaultServerAddr
	}

	if !IsKnownProvider(cfg.Provider) {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown provider %q, expected one of: %s",
			cfg.Provider, strings.Join(ProviderIDs, ", ")))
	}

	// Missing credentials are not an error: the remote call fails and the
	// assistant answers with its fallback text.
	cfg.APIKey = ResolveAPIKey(cfg.Provider)
	if env := APIKeyEnvName(cfg.Provider); env != "" && !HasAPIKey(cfg.Provider) {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("no API key for %s, set %s or %s",
			ProviderDisplayName(cfg.Provider), EnvAPIKey, env))
	}

	dataDir := cfg.DataDir()
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := EnsureDataDirPermissions(dataDir); err != nil {
		return nil, fmt.Errorf("failed to set data directory permissions: %w", err)
	}

	kb, err := LoadKeybindings(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load keybindings: %w", err)
	}
	if ok, warning := kb.Validate(); !ok {
		cfg.Warnings = append(cfg.Warnings, "keybindings: "+warning+", using default modifiers")
		kb.Modifiers = DefaultKeybindings().Modifiers
	} else if warning != "" {
		cfg.Warnings = append(cfg.Warnings, "keybindings: "+warning)
	}
	cfg.Keybindings = kb

	return cfg, nil
}
