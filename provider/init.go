package provider

import (
	"precisionpercent/config"
	"precisionpercent/model"
)

// InitializeProvider creates the configured provider.
//
// The provider package owns the complete provider lifecycle, so all
// initialization logic lives here, not in config or ui packages.
//
// Returns nil if the provider cannot be created (unknown provider ID,
// invalid base URL). The assistant then answers every question with its
// error fallback, and the app keeps working as a calculator.
func InitializeProvider(cfg *config.Config) model.Provider {
	providerType := MapProviderIDToType(cfg.Provider)

	p, err := NewProvider(Config{
		Type:    providerType,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		APIKey:  cfg.APIKey,
	})
	if err != nil {
		config.DebugLog.Warnw("provider initialization failed", "provider", cfg.Provider, "error", err)
		return nil
	}

	if config.Debug {
		config.DebugLog.Debugw("initialized provider", "provider", cfg.Provider, "type", providerType, "model", p.GetModel())
	}

	return p
}
