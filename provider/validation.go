package provider

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"precisionpercent/config"
)

// PingProviderMsg is sent when provider ping completes
type PingProviderMsg struct {
	ProviderID string
	Valid      bool
	Err        error
}

// PingProvider checks that a provider is reachable with the given credentials.
// The UI runs it at startup to show a connection indicator.
func PingProvider(providerID, baseURL, apiKey string) tea.Cmd {
	return func() tea.Msg {
		p, err := NewProvider(Config{
			Type:    MapProviderIDToType(providerID),
			BaseURL: baseURL,
			APIKey:  apiKey,
		})
		if err != nil {
			return PingProviderMsg{
				ProviderID: providerID,
				Valid:      false,
				Err:        fmt.Errorf("failed to create provider: %w", err),
			}
		}

		if err := p.Ping(context.Background()); err != nil {
			config.DebugLog.Warnw("provider ping failed", "provider", providerID, "error", err)
			return PingProviderMsg{
				ProviderID: providerID,
				Valid:      false,
				Err:        fmt.Errorf("connection failed: %w", err),
			}
		}

		if config.Debug {
			config.DebugLog.Debugw("provider ping successful", "provider", providerID)
		}

		return PingProviderMsg{
			ProviderID: providerID,
			Valid:      true,
		}
	}
}
