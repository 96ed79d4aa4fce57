package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"precisionpercent/config"
	"precisionpercent/model"
	"precisionpercent/provider"
	"precisionpercent/ui"
)

const (
	Version = "v0.1.0"
	License = "Apache-2.0"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	serve := len(args) > 0 && args[0] == "serve"

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		if serve {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			return 1
		}
		showErrorModal("Configuration Error", err.Error())
		return 1
	}

	// Initialize debug logging after config is loaded
	config.InitDebugLog(cfg.DataDir())
	defer config.SyncDebugLog()
	for _, warning := range cfg.Warnings {
		config.DebugLog.Warnw("configuration warning", "warning", warning)
	}

	if serve {
		if err := runServer(cfg, args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	p := provider.InitializeProvider(cfg)
	appView := ui.NewAppView(model.NewModel(cfg, p, Version, License))

	program := tea.NewProgram(
		appView,
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		config.DebugLog.Errorw("program exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func showErrorModal(title, message string) {
	p := tea.NewProgram(
		ui.NewErrorModal(title, message),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
