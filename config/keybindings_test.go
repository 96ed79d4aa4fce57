package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetActionKeyDefaults(t *testing.T) {
	kb := DefaultKeybindings()

	tests := []struct {
		action string
		want   string
	}{
		{"help", "alt+h"},
		{"mode_reverse", "alt+2"},
		{"yank_result", "alt+Y"},
		{"about", "alt+A"},
		{"focus_next", "tab"},
		{"submit_query", "enter"},
		{"does_not_exist", ""},
	}

	for _, tt := range tests {
		if got := kb.GetActionKey(tt.action); got != tt.want {
			t.Errorf("GetActionKey(%q) = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestGetActionKeyModifiersAndOverrides(t *testing.T) {
	kb := &KeyBindingsConfig{
		Modifiers: ModifierConfig{Primary: "ctrl", Secondary: "ctrl+shift"},
		Actions:   map[string]string{"quit": "ctrl+shift+q"},
	}

	if got := kb.GetActionKey("export_chart"); got != "ctrl+e" {
		t.Errorf("export_chart = %q, want ctrl+e", got)
	}
	if got := kb.GetActionKey("quit"); got != "ctrl+shift+q" {
		t.Errorf("quit override = %q", got)
	}
	if !kb.Matches("quit", "ctrl+shift+q") {
		t.Error("Matches should honor override")
	}
	if kb.Matches("does_not_exist", "") {
		t.Error("unknown action must never match")
	}
}

func TestDisplayActionKey(t *testing.T) {
	kb := DefaultKeybindings()
	if got := kb.DisplayActionKey("yank_result"); got != "Alt+Shift+Y" {
		t.Errorf("DisplayActionKey(yank_result) = %q", got)
	}
	if got := kb.DisplayActionKey("help"); got != "Alt+H" {
		t.Errorf("DisplayActionKey(help) = %q", got)
	}
}

func TestLoadKeybindingsCreatesTemplate(t *testing.T) {
	dir := t.TempDir()

	kb, err := LoadKeybindings(dir)
	if err != nil {
		t.Fatalf("LoadKeybindings() error = %v", err)
	}
	if kb.Primary() != "alt" {
		t.Errorf("Primary() = %q", kb.Primary())
	}
	if !FileExists(filepath.Join(dir, "keybindings.toml")) {
		t.Error("keybindings.toml not created")
	}

	// Loading the generated template must succeed and keep defaults.
	kb, err = LoadKeybindings(dir)
	if err != nil {
		t.Fatalf("reloading template: %v", err)
	}
	if kb.Secondary() != "alt+shift" {
		t.Errorf("Secondary() = %q", kb.Secondary())
	}
}

func TestLoadKeybindingsOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `[modifiers]
primary = "ctrl"

[actions]
mode_standard = "f1"
`
	if err := os.WriteFile(filepath.Join(dir, "keybindings.toml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	kb, err := LoadKeybindings(dir)
	if err != nil {
		t.Fatalf("LoadKeybindings() error = %v", err)
	}
	if kb.GetActionKey("mode_standard") != "f1" {
		t.Errorf("override not applied: %q", kb.GetActionKey("mode_standard"))
	}
	if kb.GetActionKey("help") != "ctrl+h" {
		t.Errorf("primary modifier not applied: %q", kb.GetActionKey("help"))
	}
	// Missing secondary falls back to the default.
	if kb.Secondary() != "alt+shift" {
		t.Errorf("Secondary() = %q", kb.Secondary())
	}
}

func TestValidate(t *testing.T) {
	kb := &KeyBindingsConfig{Modifiers: ModifierConfig{Primary: "shift", Secondary: "alt+shift"}}
	if ok, _ := kb.Validate(); ok {
		t.Error("shift alone must be rejected")
	}

	kb = &KeyBindingsConfig{Modifiers: ModifierConfig{Primary: "ctrl", Secondary: "ctrl+shift"}}
	ok, warning := kb.Validate()
	if !ok || warning == "" {
		t.Errorf("ctrl should be allowed with a warning, got ok=%v warning=%q", ok, warning)
	}
}
