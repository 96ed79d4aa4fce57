package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Features is the short feature list shown in the about modal.
var Features = []string{
	"• Standard, reverse and change percentages",
	"• The last five results, newest first",
	"• Animated proportion gauge with PNG export",
	"• Ask the assistant about any calculation",
}

func renderAboutModal(a AppView, width, height int, version, license string) string {
	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(successColor).
		Bold(true).
		Align(lipgloss.Center)

	sb.WriteString(titleStyle.Render("Precision Percent"))
	sb.WriteString("\n\n")

	featureStyle := lipgloss.NewStyle().
		Foreground(dimColor)

	for _, feature := range Features {
		sb.WriteString(featureStyle.Render(feature))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")

	labelStyle := lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(dimColor)

	provider := "none"
	if cfg := a.dataModel.Config; cfg != nil {
		provider = cfg.ProviderName()
	}

	sb.WriteString(labelStyle.Render("Version: "))
	sb.WriteString(valueStyle.Render(version))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("License: "))
	sb.WriteString(valueStyle.Render(license))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("Provider: "))
	sb.WriteString(valueStyle.Render(fmt.Sprintf("%s (%s)", provider, a.dataModel.ModelName())))
	sb.WriteString("\n\n")

	sb.WriteString(featureStyle.Render(fmt.Sprintf("Press Esc or %s to close", a.keys().DisplayActionKey("close_about"))))
	sb.WriteString("\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, boxStyle.Render(sb.String()))
}
