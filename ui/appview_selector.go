package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

func (a AppView) renderModelSelector(width, height int) string {
	modalWidth := width - 10
	if modalWidth > 80 {
		modalWidth = 80
	}
	modalHeight := height - 6

	// Title section (no borders)
	titleSection := lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Width(modalWidth).
		Render("Select Model")

	displayList := a.getModelList()

	var header string
	switch {
	case a.modelListLoading:
		header = a.modelFilterInput.View() + DimStyle.Render("  loading...")
	case len(a.modelList) == len(displayList):
		header = a.modelFilterInput.View() + DimStyle.Render(fmt.Sprintf("  %d models", len(a.modelList)))
	default:
		header = a.modelFilterInput.View() + DimStyle.Render(fmt.Sprintf("  %d of %d models", len(displayList), len(a.modelList)))
	}

	// Header section (with top and bottom borders)
	headerSection := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(modalWidth).
		BorderTop(true).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dimColor).
		Render(header)

	var modelLines []string
	maxLines := max(modalHeight-8, 1) // Reserve space for title, borders, header, footer
	currentModel := a.currentModel()

	if len(displayList) == 0 {
		emptyMsg := "No models available"
		switch {
		case a.modelListLoading:
			emptyMsg = "Fetching models..."
		case a.modelListErr != nil:
			emptyMsg = "Could not list models: " + a.modelListErr.Error()
		case a.modelFilterInput.Value() != "":
			emptyMsg = "No matches found"
		}
		modelLines = append(modelLines, lipgloss.NewStyle().
			Foreground(dimColor).
			Italic(true).
			Align(lipgloss.Center).
			Width(modalWidth).
			Render(runewidth.Truncate(emptyMsg, modalWidth, "...")))
	} else {
		startIdx := 0
		endIdx := len(displayList)

		// Scroll if needed
		if len(displayList) > maxLines {
			if a.selectedModelIdx < maxLines/2 {
				endIdx = maxLines
			} else if a.selectedModelIdx >= len(displayList)-maxLines/2 {
				startIdx = len(displayList) - maxLines
			} else {
				startIdx = a.selectedModelIdx - maxLines/2
				endIdx = startIdx + maxLines
			}
		}

		for i := startIdx; i < endIdx && i < len(displayList); i++ {
			model := displayList[i]

			indicator := "  "
			if i == a.selectedModelIdx {
				indicator = "▶ "
			}

			size := ""
			if model.Size > 0 {
				size = humanize.IBytes(uint64(model.Size))
			}

			currentMarker := ""
			if IsCurrentModel(model, currentModel) {
				currentMarker = " (current)"
			}

			maxNameWidth := modalWidth - len(indicator) - len(currentMarker) - len(size) - 4
			name := runewidth.Truncate(model.Name, max(maxNameWidth, 4), "...")

			spacing := modalWidth - len(indicator) - runewidth.StringWidth(name) - len(currentMarker) - len(size) - 2
			if spacing < 1 {
				spacing = 1
			}

			line := indicator + name + currentMarker + strings.Repeat(" ", spacing) + size

			lineStyle := lipgloss.NewStyle()
			if i == a.selectedModelIdx {
				lineStyle = lineStyle.Foreground(successColor).Bold(true)
			} else if IsCurrentModel(model, currentModel) {
				lineStyle = lineStyle.Foreground(accentColor).Bold(true)
			}

			modelLines = append(modelLines, lipgloss.NewStyle().
				Width(modalWidth).
				Render(lineStyle.Render(line)))
		}
	}

	emptyLine := strings.Repeat(" ", modalWidth)
	modelLines = append([]string{emptyLine}, modelLines...)
	modelLines = append(modelLines, emptyLine)

	kb := a.keys()
	footerText := FormatFooter("Type", "to filter", "Up/Down", "Navigate", "Enter", "Select", "Esc/"+kb.DisplayActionKey("close_model_selector"), "Close")

	// Footer section (with top border only)
	footerSection := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(modalWidth).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dimColor).
		Render(footerText)

	sections := []string{titleSection, headerSection}
	sections = append(sections, modelLines...)
	sections = append(sections, footerSection)

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
