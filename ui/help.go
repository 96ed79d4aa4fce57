package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (a AppView) renderHelpModal(width, height int) string {
	kb := a.keys()

	green := lipgloss.NewStyle().
		Bold(true).
		Foreground(successColor)

	title := green.Render("Precision Percent - Keyboard Shortcuts")

	blue := lipgloss.NewStyle().Foreground(accentColor)

	globalActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Global Actions"),
		fmt.Sprintf("• %-13s Model selection", kb.DisplayActionKey("model_selector")),
		fmt.Sprintf("• %-13s Export chart", kb.DisplayActionKey("export_chart")),
		fmt.Sprintf("• %-13s About", kb.DisplayActionKey("about")),
		fmt.Sprintf("• %-13s Toggle this help", kb.DisplayActionKey("help")),
		fmt.Sprintf("• %-13s Quit", kb.DisplayActionKey("quit")),
	)

	calculator := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Calculator"),
		fmt.Sprintf("• %-13s Standard", kb.DisplayActionKey("mode_standard")),
		fmt.Sprintf("• %-13s Reverse %%", kb.DisplayActionKey("mode_reverse")),
		fmt.Sprintf("• %-13s Change", kb.DisplayActionKey("mode_change")),
		fmt.Sprintf("• %-13s Next mode", kb.DisplayActionKey("next_mode")),
		fmt.Sprintf("• %-13s Next field", kb.DisplayActionKey("focus_next")),
		fmt.Sprintf("• %-13s Previous field", kb.DisplayActionKey("focus_prev")),
		fmt.Sprintf("• %-13s Clear field", kb.DisplayActionKey("clear_input")),
		fmt.Sprintf("• %-13s Copy result", kb.DisplayActionKey("yank_result")),
	)

	assistant := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Assistant"),
		fmt.Sprintf("• %-13s Ask question", kb.DisplayActionKey("submit_query")),
		"• Alt+Enter     New line",
		fmt.Sprintf("• %-13s Copy answer", kb.DisplayActionKey("yank_answer")),
	)

	tips := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Tips"),
		"• "+"The gauge clamps to 0-100%",
		"• "+"Keys live in keybindings.toml",
	)

	column1 := lipgloss.JoinVertical(
		lipgloss.Left,
		globalActions,
		"",
		tips,
	)

	column2 := lipgloss.JoinVertical(
		lipgloss.Left,
		calculator,
		"",
		assistant,
	)

	columnStyle := lipgloss.NewStyle().Width(42).PaddingLeft(4)

	twoColumns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(column1),
		"    ",
		columnStyle.Render(column2),
	)

	footer := lipgloss.NewStyle().
		Foreground(dimColor).
		Render(fmt.Sprintf("Press %s or Esc to close this help", kb.DisplayActionKey("help")))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		twoColumns,
		"",
		footer,
	)

	helpBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2).
		Width(min(96, max(width-4, 40)))

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox.Render(content),
	)
}
