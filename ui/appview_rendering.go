package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"precisionpercent/calc"
	"precisionpercent/visual"
)

func (a AppView) renderTitle() string {
	appText := AssistantStyle.Bold(true).Render("Precision Percent")
	modelText := TitleStyle.Render(" - " + a.dataModel.ModelName())

	var indicator string
	switch a.provider {
	case providerReachable:
		indicator = lipgloss.NewStyle().Foreground(successColor).Render(" ●")
	case providerUnreachable:
		indicator = lipgloss.NewStyle().Foreground(dangerColor).Render(" ●")
	default:
		indicator = DimStyle.Render(" ○")
	}

	return appText + modelText + indicator
}

func (a AppView) renderModeTabs() string {
	kb := a.keys()
	actions := []string{"mode_standard", "mode_reverse", "mode_change"}

	tabs := make([]string, 0, len(calc.Modes))
	for i, m := range calc.Modes {
		label := fmt.Sprintf("%s %s", m.Title(), DimStyle.Render(kb.DisplayActionKey(actions[i])))
		if m == a.dataModel.Mode {
			tabs = append(tabs, ActiveTabStyle.Render(m.Title()))
			continue
		}
		tabs = append(tabs, InactiveTabStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a AppView) renderInputs() string {
	mode := a.dataModel.Mode
	fieldWidth := max((a.leftColumnWidth()-2)/2-4, 12)

	field := func(label string, view string, focused bool) string {
		style := PanelStyle
		if focused {
			style = FocusedPanelStyle
		}
		return style.Width(fieldWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left, DimStyle.Render(label), view),
		)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		field(mode.LabelA(), a.inputA.View(), a.focus == focusInputA),
		field(mode.LabelB(), a.inputB.View(), a.focus == focusInputB),
	)
}

func (a AppView) renderResultCard() string {
	value := a.dataModel.ResultText()
	style := DimStyle
	if a.dataModel.Result != nil {
		value = a.resultDisplay()
		style = ResultStyle
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		DimStyle.Render("Result"),
		style.Render(value),
	)
	return PanelStyle.Width(max(a.leftColumnWidth()-4, 20)).Render(body)
}

// renderGauge draws the animated bar. The label is always the exact clamped
// value; only the bar eases toward it.
func (a AppView) renderGauge() string {
	p := a.dataModel.Proportion()
	label := p.Label()

	barWidth := max(a.leftColumnWidth()-runewidth.StringWidth(label)-8, 10)
	filled, empty := visual.Bar(a.gauge.Position(), barWidth)

	bar := GaugeFilledStyle.Render(filled) + GaugeEmptyStyle.Render(empty)
	line := bar + " " + TitleStyle.Render(label)

	total := DimStyle.Render("of " + calc.FormatValue(p.Total))
	return PanelStyle.Width(max(a.leftColumnWidth()-4, 20)).Render(
		lipgloss.JoinVertical(lipgloss.Left, DimStyle.Render("Proportion"), line, total),
	)
}

func (a AppView) renderHistory() string {
	width := max(a.rightColumnWidth()-4, 16)
	entries := a.dataModel.History.Entries()

	lines := []string{DimStyle.Render("History")}
	if a.dataModel.History.Len() == 0 {
		lines = append(lines, DimStyle.Italic(true).Render("No history yet"))
	}
	for i, e := range entries {
		text := runewidth.Truncate(describeResult(e.Result), width-9, "...")
		stamp := DimStyle.Render(e.ComputedAt.Format("15:04:05"))
		if i == 0 {
			text = HighlightStyle.Render(text)
		}
		lines = append(lines, text+" "+stamp)
	}

	return PanelStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// describeResult renders one history line such as "15% of 200 = 30".
func describeResult(r calc.Result) string {
	a := calc.FormatOperand(r.A)
	b := calc.FormatOperand(r.B)
	v := calc.FormatResult(r.Mode, r.Value)

	switch r.Mode {
	case calc.Reverse:
		return fmt.Sprintf("%s of %s = %s", a, b, v)
	case calc.Change:
		return fmt.Sprintf("%s → %s = %s", a, b, v)
	default:
		return fmt.Sprintf("%s%% of %s = %s", b, a, v)
	}
}

func (a AppView) renderAssistant() string {
	width := max(a.width-4, 20)
	q := a.dataModel.Query

	var answer string
	switch {
	case q.Pending:
		answer = a.loadingSpinner.View() + DimStyle.Render(" Thinking...")
	case q.Answer != "":
		answer = AssistantStyle.Width(width).Render(q.Answer)
	default:
		answer = DimStyle.Render("Ask a question below and press Enter.")
	}

	lines := []string{DimStyle.Render("Assistant")}
	if q.Question != "" {
		lines = append(lines, TitleStyle.Render(runewidth.Truncate("Q: "+firstLine(q.Question), width, "...")))
	}
	lines = append(lines, answer)

	style := PanelStyle
	if a.focus == focusQuery {
		style = FocusedPanelStyle
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		PanelStyle.Width(width).Render(strings.Join(lines, "\n")),
		style.Width(width).Render(a.textarea.View()),
	)
}

func (a AppView) renderStatusBar() string {
	if a.statusMsg != "" {
		if a.statusErr {
			return ErrorStyle.Render(a.statusMsg)
		}
		return lipgloss.NewStyle().Foreground(successColor).Render(a.statusMsg)
	}

	kb := a.keys()
	descStyle := lipgloss.NewStyle().Foreground(successColor).Bold(true)
	statusBar := fmt.Sprintf("%s %s  Tab %s  %s %s  Enter %s  %s %s  %s %s  %s %s",
		kb.DisplayActionKey("quit"), descStyle.Render("Quit"),
		descStyle.Render("Focus"),
		kb.DisplayActionKey("next_mode"), descStyle.Render("Mode"),
		descStyle.Render("Ask"),
		kb.DisplayActionKey("model_selector"), descStyle.Render("Models"),
		kb.DisplayActionKey("export_chart"), descStyle.Render("Export"),
		kb.DisplayActionKey("help"), descStyle.Render("Help"),
	)
	return StatusStyle.Render(statusBar)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
