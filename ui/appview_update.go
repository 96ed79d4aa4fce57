package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"precisionpercent/calc"
	"precisionpercent/config"
	"precisionpercent/provider"
)

func (a AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.textarea.SetWidth(max(a.width-4, 20))
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		// Let the tick chain die once the answer is in.
		if !a.dataModel.Query.Pending {
			return a, nil
		}
		var cmd tea.Cmd
		a.loadingSpinner, cmd = a.loadingSpinner.Update(msg)
		return a, cmd

	case answerMsg:
		a.dataModel.ApplyAnswer(msg)
		return a, nil

	case frameTickMsg:
		a.gauge.Step()
		if a.gauge.Settled() {
			a.animating = false
			return a, nil
		}
		return a, frameTick()

	case modelsListMsg:
		a.modelListLoading = false
		a.modelListErr = msg.Err
		a.modelList = msg.Models
		a.filteredModelList = msg.Models
		a.selectedModelIdx = 0
		if i, _ := FindModelByName(a.modelList, a.currentModel()); i >= 0 {
			a.selectedModelIdx = i
		}
		return a, nil

	case chartExportedMsg:
		if msg.Err != nil {
			cmd := a.flash(fmt.Sprintf("Export failed: %v", msg.Err), true)
			return a, cmd
		}
		cmd := a.flash("Chart saved to "+msg.Path, false)
		return a, cmd

	case flashTickMsg:
		if a.flashCount > 0 {
			a.flashCount--
		}
		if a.flashCount == 0 {
			a.statusMsg = ""
			a.statusErr = false
		}
		return a, nil

	case provider.PingProviderMsg:
		if msg.Valid {
			a.provider = providerReachable
		} else {
			a.provider = providerUnreachable
		}
		return a, nil
	}

	// Cursor blink and other component messages go to the focused input.
	return a.updateFocused(msg)
}

func (a AppView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kb := a.keys()
	pressed := msg.String()

	// PRIORITY 0: Always-global shortcuts (quit, help toggle)
	if pressed == "ctrl+c" || kb.Matches("quit", pressed) {
		if config.Debug {
			config.DebugLog.Debugw("quit requested", "key", pressed)
		}
		return a, tea.Quit
	}

	if kb.Matches("help", pressed) {
		a.showHelp = !a.showHelp
		return a, nil
	}

	// PRIORITY 1: Open modals swallow everything else
	if a.showHelp {
		if pressed == "esc" {
			a.showHelp = false
		}
		return a, nil
	}

	if a.showAbout {
		if pressed == "esc" || kb.Matches("close_about", pressed) {
			a.showAbout = false
		}
		return a, nil
	}

	if a.showModelSelector {
		return a.handleModelSelectorKey(msg)
	}

	// PRIORITY 2: Global actions
	switch {
	case kb.Matches("about", pressed):
		a.closeAllModals()
		a.showAbout = true
		return a, nil

	case kb.Matches("model_selector", pressed):
		return a.openModelSelector()

	case kb.Matches("mode_standard", pressed):
		cmd := a.setMode(calc.Standard)
		return a, cmd

	case kb.Matches("mode_reverse", pressed):
		cmd := a.setMode(calc.Reverse)
		return a, cmd

	case kb.Matches("mode_change", pressed):
		cmd := a.setMode(calc.Change)
		return a, cmd

	case kb.Matches("next_mode", pressed):
		cmd := a.setMode(a.dataModel.Mode.Next())
		return a, cmd

	case kb.Matches("focus_next", pressed):
		a.setFocus(a.focus + 1)
		return a, nil

	case kb.Matches("focus_prev", pressed):
		a.setFocus(a.focus - 1)
		return a, nil

	case kb.Matches("export_chart", pressed):
		return a, a.dataModel.ExportChart()

	case kb.Matches("yank_result", pressed):
		cmd := a.copyToClipboard(a.resultDisplay(), "Result copied")
		return a, cmd

	case kb.Matches("yank_answer", pressed):
		if a.dataModel.Query.Answer == "" {
			return a, nil
		}
		cmd := a.copyToClipboard(a.dataModel.Query.Answer, "Answer copied")
		return a, cmd

	case kb.Matches("clear_input", pressed):
		return a.clearFocused()

	case kb.Matches("submit_query", pressed):
		if a.focus != focusQuery {
			a.setFocus(a.focus + 1)
			return a, nil
		}
		return a.submitQuery()
	}

	return a.updateFocused(msg)
}

// updateFocused forwards msg to the focused component and feeds any change
// in the numeric inputs back to the calculator.
func (a AppView) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.focus {
	case focusInputA:
		before := a.inputA.Value()
		a.inputA, cmd = a.inputA.Update(msg)
		if v := a.inputA.Value(); v != before {
			a.dataModel.SetInputA(v)
			return a, tea.Batch(cmd, a.retargetGauge())
		}

	case focusInputB:
		before := a.inputB.Value()
		a.inputB, cmd = a.inputB.Update(msg)
		if v := a.inputB.Value(); v != before {
			a.dataModel.SetInputB(v)
			return a, tea.Batch(cmd, a.retargetGauge())
		}

	case focusQuery:
		a.textarea, cmd = a.textarea.Update(msg)
	}

	return a, cmd
}

func (a *AppView) setMode(mode calc.Mode) tea.Cmd {
	if mode == a.dataModel.Mode {
		return nil
	}
	a.dataModel.SetMode(mode)
	a.applyModeLabels()
	return a.retargetGauge()
}

// retargetGauge points the gauge at the current proportion and starts the
// frame ticker unless it is already running.
func (a *AppView) retargetGauge() tea.Cmd {
	target := a.dataModel.Proportion().Fraction()
	if target == a.gauge.Target() && !a.animating {
		return nil
	}
	a.gauge.SetTarget(target)
	if a.animating || a.gauge.Settled() {
		return nil
	}
	a.animating = true
	return frameTick()
}

func (a AppView) submitQuery() (tea.Model, tea.Cmd) {
	cmd := a.dataModel.SubmitQuery(a.textarea.Value())
	if cmd == nil {
		return a, nil
	}
	a.textarea.Reset()
	return a, tea.Batch(cmd, a.loadingSpinner.Tick)
}

func (a AppView) clearFocused() (tea.Model, tea.Cmd) {
	switch a.focus {
	case focusInputA:
		a.inputA.SetValue("")
		a.dataModel.SetInputA("")
		cmd := a.retargetGauge()
		return a, cmd
	case focusInputB:
		a.inputB.SetValue("")
		a.dataModel.SetInputB("")
		cmd := a.retargetGauge()
		return a, cmd
	case focusQuery:
		a.textarea.Reset()
	}
	return a, nil
}

func (a *AppView) copyToClipboard(text, done string) tea.Cmd {
	if err := clipboard.WriteAll(text); err != nil {
		config.DebugLog.Warnw("clipboard write failed", "error", err)
		return a.flash("Clipboard unavailable", true)
	}
	return a.flash(done, false)
}

// flash shows msg in the status bar until the matching flashTickMsg.
func (a *AppView) flash(msg string, isErr bool) tea.Cmd {
	a.statusMsg = msg
	a.statusErr = isErr
	a.flashCount++
	return flashTick()
}

// resultDisplay is the result card text including the mode's unit.
func (a AppView) resultDisplay() string {
	if a.dataModel.Result == nil {
		return a.dataModel.ResultText()
	}
	return calc.FormatResult(a.dataModel.Mode, a.dataModel.Result.Value)
}
