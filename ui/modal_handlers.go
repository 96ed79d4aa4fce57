package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"precisionpercent/config"
	appmodel "precisionpercent/model"
	"precisionpercent/ollama"
)

func (a AppView) openModelSelector() (tea.Model, tea.Cmd) {
	if a.dataModel.Query.InFlight > 0 {
		cmd := a.flash("Wait for the answer before switching models", true)
		return a, cmd
	}

	a.closeAllModals()
	a.showModelSelector = true
	a.modelListLoading = true
	a.modelListErr = nil
	a.selectedModelIdx = 0

	a.modelFilterInput.SetValue("")
	a.modelFilterInput.Focus()

	return a, tea.Batch(textinput.Blink, a.dataModel.FetchModels())
}

// handleModelSelectorKey handles the model picker. Typing filters the list,
// so navigation uses the arrow keys.
func (a AppView) handleModelSelectorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kb := a.keys()
	pressed := msg.String()

	switch {
	case pressed == "esc" || kb.Matches("close_model_selector", pressed):
		a.closeAllModals()
		return a, nil

	case kb.Matches("model_selector_down", pressed):
		if a.selectedModelIdx < len(a.getModelList())-1 {
			a.selectedModelIdx++
		}
		return a, nil

	case kb.Matches("model_selector_up", pressed):
		if a.selectedModelIdx > 0 {
			a.selectedModelIdx--
		}
		return a, nil

	case kb.Matches("clear_input", pressed):
		a.modelFilterInput.SetValue("")
		a.applyModelFilter()
		return a, nil

	case pressed == "enter":
		list := a.getModelList()
		if a.selectedModelIdx < 0 || a.selectedModelIdx >= len(list) {
			return a, nil
		}
		selected := list[a.selectedModelIdx]
		a.closeAllModals()

		err := a.dataModel.SelectModel(selected.InternalName)
		if errors.Is(err, appmodel.ErrQuestionPending) {
			cmd := a.flash("Wait for the answer before switching models", true)
			return a, cmd
		}
		if err != nil {
			config.DebugLog.Warnw("failed to persist model selection", "model", selected.InternalName, "error", err)
			cmd := a.flash(fmt.Sprintf("Model switched, but not saved: %v", err), true)
			return a, cmd
		}
		cmd := a.flash("Model: "+selected.Name, false)
		return a, cmd
	}

	var cmd tea.Cmd
	a.modelFilterInput, cmd = a.modelFilterInput.Update(msg)
	a.applyModelFilter()

	return a, cmd
}

// applyModelFilter fuzzy-matches the filter text against model names.
func (a *AppView) applyModelFilter() {
	filterValue := a.modelFilterInput.Value()
	if filterValue == "" {
		a.filteredModelList = a.modelList
	} else {
		targets := make([]string, len(a.modelList))
		for i, m := range a.modelList {
			targets[i] = m.Name
		}

		matches := fuzzy.Find(filterValue, targets)
		a.filteredModelList = make([]ollama.ModelInfo, len(matches))
		for i, match := range matches {
			a.filteredModelList[i] = a.modelList[match.Index]
		}
	}

	list := a.getModelList()
	if a.selectedModelIdx >= len(list) {
		a.selectedModelIdx = max(len(list)-1, 0)
	}
}

func (a AppView) getModelList() []ollama.ModelInfo {
	if a.modelFilterInput.Value() != "" {
		return a.filteredModelList
	}
	return a.modelList
}
