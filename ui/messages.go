package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"precisionpercent/model"
	"precisionpercent/visual"
)

// Message type aliases - these are defined in the model package
type answerMsg = model.AnswerMsg
type modelsListMsg = model.ModelsListMsg
type chartExportedMsg = model.ChartExportedMsg
type frameTickMsg = model.FrameTickMsg
type flashTickMsg = model.FlashTickMsg

// statusFlashDuration is how long a status line message stays visible.
const statusFlashDuration = 2 * time.Second

func frameTick() tea.Cmd {
	return tea.Tick(visual.FrameInterval, func(time.Time) tea.Msg {
		return frameTickMsg{}
	})
}

func flashTick() tea.Cmd {
	return tea.Tick(statusFlashDuration, func(time.Time) tea.Msg {
		return flashTickMsg{}
	})
}
