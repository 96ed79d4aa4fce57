package model

import (
	"precisionpercent/ollama"
)

// AnswerMsg carries a settled assistant answer back to the UI.
type AnswerMsg struct {
	Seq      uint64
	Question string
	Answer   Answer
}

type ModelsListMsg struct {
	Models []ollama.ModelInfo
	Err    error
}

type ChartExportedMsg struct {
	Path string
	Err  error
}

type FrameTickMsg struct{}

type FlashTickMsg struct{}
