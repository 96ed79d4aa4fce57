package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"precisionpercent/config"
)

const (
	// FallbackEmpty is shown when the provider answers with no text.
	FallbackEmpty = "I'm sorry, I couldn't process that calculation. Please try rephrasing."

	// FallbackError is shown when the request fails for any reason.
	FallbackError = "I encountered an error while processing your request. Please ensure your query is valid."
)

const promptPreamble = `You are a helpful mathematical and financial assistant.
The user is asking a question about percentages or calculations.
Provide a clear, concise answer with the steps if necessary.
Keep it professional and friendly.

User question: %s`

// DefaultGenerationParams are used for every assistant question.
var DefaultGenerationParams = GenerationParams{
	Temperature:     0.7,
	TopP:            0.95,
	MaxOutputTokens: 500,
}

var errNoProvider = errors.New("no provider configured")

// Outcome classifies how a question was settled.
type Outcome string

const (
	OutcomeAnswered Outcome = "answered"
	OutcomeEmpty    Outcome = "empty"
	OutcomeFailed   Outcome = "failed"
)

// Answer is the settled text of a question plus how it was reached.
type Answer struct {
	Text    string
	Outcome Outcome
}

// BuildPrompt wraps a question in the assistant preamble.
func BuildPrompt(question string) string {
	return fmt.Sprintf(promptPreamble, question)
}

// IsBlank reports whether a question is empty or whitespace only. Blank
// questions are never sent.
func IsBlank(question string) bool {
	return strings.TrimSpace(question) == ""
}

// Assistant forwards questions to a Provider. It never returns an error:
// failures become one of the fallback strings.
type Assistant struct {
	provider Provider
	params   GenerationParams
}

func NewAssistant(p Provider) *Assistant {
	return &Assistant{provider: p, params: DefaultGenerationParams}
}

// Provider returns the backend, which may be nil.
func (a *Assistant) Provider() Provider {
	return a.provider
}

// Ask returns the answer text for question.
func (a *Assistant) Ask(ctx context.Context, question string) string {
	return a.Resolve(ctx, question).Text
}

// Resolve makes exactly one request and classifies the result.
func (a *Assistant) Resolve(ctx context.Context, question string) Answer {
	if a == nil || a.provider == nil {
		config.DebugLog.Errorw("assistant request failed", "error", errNoProvider)
		return Answer{Text: FallbackError, Outcome: OutcomeFailed}
	}

	text, err := a.provider.Generate(ctx, BuildPrompt(question), a.params)
	if err != nil {
		config.DebugLog.Errorw("assistant request failed",
			"model", a.provider.GetModel(),
			"error", err,
		)
		return Answer{Text: FallbackError, Outcome: OutcomeFailed}
	}

	if text == "" {
		config.DebugLog.Debugw("assistant returned no text", "model", a.provider.GetModel())
		return Answer{Text: FallbackEmpty, Outcome: OutcomeEmpty}
	}

	return Answer{Text: text, Outcome: OutcomeAnswered}
}
