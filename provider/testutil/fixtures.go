package testutil

import (
	"context"
	"errors"

	"precisionpercent/model"
)

// ErrUnavailable simulates a network or authentication failure.
var ErrUnavailable = errors.New("service unavailable")

// SampleQuestions are realistic assistant questions for tests
func SampleQuestions() []string {
	return []string{
		"What is 15% of 240?",
		"If a price rises from 80 to 100, what is the percent increase?",
		"How do I compute a 7.5% sales tax on $1,299?",
	}
}

// FailingProvider returns a mock whose Generate always fails with err.
func FailingProvider(err error) *MockProvider {
	mock := NewMockProvider("failing-model")
	mock.GenerateFunc = func(ctx context.Context, prompt string, params model.GenerationParams) (string, error) {
		return "", err
	}
	return mock
}

// SilentProvider returns a mock whose Generate succeeds with no text.
func SilentProvider() *MockProvider {
	mock := NewMockProvider("silent-model")
	mock.GenerateFunc = func(ctx context.Context, prompt string, params model.GenerationParams) (string, error) {
		return "", nil
	}
	return mock
}

// EchoProvider returns a mock that answers with a fixed text.
func EchoProvider(answer string) *MockProvider {
	mock := NewMockProvider("echo-model")
	mock.GenerateFunc = func(ctx context.Context, prompt string, params model.GenerationParams) (string, error) {
		return answer, nil
	}
	return mock
}
