package testutil

import (
	"context"
	"sync"

	"precisionpercent/model"
	"precisionpercent/ollama"
)

// MockProvider implements model.Provider for testing
type MockProvider struct {
	// Configurable responses
	GenerateFunc   func(ctx context.Context, prompt string, params model.GenerationParams) (string, error)
	ListModelsFunc func(ctx context.Context) ([]ollama.ModelInfo, error)
	PingFunc       func(ctx context.Context) error

	// State
	currentModel string

	mu      sync.Mutex
	prompts []string
	params  []model.GenerationParams
}

// NewMockProvider creates a mock provider with default implementations
func NewMockProvider(modelName string) *MockProvider {
	mock := &MockProvider{
		currentModel: modelName,
	}
	mock.GenerateFunc = mock.defaultGenerate
	mock.ListModelsFunc = mock.defaultListModels
	mock.PingFunc = mock.defaultPing
	return mock
}

func (m *MockProvider) defaultGenerate(ctx context.Context, prompt string, params model.GenerationParams) (string, error) {
	return "Mock response", nil
}

func (m *MockProvider) defaultListModels(ctx context.Context) ([]ollama.ModelInfo, error) {
	return []ollama.ModelInfo{
		{Name: "mock-model-2", Size: 2000, InternalName: "mock-model-2"},
		{Name: "mock-model-1", Size: 1000, InternalName: "mock-model-1"},
	}, nil
}

func (m *MockProvider) defaultPing(ctx context.Context) error {
	return nil
}

func (m *MockProvider) Generate(ctx context.Context, prompt string, params model.GenerationParams) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.params = append(m.params, params)
	m.mu.Unlock()
	return m.GenerateFunc(ctx, prompt, params)
}

// Calls returns how many times Generate was invoked.
func (m *MockProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// LastPrompt returns the most recent prompt passed to Generate.
func (m *MockProvider) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

// LastParams returns the most recent generation parameters.
func (m *MockProvider) LastParams() model.GenerationParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.params) == 0 {
		return model.GenerationParams{}
	}
	return m.params[len(m.params)-1]
}

func (m *MockProvider) ListModels(ctx context.Context) ([]ollama.ModelInfo, error) {
	return m.ListModelsFunc(ctx)
}

func (m *MockProvider) GetModel() string {
	return m.currentModel
}

func (m *MockProvider) GetDisplayName() string {
	// Mock provider returns same value as GetModel (no prefix stripping)
	return m.currentModel
}

func (m *MockProvider) SetModel(model string) {
	m.currentModel = model
}

func (m *MockProvider) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}
