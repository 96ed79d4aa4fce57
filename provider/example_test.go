package provider_test

import (
	"fmt"
	"log"

	"precisionpercent/provider"
)

// ExampleNewProvider demonstrates creating the default Gemini provider using the factory.
func ExampleNewProvider() {
	cfg := provider.Config{
		Type:  provider.ProviderTypeGemini,
		Model: "gemini-3-flash-preview",
	}

	p, err := provider.NewProvider(cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Provider created: %T (%s)\n", p, p.GetModel())
	// Output: Provider created: *provider.GeminiProvider (gemini-3-flash-preview)
}

// ExampleNewOllamaProvider demonstrates creating an Ollama provider directly.
func ExampleNewOllamaProvider() {
	p, err := provider.NewOllamaProvider("http://localhost:11434", "llama3.1")
	if err != nil {
		log.Fatal(err)
	}

	// Check current model
	currentModel := p.GetModel()
	fmt.Printf("Current model: %s\n", currentModel)

	// Change model
	p.SetModel("llama3.2:latest")
	fmt.Printf("New model: %s\n", p.GetModel())

	// Output:
	// Current model: llama3.1
	// New model: llama3.2:latest
}

// ExampleOpenRouterProvider_GetDisplayName shows vendor prefix stripping.
func ExampleOpenRouterProvider_GetDisplayName() {
	p, err := provider.NewOpenRouterProvider("", "or-key", "google/gemini-2.5-flash")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(p.GetModel())
	fmt.Println(p.GetDisplayName())
	// Output:
	// google/gemini-2.5-flash
	// gemini-2.5-flash
}
