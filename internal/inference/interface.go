package inference

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client is the hosted generative-AI provider used to answer survey questions.
type Client interface {
	// GenerateAnswer sends one composed prompt and returns the extracted
	// answer text. Single blocking call, no retry, no streaming.
	GenerateAnswer(ctx context.Context, prompt string) (string, error)

	// ListModels returns the model names the provider exposes. Used only as
	// a startup health probe for the dashboard status panel.
	ListModels(ctx context.Context) ([]string, error)
}

// DetailedError is implemented by provider errors that carry a more specific
// provider-supplied message than Error() alone.
type DetailedError interface {
	error
	Detail() string
}

// Status describes whether the AI client is usable. It is computed once at
// startup and travels with the Analyzer.
type Status struct {
	Ready  bool
	Model  string
	Reason string
}

// NewStatus probes the client once and reports whether analysis is available.
// A missing API key or a failed model listing leaves the dashboard usable
// with analysis disabled.
func NewStatus(ctx context.Context, client Client, model string, apiKey string) Status {
	if apiKey == "" {
		return Status{Reason: "GOOGLE_API_KEY is not set"}
	}
	if client == nil {
		return Status{Reason: "AI client is not configured"}
	}
	if _, err := client.ListModels(ctx); err != nil {
		return Status{Reason: fmt.Sprintf("model listing failed: %v", err)}
	}
	return Status{Ready: true, Model: model}
}
