// Package inference composes prompts from survey rows and turns provider
// responses, including failures, into operator-facing Spanish text.
package inference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrClientNotInitialized is shown whenever analysis is requested while the
// AI client never became ready. It is a fixed string: no network call is
// attempted in that state.
const ErrClientNotInitialized = "Error: El cliente de Google Gemini no está inicializado correctamente. Verifica la clave API."

// Analyzer answers natural-language questions about loaded sheet data. The
// client and its initialization status are injected at construction.
type Analyzer struct {
	client Client
	status Status
}

func NewAnalyzer(client Client, status Status) *Analyzer {
	return &Analyzer{
		client: client,
		status: status,
	}
}

// Status returns the initialization status the Analyzer was built with.
func (a *Analyzer) Status() Status {
	return a.status
}

// GetAnswer builds the prompt for question over sheetData, performs one
// blocking provider call, and returns display text. Every failure mode is
// converted to a Spanish-language string here; this function never returns
// an error and never mutates sheetData.
func (a *Analyzer) GetAnswer(ctx context.Context, question string, sheetData [][]string) string {
	if !a.status.Ready || a.client == nil {
		return ErrClientNotInitialized
	}

	prompt := BuildPrompt(question, sheetData)
	slog.Default().Debug("sending prompt to Google Gemini",
		slog.String("model", a.status.Model),
		slog.Int("promptLength", len(prompt)),
	)

	answer, err := a.client.GenerateAnswer(ctx, prompt)
	if err != nil {
		detail := ""
		var detailedErr DetailedError
		if errors.As(err, &detailedErr) {
			detail = detailedErr.Detail()
		}
		slog.Default().Error("Gemini call failed",
			slog.Any("error", err),
			slog.String("detail", detail),
		)
		return fmt.Sprintf("Error al comunicar con Google Gemini: %s (%s)", err, detail)
	}
	return answer
}
