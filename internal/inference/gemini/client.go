// Package gemini implements inference.Client against the Gemini
// generateContent REST API.
package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/acalderon/encuestas/internal/fault"
	"resty.dev/v3"
)

type Client struct {
	httpClient *resty.Client
	model      string
}

func NewClient(apiKey, model, baseURL string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("x-goog-api-key", apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient: client,
		model:      model,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client *Client) GetModel() string {
	return client.model
}

type GenerateContentRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
	SafetySettings   []SafetySetting  `json:"safetySettings"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text,omitempty"`
}

type GenerationConfig struct {
	Temperature     float32 `json:"temperature"`
	TopP            float32 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// Sampling parameters are fixed: low temperature for deterministic answers
// over survey rows, and a 1024-token ceiling on the output.
var defaultGenerationConfig = GenerationConfig{
	Temperature:     0.2,
	TopP:            0.95,
	TopK:            40,
	MaxOutputTokens: 1024,
}

var defaultSafetySettings = []SafetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

// GenerateContentResponse covers the response shapes the API has been
// observed to return: a flat text field, a bare parts list, or the full
// candidates structure. ExtractText tries them in that order.
type GenerateContentResponse struct {
	Text       string      `json:"text,omitempty"`
	Parts      []Part      `json:"parts,omitempty"`
	Candidates []Candidate `json:"candidates,omitempty"`
}

type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

// ExtractText concatenates every discoverable text fragment in structural
// order, with no added separators. It returns "" when no shape matches.
func (r *GenerateContentResponse) ExtractText() string {
	if r == nil {
		return ""
	}
	if r.Text != "" {
		return r.Text
	}
	if len(r.Parts) > 0 {
		text := ""
		for _, part := range r.Parts {
			text += part.Text
		}
		return text
	}
	if len(r.Candidates) > 0 {
		text := ""
		for _, candidate := range r.Candidates {
			for _, part := range candidate.Content.Parts {
				text += part.Text
			}
		}
		return text
	}
	return ""
}

type apiErrorResponse struct {
	Error APIError `json:"error"`
}

// APIError is the provider's structured error payload. Message is surfaced
// as the provider-supplied detail in operator-facing text.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("response error %d (%s)", e.Code, e.Status)
}

// Detail implements inference.DetailedError.
func (e *APIError) Detail() string {
	return e.Message
}

// GenerateAnswer implements the inference.Client interface
func (client *Client) GenerateAnswer(ctx context.Context, prompt string) (string, error) {
	requestBody := GenerateContentRequest{
		Contents: []Content{
			{Role: "user", Parts: []Part{{Text: prompt}}},
		},
		GenerationConfig: defaultGenerationConfig,
		SafetySettings:   defaultSafetySettings,
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&GenerateContentResponse{}).
		SetError(&apiErrorResponse{}).
		Post("/v1beta/models/" + client.model + ":generateContent")
	if err != nil {
		return "", fault.Wrap(fault.KindTransport, fmt.Errorf("httpClient.Post > %w", err))
	}
	if response.IsError() {
		if errorBody, ok := response.Error().(*apiErrorResponse); ok && errorBody.Error.Message != "" {
			apiErr := errorBody.Error
			return "", &apiErr
		}
		return "", fault.New(fault.KindTransport, "response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*GenerateContentResponse)
	text := responseBody.ExtractText()
	slog.Default().Debug("gemini response content",
		slog.String("model", client.model),
		slog.Int("responseLength", len(text)),
	)
	return text, nil
}

type listModelsResponse struct {
	Models []modelInfo `json:"models"`
}

type modelInfo struct {
	Name string `json:"name"`
}

// ListModels implements the inference.Client interface
func (client *Client) ListModels(ctx context.Context) ([]string, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetResult(&listModelsResponse{}).
		SetError(&apiErrorResponse{}).
		Get("/v1beta/models")
	if err != nil {
		return nil, fault.Wrap(fault.KindTransport, fmt.Errorf("httpClient.Get > %w", err))
	}
	if response.IsError() {
		if errorBody, ok := response.Error().(*apiErrorResponse); ok && errorBody.Error.Message != "" {
			apiErr := errorBody.Error
			return nil, &apiErr
		}
		return nil, fault.New(fault.KindTransport, "response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*listModelsResponse)
	names := make([]string, 0, len(responseBody.Models))
	for _, model := range responseBody.Models {
		names = append(names, model.Name)
	}
	return names, nil
}
