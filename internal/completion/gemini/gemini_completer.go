package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gascompare/internal/completion"
	"gascompare/internal/config"
	"gascompare/internal/domain"
	"gascompare/internal/port"
)

const (
	apiBaseURL   = "https://generativelanguage.googleapis.com/v1beta/models"
	providerName = "gemini"
)

func init() {
	completion.RegisterProvider(providerName, func(cfg *config.CompletionProviderConfig) (port.Completer, error) {
		return NewCompleter(cfg), nil
	})
}

// Completer implements port.Completer using Google's Gemini API.
type Completer struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewCompleter creates a Gemini completer.
func NewCompleter(cfg *config.CompletionProviderConfig) *Completer {
	return newCompleter(cfg, "")
}

// NewCompleterWithEndpoint creates a completer pointing at a custom API endpoint (for testing).
func NewCompleterWithEndpoint(cfg *config.CompletionProviderConfig, endpoint string) *Completer {
	return newCompleter(cfg, endpoint)
}

func newCompleter(cfg *config.CompletionProviderConfig, endpoint string) *Completer {
	model := cfg.DefaultModel
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Completer{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *Completer) Complete(ctx context.Context, in port.CompletionRequest) (*port.CompletionResponse, error) {
	genConfig := map[string]interface{}{
		"temperature": in.Temperature,
	}
	if in.MaxOutputTokens > 0 {
		genConfig["maxOutputTokens"] = in.MaxOutputTokens
	}
	if in.JSONOutput {
		genConfig["responseMimeType"] = "application/json"
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role":  "user",
				"parts": []map[string]interface{}{{"text": in.UserPrompt}},
			},
		},
		"generationConfig": genConfig,
	}
	if in.SystemPrompt != "" {
		reqBody["systemInstruction"] = map[string]interface{}{
			"parts": []map[string]interface{}{{"text": in.SystemPrompt}},
		}
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: calling gemini API: %w", domain.ErrCompletionUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", domain.ErrCompletionUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, completion.StatusError(providerName, resp.StatusCode, respBody, resp.Header.Get("Retry-After"))
	}

	return parseResponse(respBody, c.model)
}

// geminiResponse models the Gemini API response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	ModelVersion string `json:"modelVersion"`
}

func parseResponse(body []byte, model string) (*port.CompletionResponse, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: unmarshaling response: %w", domain.ErrMalformedCompletion, err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates", domain.ErrMalformedCompletion)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("%w: no parts (finishReason: %s)", domain.ErrMalformedCompletion, resp.Candidates[0].FinishReason)
	}

	if resp.ModelVersion != "" {
		model = resp.ModelVersion
	}
	return &port.CompletionResponse{
		Text:         text.String(),
		Model:        model,
		FinishReason: resp.Candidates[0].FinishReason,
	}, nil
}
