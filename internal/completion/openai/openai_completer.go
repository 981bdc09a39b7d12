package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gascompare/internal/completion"
	"gascompare/internal/config"
	"gascompare/internal/domain"
	"gascompare/internal/port"
)

const (
	apiURL       = "https://api.openai.com/v1/chat/completions"
	providerName = "openai"
)

func init() {
	completion.RegisterProvider(providerName, func(cfg *config.CompletionProviderConfig) (port.Completer, error) {
		return NewCompleter(cfg), nil
	})
}

// Completer implements port.Completer using the OpenAI Chat Completions API.
type Completer struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewCompleter creates an OpenAI completer from a provider config.
func NewCompleter(cfg *config.CompletionProviderConfig) *Completer {
	return newCompleter(cfg, apiURL)
}

// NewCompleterWithEndpoint creates a completer pointing at a custom API endpoint (for testing).
func NewCompleterWithEndpoint(cfg *config.CompletionProviderConfig, endpoint string) *Completer {
	return newCompleter(cfg, endpoint)
}

func newCompleter(cfg *config.CompletionProviderConfig, endpoint string) *Completer {
	model := cfg.DefaultModel
	if model == "" {
		model = "gpt-4o-mini"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Completer{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *Completer) Complete(ctx context.Context, in port.CompletionRequest) (*port.CompletionResponse, error) {
	messages := make([]map[string]interface{}, 0, 2)
	if in.SystemPrompt != "" {
		messages = append(messages, map[string]interface{}{"role": "system", "content": in.SystemPrompt})
	}
	messages = append(messages, map[string]interface{}{"role": "user", "content": in.UserPrompt})

	reqBody := map[string]interface{}{
		"model":       c.model,
		"messages":    messages,
		"temperature": in.Temperature,
	}
	if in.MaxOutputTokens > 0 {
		reqBody["max_tokens"] = in.MaxOutputTokens
	}
	if in.JSONOutput {
		reqBody["response_format"] = map[string]interface{}{"type": "json_object"}
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
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: calling openai API: %w", domain.ErrCompletionUnavailable, err)
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

// apiResponse models the OpenAI Chat Completions API response.
type apiResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func parseResponse(body []byte, model string) (*port.CompletionResponse, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: unmarshaling response: %w", domain.ErrMalformedCompletion, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", domain.ErrMalformedCompletion)
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return nil, fmt.Errorf("%w: empty message content (finish_reason: %s)", domain.ErrMalformedCompletion, resp.Choices[0].FinishReason)
	}

	if resp.Model != "" {
		model = resp.Model
	}
	return &port.CompletionResponse{
		Text:         text,
		Model:        model,
		FinishReason: resp.Choices[0].FinishReason,
	}, nil
}
