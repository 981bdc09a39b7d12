package claude

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
	apiURL       = "https://api.anthropic.com/v1/messages"
	apiVersion   = "2023-06-01"
	providerName = "claude"
)

func init() {
	completion.RegisterProvider(providerName, func(cfg *config.CompletionProviderConfig) (port.Completer, error) {
		return NewCompleter(cfg), nil
	})
}

// Completer implements port.Completer using the Anthropic Messages API.
type Completer struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewCompleter creates a Claude completer from a provider config.
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
		model = "claude-sonnet-4-20250514"
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

// The Messages API has no JSON mode; JSON output is requested in the system prompt.
const jsonInstruction = "Réponds uniquement avec un objet JSON valide."

func (c *Completer) Complete(ctx context.Context, in port.CompletionRequest) (*port.CompletionResponse, error) {
	maxTokens := in.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	system := in.SystemPrompt
	if in.JSONOutput {
		system = strings.TrimSpace(system + "\n\n" + jsonInstruction)
	}

	reqBody := map[string]interface{}{
		"model":       c.model,
		"max_tokens":  maxTokens,
		"temperature": in.Temperature,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": in.UserPrompt,
			},
		},
	}
	if system != "" {
		reqBody["system"] = system
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
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: calling claude API: %w", domain.ErrCompletionUnavailable, err)
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

// apiResponse models the Anthropic Messages API response.
type apiResponse struct {
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

func parseResponse(body []byte, model string) (*port.CompletionResponse, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: unmarshaling response: %w", domain.ErrMalformedCompletion, err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("%w: no text content (stop_reason: %s)", domain.ErrMalformedCompletion, resp.StopReason)
	}

	if resp.Model != "" {
		model = resp.Model
	}
	return &port.CompletionResponse{
		Text:         text.String(),
		Model:        model,
		FinishReason: resp.StopReason,
	}, nil
}
