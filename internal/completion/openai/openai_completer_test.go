package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gascompare/internal/completion"
	"gascompare/internal/completion/openai"
	"gascompare/internal/config"
	"gascompare/internal/domain"
	"gascompare/internal/port"
)

func newTestCompleter(serverURL string) *openai.Completer {
	return openai.NewCompleterWithEndpoint(&config.CompletionProviderConfig{
		Provider:     "openai",
		APIKey:       "test-openai-key",
		DefaultModel: "gpt-4o-mini",
		TimeoutSecs:  5,
	}, serverURL)
}

func extractionRequest() port.CompletionRequest {
	return port.CompletionRequest{
		SystemPrompt:    "system",
		UserPrompt:      "user",
		Temperature:     0.05,
		MaxOutputTokens: 3000,
		JSONOutput:      true,
	}
}

func TestCompleter_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-openai-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "gpt-4o-mini", reqBody["model"])
		assert.Equal(t, 0.05, reqBody["temperature"])
		assert.Equal(t, float64(3000), reqBody["max_tokens"])
		assert.Equal(t, map[string]interface{}{"type": "json_object"}, reqBody["response_format"])

		messages := reqBody["messages"].([]interface{})
		require.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].(map[string]interface{})["role"])
		assert.Equal(t, "user", messages[1].(map[string]interface{})["content"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"model": "gpt-4o-mini-2024-07-18",
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"role": "assistant", "content": `{"offers":[]}`}, "finish_reason": "stop"},
			},
		})
	}))
	defer server.Close()

	resp, err := newTestCompleter(server.URL).Complete(context.Background(), extractionRequest())

	require.NoError(t, err)
	assert.Equal(t, `{"offers":[]}`, resp.Text)
	assert.Equal(t, "gpt-4o-mini-2024-07-18", resp.Model)
	assert.Equal(t, "stop", resp.FinishReason)
}

func TestCompleter_TruncatedOutputIsReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"content": `{"offers":[{"fourn`}, "finish_reason": "length"},
			},
		})
	}))
	defer server.Close()

	resp, err := newTestCompleter(server.URL).Complete(context.Background(), extractionRequest())

	require.NoError(t, err)
	assert.Equal(t, "length", resp.FinishReason)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
}

func TestCompleter_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "20")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit"}}`))
	}))
	defer server.Close()

	_, err := newTestCompleter(server.URL).Complete(context.Background(), extractionRequest())

	var rlErr *completion.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, 20*time.Second, rlErr.RetryAfter)
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestCompleter_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestCompleter(server.URL).Complete(context.Background(), extractionRequest())
	assert.ErrorIs(t, err, domain.ErrCompletionUnavailable)
}

func TestCompleter_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	_, err := newTestCompleter(server.URL).Complete(context.Background(), extractionRequest())
	assert.ErrorIs(t, err, domain.ErrMalformedCompletion)
}

func TestCompleter_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestCompleter(url).Complete(context.Background(), extractionRequest())
	assert.ErrorIs(t, err, domain.ErrCompletionUnavailable)
}
