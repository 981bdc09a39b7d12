package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gascompare/internal/completion"
	"gascompare/internal/completion/gemini"
	"gascompare/internal/config"
	"gascompare/internal/domain"
	"gascompare/internal/port"
)

func newTestCompleter(serverURL string) *gemini.Completer {
	return gemini.NewCompleterWithEndpoint(&config.CompletionProviderConfig{
		Provider:    "gemini",
		APIKey:      "test-gemini-key",
		TimeoutSecs: 5,
	}, serverURL)
}

func TestCompleter_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-gemini-key", r.Header.Get("x-goog-api-key"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		genConfig := reqBody["generationConfig"].(map[string]interface{})
		assert.Equal(t, "application/json", genConfig["responseMimeType"])
		assert.Equal(t, float64(3000), genConfig["maxOutputTokens"])
		assert.Equal(t, 0.05, genConfig["temperature"])
		assert.NotNil(t, reqBody["systemInstruction"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content":      map[string]interface{}{"parts": []map[string]interface{}{{"text": `{"offers":[]}`}}},
					"finishReason": "STOP",
				},
			},
			"modelVersion": "gemini-2.0-flash-001",
		})
	}))
	defer server.Close()

	resp, err := newTestCompleter(server.URL).Complete(context.Background(), port.CompletionRequest{
		SystemPrompt:    "system",
		UserPrompt:      "user",
		Temperature:     0.05,
		MaxOutputTokens: 3000,
		JSONOutput:      true,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"offers":[]}`, resp.Text)
	assert.Equal(t, "gemini-2.0-flash-001", resp.Model)
	assert.Equal(t, "STOP", resp.FinishReason)
}

func TestCompleter_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestCompleter(server.URL).Complete(context.Background(), port.CompletionRequest{UserPrompt: "x"})

	var rlErr *completion.RateLimitError
	assert.True(t, errors.As(err, &rlErr))
}

func TestCompleter_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	_, err := newTestCompleter(server.URL).Complete(context.Background(), port.CompletionRequest{UserPrompt: "x"})
	assert.ErrorIs(t, err, domain.ErrMalformedCompletion)
}

func TestCompleter_BadRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := newTestCompleter(server.URL).Complete(context.Background(), port.CompletionRequest{UserPrompt: "x"})
	assert.ErrorIs(t, err, domain.ErrCompletionUnavailable)
}
