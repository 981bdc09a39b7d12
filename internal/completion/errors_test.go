package completion_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gascompare/internal/completion"
	"gascompare/internal/domain"
)

func TestRateLimitError_Unwrap(t *testing.T) {
	base := errors.New("429 body")
	err := completion.NewRateLimitError("openai", base, 30)

	assert.ErrorIs(t, err, domain.ErrRateLimited)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, 30*time.Second, err.RetryAfter)
	assert.Contains(t, err.Error(), "openai rate limited")
}

func TestNewRateLimitError_DefaultRetryAfter(t *testing.T) {
	err := completion.NewRateLimitError("claude", errors.New("x"), 0)
	assert.Equal(t, 60*time.Second, err.RetryAfter)
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 0, completion.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, completion.ParseRetryAfterHeader("soon"))
	assert.Equal(t, 12, completion.ParseRetryAfterHeader("12"))
}

func TestStatusError(t *testing.T) {
	err := completion.StatusError("gemini", 429, []byte("slow down"), "5")
	var rlErr *completion.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, 5*time.Second, rlErr.RetryAfter)
	assert.Equal(t, "gemini", rlErr.Provider)

	err = completion.StatusError("gemini", 500, []byte("boom"), "")
	assert.ErrorIs(t, err, domain.ErrCompletionUnavailable)
	assert.False(t, errors.As(err, &rlErr))
	assert.Contains(t, err.Error(), "status 500")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", completion.Truncate("abc", 5))
	assert.Equal(t, "ab...", completion.Truncate("abcdef", 2))
}
