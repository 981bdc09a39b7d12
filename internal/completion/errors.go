package completion

import (
	"fmt"
	"strconv"
	"time"

	"gascompare/internal/domain"
)

// RateLimitError indicates a completion provider returned HTTP 429.
// It matches domain.ErrRateLimited under errors.Is.
type RateLimitError struct {
	Err        error
	RetryAfter time.Duration
	Provider   string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (retry after %s): %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() []error {
	return []error{domain.ErrRateLimited, e.Err}
}

// NewRateLimitError creates a RateLimitError. If retryAfterSecs is 0, defaults to 60s.
func NewRateLimitError(provider string, err error, retryAfterSecs int) *RateLimitError {
	if retryAfterSecs <= 0 {
		retryAfterSecs = 60
	}
	return &RateLimitError{
		Err:        err,
		RetryAfter: time.Duration(retryAfterSecs) * time.Second,
		Provider:   provider,
	}
}

// ParseRetryAfterHeader parses a Retry-After header value into seconds.
// Returns 0 if the value is empty or not a valid integer.
func ParseRetryAfterHeader(val string) int {
	if val == "" {
		return 0
	}
	secs, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return secs
}

// StatusError classifies a non-2xx provider response. 429 becomes a
// RateLimitError, everything else wraps domain.ErrCompletionUnavailable.
func StatusError(provider string, status int, body []byte, retryAfter string) error {
	baseErr := fmt.Errorf("%s API error (status %d): %s", provider, status, Truncate(string(body), 500))
	if status == 429 {
		return NewRateLimitError(provider, baseErr, ParseRetryAfterHeader(retryAfter))
	}
	return fmt.Errorf("%w: %w", domain.ErrCompletionUnavailable, baseErr)
}

// Truncate shortens s to at most maxLen bytes for log and error messages.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
