package domain

import "errors"

var (
	ErrNotFound                = errors.New("resource not found")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrInvalidInput            = errors.New("invalid input")
	ErrFileTooLarge            = errors.New("file exceeds maximum allowed size")
	ErrUnsupportedFormat       = errors.New("unsupported file format")
	ErrReadFailed              = errors.New("file could not be read")
	ErrTextTooShort            = errors.New("extracted text is too short to analyse")
	ErrCompletionNotConfigured = errors.New("completion provider credential is not configured")
	ErrCompletionUnavailable   = errors.New("completion provider unavailable")
	ErrRateLimited             = errors.New("completion provider rate limited")
	ErrMalformedCompletion     = errors.New("completion output is malformed")
	ErrStorageUnavailable      = errors.New("storage unavailable")
)
