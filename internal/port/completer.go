package port

import "context"

// CompletionRequest carries one prompt pair and its decoding parameters.
type CompletionRequest struct {
	SystemPrompt    string
	UserPrompt      string
	Temperature     float64
	MaxOutputTokens int
	JSONOutput      bool
}

// CompletionResponse is the raw text produced by a completion provider.
type CompletionResponse struct {
	Text         string
	Model        string
	FinishReason string
}

// Completer abstracts a large-language-model completion call.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}
