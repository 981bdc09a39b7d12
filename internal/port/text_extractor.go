package port

import (
	"context"

	"gascompare/internal/domain"
)

// TextExtractor turns an uploaded file into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, file domain.SourceFile) (string, error)
}
