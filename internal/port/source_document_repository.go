package port

import (
	"context"

	"github.com/google/uuid"

	"gascompare/internal/domain"
)

// SourceDocumentRepository records archived uploads.
type SourceDocumentRepository interface {
	Create(ctx context.Context, doc *domain.SourceDocument) error
	GetByID(ctx context.Context, ownerID, docID uuid.UUID) (*domain.SourceDocument, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.SourceDocument, int, error)
	Delete(ctx context.Context, ownerID, docID uuid.UUID) error
}
