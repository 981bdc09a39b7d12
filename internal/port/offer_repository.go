package port

import (
	"context"

	"github.com/google/uuid"

	"gascompare/internal/domain"
)

// OfferRepository defines the contract for offer persistence.
// All query methods include ownerID so users only ever see their own offers.
type OfferRepository interface {
	CreateBatch(ctx context.Context, ownerID uuid.UUID, offers []domain.ExtractedOffer) error
	GetByID(ctx context.Context, ownerID uuid.UUID, offerID string) (*domain.ExtractedOffer, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ExtractedOffer, error)
	Update(ctx context.Context, offer *domain.ExtractedOffer) error
	Delete(ctx context.Context, ownerID uuid.UUID, offerID string) error
}
