package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gascompare/internal/domain"
)

// MockOfferRepo is a mock implementation of port.OfferRepository.
type MockOfferRepo struct {
	mock.Mock
}

func (m *MockOfferRepo) CreateBatch(ctx context.Context, ownerID uuid.UUID, offers []domain.ExtractedOffer) error {
	args := m.Called(ctx, ownerID, offers)
	return args.Error(0)
}

func (m *MockOfferRepo) GetByID(ctx context.Context, ownerID uuid.UUID, offerID string) (*domain.ExtractedOffer, error) {
	args := m.Called(ctx, ownerID, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedOffer), args.Error(1)
}

func (m *MockOfferRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ExtractedOffer, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExtractedOffer), args.Error(1)
}

func (m *MockOfferRepo) Update(ctx context.Context, offer *domain.ExtractedOffer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *MockOfferRepo) Delete(ctx context.Context, ownerID uuid.UUID, offerID string) error {
	args := m.Called(ctx, ownerID, offerID)
	return args.Error(0)
}
