package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gascompare/internal/domain"
	"gascompare/internal/ranking"
	"gascompare/internal/service"
)

// MockOfferService is a mock implementation of service.OfferService.
type MockOfferService struct {
	mock.Mock
}

func (m *MockOfferService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.ExtractedOffer, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExtractedOffer), args.Error(1)
}

func (m *MockOfferService) Create(ctx context.Context, ownerID uuid.UUID, input service.OfferInput) (*domain.ExtractedOffer, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedOffer), args.Error(1)
}

func (m *MockOfferService) Update(ctx context.Context, ownerID uuid.UUID, offerID string, input service.OfferInput) (*domain.ExtractedOffer, error) {
	args := m.Called(ctx, ownerID, offerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedOffer), args.Error(1)
}

func (m *MockOfferService) Delete(ctx context.Context, ownerID uuid.UUID, offerID string) error {
	args := m.Called(ctx, ownerID, offerID)
	return args.Error(0)
}

func (m *MockOfferService) Compare(ctx context.Context, ownerID uuid.UUID, input service.CompareInput) (*ranking.Comparison, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ranking.Comparison), args.Error(1)
}
