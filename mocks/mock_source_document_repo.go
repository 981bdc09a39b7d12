package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gascompare/internal/domain"
)

// MockSourceDocumentRepo is a mock implementation of port.SourceDocumentRepository.
type MockSourceDocumentRepo struct {
	mock.Mock
}

func (m *MockSourceDocumentRepo) Create(ctx context.Context, doc *domain.SourceDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockSourceDocumentRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.SourceDocument, int, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.SourceDocument), args.Int(1), args.Error(2)
}

func (m *MockSourceDocumentRepo) GetByID(ctx context.Context, ownerID, docID uuid.UUID) (*domain.SourceDocument, error) {
	args := m.Called(ctx, ownerID, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SourceDocument), args.Error(1)
}

func (m *MockSourceDocumentRepo) Delete(ctx context.Context, ownerID, docID uuid.UUID) error {
	args := m.Called(ctx, ownerID, docID)
	return args.Error(0)
}
