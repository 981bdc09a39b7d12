package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gascompare/internal/domain"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]domain.SourceDocument, int, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.SourceDocument), args.Int(1), args.Error(2)
}

func (m *MockDocumentService) Download(ctx context.Context, ownerID, docID uuid.UUID) (*domain.SourceDocument, []byte, error) {
	args := m.Called(ctx, ownerID, docID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var data []byte
	if b := args.Get(1); b != nil {
		data = b.([]byte)
	}
	return args.Get(0).(*domain.SourceDocument), data, args.Error(2)
}

func (m *MockDocumentService) Delete(ctx context.Context, ownerID, docID uuid.UUID) error {
	args := m.Called(ctx, ownerID, docID)
	return args.Error(0)
}
