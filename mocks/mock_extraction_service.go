package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gascompare/internal/domain"
	"gascompare/internal/service"
)

// MockExtractionService is a mock implementation of service.ExtractionService.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) ProcessFiles(ctx context.Context, ownerID uuid.UUID, files []domain.SourceFile) (*service.BatchResult, error) {
	args := m.Called(ctx, ownerID, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BatchResult), args.Error(1)
}

func (m *MockExtractionService) Ready() bool {
	args := m.Called()
	return args.Bool(0)
}
