package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gascompare/internal/domain"
)

// MockTextExtractor is a mock implementation of port.TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(ctx context.Context, file domain.SourceFile) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}
