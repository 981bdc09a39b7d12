package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gascompare/internal/port"
)

// MockCompleter is a mock implementation of port.Completer.
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, req port.CompletionRequest) (*port.CompletionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.CompletionResponse), args.Error(1)
}
