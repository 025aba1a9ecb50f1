// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/freight-service/internal/domain/dto"
)

type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuoteResponse), args.Error(1)
}

func (m *MockQuoteService) QuoteBatch(ctx context.Context, req dto.BatchQuoteRequest) (*dto.BatchQuoteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BatchQuoteResponse), args.Error(1)
}
