// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/freight-service/internal/domain/model"
)

type MockTariffsRepositoryInterface struct {
	mock.Mock
}

func (m *MockTariffsRepositoryInterface) GetActive(ctx context.Context) (*model.Tariff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tariff), args.Error(1)
}

func (m *MockTariffsRepositoryInterface) Create(ctx context.Context, tariff model.Tariff, createdBy string) (*model.Tariff, error) {
	args := m.Called(ctx, tariff, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tariff), args.Error(1)
}

func (m *MockTariffsRepositoryInterface) List(ctx context.Context, limit int) ([]model.Tariff, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tariff), args.Error(1)
}
