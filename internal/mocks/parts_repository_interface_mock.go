// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/freight-service/internal/domain/model"
)

type MockPartsRepositoryInterface struct {
	mock.Mock
}

func (m *MockPartsRepositoryInterface) ReplaceAll(ctx context.Context, parts []model.PartSpec) error {
	args := m.Called(ctx, parts)
	return args.Error(0)
}

func (m *MockPartsRepositoryInterface) List(ctx context.Context) ([]model.PartSpec, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PartSpec), args.Error(1)
}

func (m *MockPartsRepositoryInterface) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
