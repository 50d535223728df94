// Package usecase provides testify mocks for the use case interfaces.
package usecase

import (
	"context"

	"shoply/internal/domain/entity"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOrderUsecase is a mock implementation of usecase.OrderUsecase.
type MockOrderUsecase struct {
	mock.Mock
}

func (m *MockOrderUsecase) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *MockOrderUsecase) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderUsecase) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderUsecase) UpdateOrder(ctx context.Context, id uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderUsecase) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
