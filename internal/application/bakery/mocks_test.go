package bakery

import (
	"context"

	"github.com/bakery/backend/internal/domain/bakery"
	"github.com/stretchr/testify/mock"
)

// MockBakeryRepository is a mock implementation of bakery.BakeryRepository
type MockBakeryRepository struct {
	mock.Mock
}

func (m *MockBakeryRepository) FindAll(ctx context.Context) ([]bakery.Bakery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bakery.Bakery), args.Error(1)
}

func (m *MockBakeryRepository) FindByID(ctx context.Context, id int64) (*bakery.Bakery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bakery.Bakery), args.Error(1)
}

// MockBakedGoodRepository is a mock implementation of bakery.BakedGoodRepository
type MockBakedGoodRepository struct {
	mock.Mock
}

func (m *MockBakedGoodRepository) FindAllByPriceDesc(ctx context.Context) ([]bakery.BakedGood, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bakery.BakedGood), args.Error(1)
}

func (m *MockBakedGoodRepository) FindMostExpensive(ctx context.Context) (*bakery.BakedGood, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bakery.BakedGood), args.Error(1)
}
