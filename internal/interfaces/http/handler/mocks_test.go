package handler

import (
	"context"
	"errors"

	"github.com/bakery/backend/internal/domain/bakery"
	"github.com/bakery/backend/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockBakeryRepository implements bakery.BakeryRepository for testing
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

// MockBakedGoodRepository implements bakery.BakedGoodRepository for testing
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

// MockHealthChecker implements HealthChecker for testing
type MockHealthChecker struct {
	err      error
	stats    persistence.ConnectionStats
	statsErr error
}

func (m *MockHealthChecker) Ping(context.Context) error {
	return m.err
}

func (m *MockHealthChecker) Stats() (persistence.ConnectionStats, error) {
	return m.stats, m.statsErr
}

var errStorage = errors.New("database is locked")
