package bakery

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/bakery/backend/internal/domain/bakery"
	"github.com/bakery/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBakedGoodService_ListByPrice(t *testing.T) {
	t.Run("keeps repository order and attaches bakery", func(t *testing.T) {
		repo := new(MockBakedGoodRepository)
		svc := NewBakedGoodService(repo)

		owner := newTestBakery(1, "Rise & Grind")
		sourdough := newTestGood(1, "Sourdough", "7.50", int64Ptr(1))
		sourdough.Bakery = &owner
		orphan := newTestGood(2, "Crumb", "1.25", int64Ptr(42))

		repo.On("FindAllByPriceDesc", mock.Anything).Return([]bakery.BakedGood{sourdough, orphan}, nil)

		result, err := svc.ListByPrice(context.Background())
		require.NoError(t, err)
		require.Len(t, result, 2)

		assert.Equal(t, "Sourdough", result[0].Name)
		assert.Equal(t, json.Number("7.5"), result[0].Price)
		require.NotNil(t, result[0].Bakery)
		assert.Equal(t, "Rise & Grind", result[0].Bakery.Name)

		assert.Equal(t, "Crumb", result[1].Name)
		assert.Nil(t, result[1].Bakery)
		assert.Equal(t, int64Ptr(42), result[1].BakeryID)
		repo.AssertExpectations(t)
	})

	t.Run("propagates repository error", func(t *testing.T) {
		repo := new(MockBakedGoodRepository)
		svc := NewBakedGoodService(repo)
		repoErr := errors.New("timeout")
		repo.On("FindAllByPriceDesc", mock.Anything).Return(nil, repoErr)

		_, err := svc.ListByPrice(context.Background())
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestBakedGoodService_MostExpensive(t *testing.T) {
	t.Run("returns stringified id and price", func(t *testing.T) {
		repo := new(MockBakedGoodRepository)
		svc := NewBakedGoodService(repo)

		owner := newTestBakery(1, "Rise & Grind")
		good := newTestGood(7, "Sourdough", "7.50", int64Ptr(1))
		good.Bakery = &owner
		repo.On("FindMostExpensive", mock.Anything).Return(&good, nil)

		result, err := svc.MostExpensive(context.Background())
		require.NoError(t, err)

		resp, ok := result.(MostExpensiveBakedGoodResponse)
		require.True(t, ok)
		assert.Equal(t, "7", resp.ID)
		assert.Equal(t, "7.50", resp.Price)
		assert.Equal(t, "Sourdough", resp.Name)
		require.NotNil(t, resp.Bakery)
		assert.Equal(t, int64(1), resp.Bakery.ID)
	})

	t.Run("renders price with two decimals whatever the stored scale", func(t *testing.T) {
		for raw, expected := range map[string]string{"7.5": "7.50", "4": "4.00", "3.40": "3.40"} {
			good := newTestGood(1, "Bun", raw, nil)
			assert.Equal(t, expected, ToMostExpensiveResponse(&good).Price, raw)
		}
	})

	t.Run("degrades to null fields when there are no goods", func(t *testing.T) {
		repo := new(MockBakedGoodRepository)
		svc := NewBakedGoodService(repo)
		repo.On("FindMostExpensive", mock.Anything).Return(nil, shared.ErrNotFound)

		result, err := svc.MostExpensive(context.Background())
		require.NoError(t, err)

		data, err := json.Marshal(result)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":null,"name":null,"price":null}`, string(data))
	})

	t.Run("propagates other errors", func(t *testing.T) {
		repo := new(MockBakedGoodRepository)
		svc := NewBakedGoodService(repo)
		repoErr := errors.New("disk I/O error")
		repo.On("FindMostExpensive", mock.Anything).Return(nil, repoErr)

		result, err := svc.MostExpensive(context.Background())
		assert.ErrorIs(t, err, repoErr)
		assert.Nil(t, result)
	})
}

func TestBakedGoodByPriceResponse_JSON(t *testing.T) {
	good := newTestGood(4, "Baguette", "4.00", nil)
	data, err := json.Marshal(ToBakedGoodByPriceResponse(&good))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 4,
		"name": "Baguette",
		"price": 4,
		"bakery_id": null,
		"created_at": "2024-03-01T12:00:00Z",
		"updated_at": "2024-03-01T12:00:00Z",
		"bakery": null
	}`, string(data))
}
