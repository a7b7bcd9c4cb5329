package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	bakeryapp "github.com/bakery/backend/internal/application/bakery"
	"github.com/bakery/backend/internal/domain/bakery"
	"github.com/bakery/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupBakedGoodRouter(repo *MockBakedGoodRepository) *gin.Engine {
	h := NewBakedGoodHandler(NewBaseHandler(false), bakeryapp.NewBakedGoodService(repo))
	r := gin.New()
	r.GET("/baked_goods/by_price", h.ListByPrice)
	r.GET("/baked_goods/most_expensive", h.MostExpensive)
	return r
}

func TestBakedGoodHandler_ListByPrice(t *testing.T) {
	t.Run("returns goods with bakery or null", func(t *testing.T) {
		owner := testBakery(1, "Rise & Grind")
		sourdough := testGood(1, "Sourdough", "7.50", int64Ptr(1))
		sourdough.Bakery = &owner
		orphan := testGood(2, "Crumb", "0.99", int64Ptr(77))

		repo := new(MockBakedGoodRepository)
		repo.On("FindAllByPriceDesc", mock.Anything).Return([]bakery.BakedGood{sourdough, orphan}, nil)

		w := httptest.NewRecorder()
		setupBakedGoodRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/baked_goods/by_price", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, 7.5, body[0]["price"])
		assert.Equal(t, "Rise & Grind", body[0]["bakery"].(map[string]any)["name"])
		assert.Nil(t, body[1]["bakery"])
		assert.Equal(t, float64(77), body[1]["bakery_id"])
	})

	t.Run("storage failure answers 500", func(t *testing.T) {
		repo := new(MockBakedGoodRepository)
		repo.On("FindAllByPriceDesc", mock.Anything).Return(nil, errStorage)

		w := httptest.NewRecorder()
		setupBakedGoodRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/baked_goods/by_price", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"message":"Internal Server Error"}`, w.Body.String())
	})
}

func TestBakedGoodHandler_MostExpensive(t *testing.T) {
	t.Run("renders id and price as strings", func(t *testing.T) {
		owner := testBakery(1, "Rise & Grind")
		good := testGood(3, "Sourdough", "7.50", int64Ptr(1))
		good.Bakery = &owner

		repo := new(MockBakedGoodRepository)
		repo.On("FindMostExpensive", mock.Anything).Return(&good, nil)

		w := httptest.NewRecorder()
		setupBakedGoodRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/baked_goods/most_expensive", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "3", body["id"])
		assert.Equal(t, "7.50", body["price"])
		assert.Equal(t, "Sourdough", body["name"])
		assert.NotNil(t, body["bakery"])
	})

	t.Run("empty table answers 200 with null fields", func(t *testing.T) {
		repo := new(MockBakedGoodRepository)
		repo.On("FindMostExpensive", mock.Anything).Return(nil, shared.ErrNotFound)

		w := httptest.NewRecorder()
		setupBakedGoodRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/baked_goods/most_expensive", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":null,"name":null,"price":null}`, w.Body.String())
	})

	t.Run("storage failure answers 500", func(t *testing.T) {
		repo := new(MockBakedGoodRepository)
		repo.On("FindMostExpensive", mock.Anything).Return(nil, errStorage)

		w := httptest.NewRecorder()
		setupBakedGoodRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/baked_goods/most_expensive", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
