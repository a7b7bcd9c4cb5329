package handler

import (
	bakeryapp "github.com/bakery/backend/internal/application/bakery"
	"github.com/bakery/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BakedGoodHandler handles baked good endpoints
type BakedGoodHandler struct {
	BaseHandler
	bakedGoodService *bakeryapp.BakedGoodService
}

// NewBakedGoodHandler creates a new BakedGoodHandler
func NewBakedGoodHandler(base BaseHandler, bakedGoodService *bakeryapp.BakedGoodService) *BakedGoodHandler {
	return &BakedGoodHandler{
		BaseHandler:      base,
		bakedGoodService: bakedGoodService,
	}
}

// ListByPrice returns every baked good, most expensive first
//
//	GET /baked_goods/by_price
func (h *BakedGoodHandler) ListByPrice(c *gin.Context) {
	goods, err := h.bakedGoodService.ListByPrice(c.Request.Context())
	if err != nil {
		h.HandleError(c, err, dto.MsgNotFound)
		return
	}
	h.Success(c, goods)
}

// MostExpensive returns the highest priced baked good. An empty table yields
// null fields rather than 404.
//
//	GET /baked_goods/most_expensive
func (h *BakedGoodHandler) MostExpensive(c *gin.Context) {
	good, err := h.bakedGoodService.MostExpensive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err, dto.MsgNotFound)
		return
	}
	h.Success(c, good)
}
