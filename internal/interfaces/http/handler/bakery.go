package handler

import (
	bakeryapp "github.com/bakery/backend/internal/application/bakery"
	"github.com/bakery/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BakeryHandler handles bakery endpoints
type BakeryHandler struct {
	BaseHandler
	bakeryService *bakeryapp.BakeryService
}

// NewBakeryHandler creates a new BakeryHandler
func NewBakeryHandler(base BaseHandler, bakeryService *bakeryapp.BakeryService) *BakeryHandler {
	return &BakeryHandler{
		BaseHandler:   base,
		bakeryService: bakeryService,
	}
}

// List returns every bakery with its baked goods
//
//	GET /bakeries
func (h *BakeryHandler) List(c *gin.Context) {
	bakeries, err := h.bakeryService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err, dto.MsgNotFound)
		return
	}
	h.Success(c, bakeries)
}

// GetByID returns one bakery. A malformed id is reported the same way as a
// missing bakery.
//
//	GET /bakeries/:id
func (h *BakeryHandler) GetByID(c *gin.Context) {
	var uri dto.BakeryURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.NotFound(c, dto.MsgBakeryNotFound)
		return
	}
	id, ok := uri.BakeryID()
	if !ok {
		h.NotFound(c, dto.MsgBakeryNotFound)
		return
	}

	b, err := h.bakeryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err, dto.MsgBakeryNotFound)
		return
	}
	h.Success(c, b)
}
