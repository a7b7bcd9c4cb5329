package bakery

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/bakery/backend/internal/domain/bakery"
)

// BakeryResponse is a bakery with its baked goods nested
type BakeryResponse struct {
	ID         int64                     `json:"id"`
	Name       string                    `json:"name"`
	CreatedAt  time.Time                 `json:"created_at"`
	UpdatedAt  time.Time                 `json:"updated_at"`
	BakedGoods []BakeryBakedGoodResponse `json:"baked_goods"`
}

// BakeryBakedGoodResponse is a baked good as nested inside its bakery
type BakeryBakedGoodResponse struct {
	ID        int64     `json:"id"`
	BakeryID  *int64    `json:"bakery_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BakerySummaryResponse is a bakery without its baked goods
type BakerySummaryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BakedGoodByPriceResponse is a baked good in the price listing.
// Price carries the exact decimal text as a JSON number.
type BakedGoodByPriceResponse struct {
	ID        int64                  `json:"id"`
	Name      string                 `json:"name"`
	Price     json.Number            `json:"price"`
	BakeryID  *int64                 `json:"bakery_id"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
	Bakery    *BakerySummaryResponse `json:"bakery"`
}

// MostExpensiveBakedGoodResponse is the top priced baked good.
// ID and Price are rendered as strings, Price with two decimals.
type MostExpensiveBakedGoodResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Price     string                 `json:"price"`
	BakeryID  *int64                 `json:"bakery_id"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
	Bakery    *BakerySummaryResponse `json:"bakery"`
}

// EmptyMostExpensiveResponse is returned when there are no baked goods
type EmptyMostExpensiveResponse struct {
	ID    *string `json:"id"`
	Name  *string `json:"name"`
	Price *string `json:"price"`
}

// ToBakeryResponse converts a domain Bakery with loaded goods
func ToBakeryResponse(b *bakery.Bakery) BakeryResponse {
	goods := make([]BakeryBakedGoodResponse, 0, len(b.BakedGoods))
	for i := range b.BakedGoods {
		g := &b.BakedGoods[i]
		goods = append(goods, BakeryBakedGoodResponse{
			ID:        g.ID,
			BakeryID:  g.BakeryID,
			Name:      g.Name,
			Price:     g.Price.InexactFloat64(),
			CreatedAt: g.CreatedAt,
			UpdatedAt: g.UpdatedAt,
		})
	}
	return BakeryResponse{
		ID:         b.ID,
		Name:       b.Name,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
		BakedGoods: goods,
	}
}

// ToBakerySummaryResponse converts b, returning nil for a nil bakery
func ToBakerySummaryResponse(b *bakery.Bakery) *BakerySummaryResponse {
	if b == nil {
		return nil
	}
	return &BakerySummaryResponse{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBakedGoodByPriceResponse converts a domain BakedGood for the price listing
func ToBakedGoodByPriceResponse(g *bakery.BakedGood) BakedGoodByPriceResponse {
	return BakedGoodByPriceResponse{
		ID:        g.ID,
		Name:      g.Name,
		Price:     json.Number(g.Price.String()),
		BakeryID:  g.BakeryID,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
		Bakery:    ToBakerySummaryResponse(g.Bakery),
	}
}

// priceScale matches the two fractional digits of the price column
const priceScale = 2

// ToMostExpensiveResponse converts a domain BakedGood for the most expensive endpoint
func ToMostExpensiveResponse(g *bakery.BakedGood) MostExpensiveBakedGoodResponse {
	return MostExpensiveBakedGoodResponse{
		ID:        strconv.FormatInt(g.ID, 10),
		Name:      g.Name,
		Price:     g.Price.StringFixed(priceScale),
		BakeryID:  g.BakeryID,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
		Bakery:    ToBakerySummaryResponse(g.Bakery),
	}
}
