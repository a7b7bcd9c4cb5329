package bakery

import (
	"strings"
	"time"

	"github.com/bakery/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BakedGood is a priced item that optionally belongs to one bakery
type BakedGood struct {
	shared.BaseEntity
	Name     string
	Price    decimal.Decimal
	BakeryID *int64
	// Bakery is the eagerly loaded owner. It is nil when BakeryID is nil
	// or references a bakery that no longer exists.
	Bakery *Bakery
}

// NewBakedGood creates a baked good that has not been persisted yet
func NewBakedGood(name string, price decimal.Decimal, bakeryID *int64) (*BakedGood, error) {
	name = strings.TrimSpace(name)
	if err := validateName("Baked good", name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	now := time.Now()
	return &BakedGood{
		BaseEntity: shared.BaseEntity{CreatedAt: now, UpdatedAt: now},
		Name:       name,
		Price:      price,
		BakeryID:   bakeryID,
	}, nil
}

// IsOrphaned reports whether the good points at a bakery that could not be loaded
func (g *BakedGood) IsOrphaned() bool {
	return g.BakeryID != nil && g.Bakery == nil
}
