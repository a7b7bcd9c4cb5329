package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/bakery/backend/internal/domain/bakery"
	"github.com/bakery/backend/internal/domain/shared"
	"github.com/bakery/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormBakedGoodRepository implements BakedGoodRepository using GORM
type GormBakedGoodRepository struct {
	db *gorm.DB
}

// NewGormBakedGoodRepository creates a new GormBakedGoodRepository
func NewGormBakedGoodRepository(db *gorm.DB) *GormBakedGoodRepository {
	return &GormBakedGoodRepository{db: db}
}

// byPriceDesc loads the owning bakery through a LEFT JOIN and orders by
// price, highest first, with ties broken by id.
func (r *GormBakedGoodRepository) byPriceDesc(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Joins("Bakery").
		Order("baked_goods.price DESC").
		Order("baked_goods.id ASC")
}

// FindAllByPriceDesc returns every baked good ordered by price, highest first
func (r *GormBakedGoodRepository) FindAllByPriceDesc(ctx context.Context) ([]bakery.BakedGood, error) {
	var rows []models.BakedGoodModel
	if err := r.byPriceDesc(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list baked goods by price: %w", err)
	}

	goods := make([]bakery.BakedGood, 0, len(rows))
	for i := range rows {
		goods = append(goods, *rows[i].ToDomain())
	}
	return goods, nil
}

// FindMostExpensive returns the highest priced baked good, or shared.ErrNotFound
// when there are none
func (r *GormBakedGoodRepository) FindMostExpensive(ctx context.Context) (*bakery.BakedGood, error) {
	var row models.BakedGoodModel
	if err := r.byPriceDesc(ctx).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("get most expensive baked good: %w", err)
	}
	return row.ToDomain(), nil
}

// Ensure GormBakedGoodRepository implements BakedGoodRepository
var _ bakery.BakedGoodRepository = (*GormBakedGoodRepository)(nil)
