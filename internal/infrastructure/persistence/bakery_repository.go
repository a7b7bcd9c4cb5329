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

// GormBakeryRepository implements BakeryRepository using GORM
type GormBakeryRepository struct {
	db *gorm.DB
}

// NewGormBakeryRepository creates a new GormBakeryRepository
func NewGormBakeryRepository(db *gorm.DB) *GormBakeryRepository {
	return &GormBakeryRepository{db: db}
}

// preloadBakedGoods loads each bakery's goods with one batched IN query
func preloadBakedGoods(db *gorm.DB) *gorm.DB {
	return db.Preload("BakedGoods", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id ASC")
	})
}

// FindAll returns every bakery ordered by id, with baked goods loaded
func (r *GormBakeryRepository) FindAll(ctx context.Context) ([]bakery.Bakery, error) {
	var rows []models.BakeryModel
	if err := preloadBakedGoods(r.db.WithContext(ctx)).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list bakeries: %w", err)
	}

	bakeries := make([]bakery.Bakery, 0, len(rows))
	for i := range rows {
		b := rows[i].ToDomain()
		if b.BakedGoods == nil {
			b.BakedGoods = []bakery.BakedGood{}
		}
		bakeries = append(bakeries, *b)
	}
	return bakeries, nil
}

// FindByID returns one bakery with its baked goods, or shared.ErrNotFound
func (r *GormBakeryRepository) FindByID(ctx context.Context, id int64) (*bakery.Bakery, error) {
	var row models.BakeryModel
	if err := preloadBakedGoods(r.db.WithContext(ctx)).Where("id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("get bakery %d: %w", id, err)
	}

	b := row.ToDomain()
	if b.BakedGoods == nil {
		b.BakedGoods = []bakery.BakedGood{}
	}
	return b, nil
}

// Ensure GormBakeryRepository implements BakeryRepository
var _ bakery.BakeryRepository = (*GormBakeryRepository)(nil)
