package bakery

import "context"

// BakeryRepository defines read access to bakeries
type BakeryRepository interface {
	// FindAll returns every bakery in storage order with its baked goods loaded
	FindAll(ctx context.Context) ([]Bakery, error)

	// FindByID returns the bakery with its baked goods, or shared.ErrNotFound
	FindByID(ctx context.Context, id int64) (*Bakery, error)
}

// BakedGoodRepository defines read access to baked goods
type BakedGoodRepository interface {
	// FindAllByPriceDesc returns every baked good ordered by price descending,
	// ties broken by ID, each with its bakery eagerly attached
	FindAllByPriceDesc(ctx context.Context) ([]BakedGood, error)

	// FindMostExpensive returns the first baked good under the same ordering,
	// or shared.ErrNotFound when there are none
	FindMostExpensive(ctx context.Context) (*BakedGood, error)
}
