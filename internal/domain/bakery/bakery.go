package bakery

import (
	"strings"
	"time"

	"github.com/bakery/backend/internal/domain/shared"
)

// Bakery is the parent record owning zero or more baked goods
type Bakery struct {
	shared.BaseEntity
	Name string
	// BakedGoods holds the goods whose bakery_id equals this bakery's ID,
	// in storage order. It is nil when the association was not loaded.
	BakedGoods []BakedGood
}

// NewBakery creates a bakery that has not been persisted yet
func NewBakery(name string) (*Bakery, error) {
	name = strings.TrimSpace(name)
	if err := validateName("Bakery", name); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Bakery{
		BaseEntity: shared.BaseEntity{CreatedAt: now, UpdatedAt: now},
		Name:       name,
	}, nil
}

// AddBakedGood attaches a good to the bakery, pointing its foreign key here
// once the bakery has an ID
func (b *Bakery) AddBakedGood(good BakedGood) {
	if b.IsPersisted() {
		id := b.ID
		good.BakeryID = &id
	}
	b.BakedGoods = append(b.BakedGoods, good)
}

// BakedGoodCount returns the number of loaded baked goods
func (b *Bakery) BakedGoodCount() int {
	return len(b.BakedGoods)
}

const maxNameLength = 255

func validateName(entity, name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", entity+" name cannot be empty")
	}
	if len(name) > maxNameLength {
		return shared.NewDomainError("INVALID_NAME", entity+" name cannot exceed 255 characters")
	}
	return nil
}
