package persistence

import (
	"context"
	"fmt"

	"github.com/bakery/backend/internal/domain/bakery"
	"github.com/bakery/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedData describes the records the Seeder inserts.
// Goods attached to a bakery get that bakery's ID; LooseGoods keep whatever
// BakeryID they carry, including nil or an ID with no matching bakery.
type SeedData struct {
	Bakeries   []*bakery.Bakery
	LooseGoods []*bakery.BakedGood
}

// Seeder writes bakeries and baked goods. It is the administrative write path;
// the HTTP API never mutates data.
type Seeder struct {
	db *Database
}

// NewSeeder creates a new Seeder
func NewSeeder(db *Database) *Seeder {
	return &Seeder{db: db}
}

// Seed inserts data in a single transaction and writes the generated IDs and
// timestamps back into the passed entities.
func (s *Seeder) Seed(ctx context.Context, data SeedData) error {
	return s.db.Transaction(ctx, func(tx *gorm.DB) error {
		for _, b := range data.Bakeries {
			if err := createBakery(tx, b); err != nil {
				return err
			}
		}
		for _, g := range data.LooseGoods {
			if err := createBakedGood(tx, g); err != nil {
				return err
			}
		}
		return nil
	})
}

// Reset deletes every baked good and bakery
func (s *Seeder) Reset(ctx context.Context) error {
	return s.db.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.BakedGoodModel{}).Error; err != nil {
			return fmt.Errorf("delete baked goods: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.BakeryModel{}).Error; err != nil {
			return fmt.Errorf("delete bakeries: %w", err)
		}
		return nil
	})
}

func createBakery(tx *gorm.DB, b *bakery.Bakery) error {
	m := models.BakeryModelFromDomain(b)
	if err := tx.Omit("BakedGoods").Create(m).Error; err != nil {
		return fmt.Errorf("create bakery %q: %w", b.Name, err)
	}
	b.BaseEntity = m.BaseModel.ToDomain()

	for i := range b.BakedGoods {
		good := &b.BakedGoods[i]
		id := b.ID
		good.BakeryID = &id
		if err := createBakedGood(tx, good); err != nil {
			return err
		}
	}
	return nil
}

func createBakedGood(tx *gorm.DB, g *bakery.BakedGood) error {
	m := models.BakedGoodModelFromDomain(g)
	if err := tx.Omit("Bakery").Create(m).Error; err != nil {
		return fmt.Errorf("create baked good %q: %w", g.Name, err)
	}
	g.BaseEntity = m.BaseModel.ToDomain()
	return nil
}

// SampleData returns a small catalogue for local development
func SampleData() (SeedData, error) {
	type item struct{ name, price string }
	catalogue := []struct {
		bakery string
		goods  []item
	}{
		{"Delightful donuts", []item{{"Chocolate dipped donut", "2.75"}, {"Apple-spice filled donut", "3.50"}}},
		{"Incredible crullers", []item{{"Glazed honey cruller", "3.25"}, {"Chocolate cruller", "3.40"}}},
		{"Rise & Grind", []item{{"Sourdough", "7.50"}, {"Baguette", "4.00"}}},
	}

	var data SeedData
	for _, entry := range catalogue {
		b, err := bakery.NewBakery(entry.bakery)
		if err != nil {
			return SeedData{}, err
		}
		for _, it := range entry.goods {
			p, err := decimal.NewFromString(it.price)
			if err != nil {
				return SeedData{}, fmt.Errorf("parse price for %q: %w", it.name, err)
			}
			g, err := bakery.NewBakedGood(it.name, p, nil)
			if err != nil {
				return SeedData{}, err
			}
			b.AddBakedGood(*g)
		}
		data.Bakeries = append(data.Bakeries, b)
	}
	return data, nil
}
