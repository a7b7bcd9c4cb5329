package models

import (
	"github.com/bakery/backend/internal/domain/bakery"
	"github.com/shopspring/decimal"
)

// BakeryModel is the persistence model for the Bakery domain entity.
type BakeryModel struct {
	BaseModel
	Name       string           `gorm:"type:varchar(255);not null"`
	BakedGoods []BakedGoodModel `gorm:"foreignKey:BakeryID;references:ID"`
}

// TableName returns the table name for GORM
func (BakeryModel) TableName() string {
	return "bakeries"
}

// ToDomain converts the persistence model to a domain Bakery entity.
// Baked goods are copied when the association was loaded; their back
// reference to the bakery is left empty.
func (m *BakeryModel) ToDomain() *bakery.Bakery {
	b := &bakery.Bakery{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
	if m.BakedGoods != nil {
		b.BakedGoods = make([]bakery.BakedGood, 0, len(m.BakedGoods))
		for i := range m.BakedGoods {
			b.BakedGoods = append(b.BakedGoods, *m.BakedGoods[i].toDomainShallow())
		}
	}
	return b
}

// FromDomain populates the persistence model from a domain Bakery entity.
// Associations are not copied.
func (m *BakeryModel) FromDomain(b *bakery.Bakery) {
	m.FromDomainBaseEntity(b.BaseEntity)
	m.Name = b.Name
}

// BakeryModelFromDomain creates a new persistence model from a domain Bakery entity.
func BakeryModelFromDomain(b *bakery.Bakery) *BakeryModel {
	m := &BakeryModel{}
	m.FromDomain(b)
	return m
}

// BakedGoodModel is the persistence model for the BakedGood domain entity.
type BakedGoodModel struct {
	BaseModel
	Name     string          `gorm:"type:varchar(255);not null"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0;index"`
	BakeryID *int64          `gorm:"index"`
	Bakery   *BakeryModel    `gorm:"foreignKey:BakeryID;references:ID"`
}

// TableName returns the table name for GORM
func (BakedGoodModel) TableName() string {
	return "baked_goods"
}

// ToDomain converts the persistence model to a domain BakedGood entity.
// A joined bakery row with no ID means the foreign key did not resolve.
func (m *BakedGoodModel) ToDomain() *bakery.BakedGood {
	g := m.toDomainShallow()
	if m.Bakery != nil && m.Bakery.ID != 0 {
		g.Bakery = &bakery.Bakery{
			BaseEntity: m.Bakery.BaseModel.ToDomain(),
			Name:       m.Bakery.Name,
		}
	}
	return g
}

func (m *BakedGoodModel) toDomainShallow() *bakery.BakedGood {
	return &bakery.BakedGood{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Price:      m.Price,
		BakeryID:   m.BakeryID,
	}
}

// FromDomain populates the persistence model from a domain BakedGood entity.
func (m *BakedGoodModel) FromDomain(g *bakery.BakedGood) {
	m.FromDomainBaseEntity(g.BaseEntity)
	m.Name = g.Name
	m.Price = g.Price
	m.BakeryID = g.BakeryID
}

// BakedGoodModelFromDomain creates a new persistence model from a domain BakedGood entity.
func BakedGoodModelFromDomain(g *bakery.BakedGood) *BakedGoodModel {
	m := &BakedGoodModel{}
	m.FromDomain(g)
	return m
}

// AllModels returns every model managed by the application, in dependency order.
func AllModels() []any {
	return []any{
		&BakeryModel{},
		&BakedGoodModel{},
	}
}
