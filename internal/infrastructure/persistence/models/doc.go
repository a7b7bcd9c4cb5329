// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// from ORM concerns.
//
//   - base.go: BaseModel (integer primary key + timestamps)
//   - bakery.go: BakeryModel and BakedGoodModel with their one-to-many association
package models
