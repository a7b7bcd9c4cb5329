package shared

import "time"

// BaseEntity holds the storage-assigned identity and timestamps shared by
// every entity. IDs never change once assigned.
type BaseEntity struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPersisted reports whether storage has assigned an ID
func (e *BaseEntity) IsPersisted() bool {
	return e.ID > 0
}
