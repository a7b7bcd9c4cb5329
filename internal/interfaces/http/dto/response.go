package dto

import "strconv"

// MessageResponse is the body of every error answer
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessageResponse creates a message response
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// HealthResponse is the body of the health endpoint. Pool is omitted when
// pool statistics are unavailable.
type HealthResponse struct {
	Status   string     `json:"status"`
	Database string     `json:"database"`
	Time     string     `json:"time"`
	Pool     *PoolStats `json:"pool,omitempty"`
}

// PoolStats reports the database connection pool
type PoolStats struct {
	MaxOpen        int   `json:"max_open"`
	Open           int   `json:"open"`
	InUse          int   `json:"in_use"`
	Idle           int   `json:"idle"`
	WaitCount      int64 `json:"wait_count"`
	WaitDurationMs int64 `json:"wait_duration_ms"`
}

// BakeryURI binds the :id path parameter. Only plain digit strings pass
// binding, so signs, exponents and fractions are rejected.
type BakeryURI struct {
	ID string `uri:"id" binding:"required,number"`
}

// BakeryID parses ID. ok is false for zero or ids beyond the int64 range.
func (u BakeryURI) BakeryID() (id int64, ok bool) {
	id, err := strconv.ParseInt(u.ID, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
