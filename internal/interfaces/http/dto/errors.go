package dto

import (
	"errors"
	"net/http"

	"github.com/bakery/backend/internal/domain/shared"
)

// Response messages
const (
	MsgNotFound         = "Not Found"
	MsgBakeryNotFound   = "Bakery Not Found"
	MsgMethodNotAllowed = "Method Not Allowed"
	MsgInternal         = "Internal Server Error"
)

// GetHTTPStatus returns the HTTP status code for an error. The API only reads,
// so anything other than a missing record is a server error.
func GetHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
