package helpers

import (
	"errors"
	"net/http"

	"eventgram/internal/domain"
)

// WriteDomainError maps a domain error to its HTTP status and error code and
// writes the JSON error envelope. Unknown errors become 500.
func WriteDomainError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	var se *domain.StorageError
	switch {
	case errors.As(err, &ve):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, ve.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		WriteJSONError(w, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, ErrCodeForbidden, "not allowed")
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, "not found")
	case errors.As(err, &se):
		WriteJSONError(w, http.StatusBadGateway, ErrCodeStorageError, "storage request failed")
	default:
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
	}
}
