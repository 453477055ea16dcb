package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventgram/internal/domain"
)

func TestWriteDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation error",
			err:        &domain.ValidationError{Field: "eventName", Reason: "required"},
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeBadRequest,
		},
		{
			name:       "unauthenticated",
			err:        domain.ErrUnauthenticated,
			wantStatus: http.StatusUnauthorized,
			wantCode:   ErrCodeUnauthorized,
		},
		{
			name:       "forbidden",
			err:        domain.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantCode:   ErrCodeForbidden,
		},
		{
			name:       "not found",
			err:        domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   ErrCodeNotFound,
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("get event: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   ErrCodeNotFound,
		},
		{
			name:       "storage error",
			err:        &domain.StorageError{Op: "remove comment", Err: errors.New("connection reset")},
			wantStatus: http.StatusBadGateway,
			wantCode:   ErrCodeStorageError,
		},
		{
			name:       "wrapped storage error",
			err:        fmt.Errorf("delete comments: %w", &domain.StorageError{Op: "remove comment", Err: errors.New("timeout")}),
			wantStatus: http.StatusBadGateway,
			wantCode:   ErrCodeStorageError,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteDomainError(rec, tt.err)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}
