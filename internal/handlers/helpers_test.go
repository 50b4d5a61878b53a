package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strawberrytart/auction-house/internal/auctionerrors"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"listing_not_found", auctionerrors.ErrListingNotFound, http.StatusNotFound},
		{"category_not_found", auctionerrors.ErrCategoryNotFound, http.StatusNotFound},
		{"invalid_input", auctionerrors.ErrInvalidInput, http.StatusBadRequest},
		{"listing_closed", auctionerrors.ErrListingClosed, http.StatusConflict},
		{"bid_too_low", auctionerrors.ErrBidTooLow, http.StatusConflict},
		{"username_taken", auctionerrors.ErrUsernameTaken, http.StatusConflict},
		{"invalid_credentials", auctionerrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"wrapped_sentinel", fmt.Errorf("service: %w", auctionerrors.ErrInvalidCredentials), http.StatusUnauthorized},
		{"unknown_error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, message := mapErrorToHTTP(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.NotEmpty(t, message)
		})
	}
}
