package apperrors

import (
	"errors"
	"net/http"
	"testing"
)

func TestMapErrorStatuses(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{ErrTokenMissing, http.StatusUnauthorized},
		{ErrTokenInvalid, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrEmailTaken, http.StatusBadRequest},
		{ErrMobileTaken, http.StatusBadRequest},
		{ErrEmailNotFound, http.StatusNotFound},
		{ErrInvalidPassword, http.StatusUnauthorized},
		{ErrCategoryNameRequired, http.StatusBadRequest},
		{ErrCategoryExists, http.StatusBadRequest},
		{ErrInvalidCategoryRef, http.StatusBadRequest},
		{ErrInvalidProductRef, http.StatusBadRequest},
		{ErrCartNotFound, http.StatusNotFound},
		{ErrProductNotInCart, http.StatusNotFound},
		{ErrEmptyCart, http.StatusBadRequest},
		{ErrOrderNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		if got := MapError(tt.err).StatusCode; got != tt.status {
			t.Fatalf("%v: expected status %d, got %d", tt.err, tt.status, got)
		}
	}
}

func TestMapErrorDefaultsToInternal(t *testing.T) {
	httpErr := MapError(errors.New("connection reset"))
	if httpErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", httpErr.StatusCode)
	}
	if httpErr.Message != "internal server error" {
		t.Fatalf("unexpected leak of internal detail: %q", httpErr.Message)
	}
}

func TestCartNotFoundCausesDistinguishable(t *testing.T) {
	// Both are NotFound conditions, but a missing cart and a missing cart
	// line must stay tellable apart.
	missingCart := MapError(ErrCartNotFound)
	missingLine := MapError(ErrProductNotInCart)

	if missingCart.Code == missingLine.Code {
		t.Fatalf("expected distinct codes, both were %q", missingCart.Code)
	}
}
