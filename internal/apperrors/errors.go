package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrTokenMissing is returned when no bearer token accompanies a request.
	ErrTokenMissing = errors.New("authorization token not provided")
	// ErrTokenInvalid is returned when token verification fails.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrForbidden is returned when the resolved role is not allowed.
	ErrForbidden = errors.New("access denied")
	// ErrUserNotFound is returned when a token references a deleted user.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when a registration email is already in use.
	ErrEmailTaken = errors.New("user already exists with this email")
	// ErrMobileTaken is returned when a registration mobile is already in use.
	ErrMobileTaken = errors.New("user already exists with this mobile number")
	// ErrEmailNotFound is returned on login with an unknown email.
	ErrEmailNotFound = errors.New("user not found with this email")
	// ErrInvalidPassword is returned on login with a wrong password.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrCategoryNameRequired is returned when a category name is blank.
	ErrCategoryNameRequired = errors.New("category name is required")
	// ErrCategoryExists is returned when a category name is already taken.
	ErrCategoryExists = errors.New("category with this name already exists")
	// ErrCategoryNotFound is returned when a category id does not resolve.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrInvalidCategoryRef is returned when a referenced category is absent.
	ErrInvalidCategoryRef = errors.New("invalid category id, category not found")
	// ErrProductNotFound is returned when a product id does not resolve.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidProductRef is returned when a referenced product is absent.
	ErrInvalidProductRef = errors.New("invalid product id, product not found")
	// ErrCartNotFound is returned when the user has no active cart.
	ErrCartNotFound = errors.New("cart not found")
	// ErrProductNotInCart is returned when a cart line for the product is absent.
	ErrProductNotInCart = errors.New("product not found in the cart")
	// ErrEmptyCart is returned when an order is placed without cart contents.
	ErrEmptyCart = errors.New("no products in the cart, add products to the cart before placing an order")
	// ErrOrderNotFound is returned when an order id does not resolve.
	ErrOrderNotFound = errors.New("order not found")
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError pairs a domain error with its transport representation.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ToResponse converts an HTTPError to its response body.
func (e *HTTPError) ToResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapError maps domain errors to HTTP errors. Unexpected errors collapse to
// a generic internal error so store failures never leak details.
func MapError(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrTokenMissing):
		return &HTTPError{http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED"}
	case errors.Is(err, ErrTokenInvalid):
		return &HTTPError{http.StatusUnauthorized, err.Error(), "INVALID_TOKEN"}
	case errors.Is(err, ErrForbidden):
		return &HTTPError{http.StatusForbidden, err.Error(), "FORBIDDEN"}
	case errors.Is(err, ErrUserNotFound):
		return &HTTPError{http.StatusNotFound, err.Error(), "USER_NOT_FOUND"}
	case errors.Is(err, ErrEmailTaken):
		return &HTTPError{http.StatusBadRequest, err.Error(), "EMAIL_TAKEN"}
	case errors.Is(err, ErrMobileTaken):
		return &HTTPError{http.StatusBadRequest, err.Error(), "MOBILE_TAKEN"}
	case errors.Is(err, ErrEmailNotFound):
		return &HTTPError{http.StatusNotFound, err.Error(), "EMAIL_NOT_FOUND"}
	case errors.Is(err, ErrInvalidPassword):
		return &HTTPError{http.StatusUnauthorized, err.Error(), "INVALID_PASSWORD"}
	case errors.Is(err, ErrCategoryNameRequired):
		return &HTTPError{http.StatusBadRequest, err.Error(), "CATEGORY_NAME_REQUIRED"}
	case errors.Is(err, ErrCategoryExists):
		return &HTTPError{http.StatusBadRequest, err.Error(), "CATEGORY_EXISTS"}
	case errors.Is(err, ErrCategoryNotFound):
		return &HTTPError{http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND"}
	case errors.Is(err, ErrInvalidCategoryRef):
		return &HTTPError{http.StatusBadRequest, err.Error(), "INVALID_CATEGORY"}
	case errors.Is(err, ErrProductNotFound):
		return &HTTPError{http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND"}
	case errors.Is(err, ErrInvalidProductRef):
		return &HTTPError{http.StatusBadRequest, err.Error(), "INVALID_PRODUCT"}
	case errors.Is(err, ErrCartNotFound):
		return &HTTPError{http.StatusNotFound, err.Error(), "CART_NOT_FOUND"}
	case errors.Is(err, ErrProductNotInCart):
		return &HTTPError{http.StatusNotFound, err.Error(), "PRODUCT_NOT_IN_CART"}
	case errors.Is(err, ErrEmptyCart):
		return &HTTPError{http.StatusBadRequest, err.Error(), "EMPTY_CART"}
	case errors.Is(err, ErrOrderNotFound):
		return &HTTPError{http.StatusNotFound, err.Error(), "ORDER_NOT_FOUND"}
	default:
		return &HTTPError{http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR"}
	}
}
