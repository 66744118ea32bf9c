// Package apperror defines the business error taxonomy shared by services
// and HTTP handlers. Handlers map these to status codes with errors.Is.
package apperror

import "errors"

// Not-found class (404).
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrTableNotFound     = errors.New("table not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrUserNotFound      = errors.New("user not found")
)

// Business-rule class (400).
var (
	ErrTableUnavailable    = errors.New("table is not available")
	ErrProductsNotFound    = errors.New("products not found")
	ErrProductsUnavailable = errors.New("products not available")
	ErrOrderClosed         = errors.New("order is closed")
	ErrItemInProgress      = errors.New("item is being prepared or already served")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrEmptyOrder          = errors.New("order must contain at least one item")
	ErrInvalidQuery        = errors.New("invalid list query")
	ErrDuplicate           = errors.New("record already exists")
	ErrInvalidReference    = errors.New("invalid reference")
)

// Auth class (401).
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserInactive       = errors.New("user is inactive")
)
