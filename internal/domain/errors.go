package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrDuplicateID       = errors.New("duplicate identifier")
	ErrInvalidReference  = errors.New("invalid reference")
	ErrProductReferenced = errors.New("product is referenced by existing order lines")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ValidationError marks user-correctable input problems. It is rejected
// before any write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientStockError names the product that could not be satisfied so
// the storefront can tell the buyer which line failed.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
