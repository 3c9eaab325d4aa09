package ledger

import (
	"errors"
	"fmt"
)

// ErrProductNotFound signals a lookup against an unknown product id.
var ErrProductNotFound = errors.New("product not found")

// UnknownProductError aborts a sale that references a product id missing
// from current inventory.
type UnknownProductError struct {
	ProductID int
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("product %d does not exist", e.ProductID)
}

// InsufficientStockError aborts a sale requesting more units than are on
// hand. Available and Requested let the caller report the shortfall.
type InsufficientStockError struct {
	ProductID int
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("product %d has only %d units in stock (requested %d)",
		e.ProductID, e.Available, e.Requested)
}
