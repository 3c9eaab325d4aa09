package dto

import "github.com/shopspring/decimal"

// CreateProductInput carries the fields of a new product. Threshold is
// optional; nil gets the ledger default.
type CreateProductInput struct {
	Name      string
	Size      string
	Color     string
	Quantity  int
	Price     decimal.Decimal
	Threshold *int
}

// UpdateProductInput is a partial update. nil leaves a field unchanged; any
// non-nil value is applied verbatim, including zero and the empty string.
type UpdateProductInput struct {
	ID        int
	Name      *string
	Size      *string
	Color     *string
	Quantity  *int
	Price     *decimal.Decimal
	Threshold *int
}

// SaleItem is one requested line of a sale, in caller order.
type SaleItem struct {
	ProductID int
	Quantity  int
}
