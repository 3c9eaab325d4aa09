package model

import "time"

const (
	MovementInitial    = "initial"
	MovementAdjustment = "adjustment"
	MovementSale       = "sale"
)

// StockMovement is one append-only journal entry for a quantity change.
type StockMovement struct {
	ID             string
	ProductID      int
	MovementType   string
	QuantityChange int
	QuantityBefore int
	QuantityAfter  int
	SaleID         int // 0 unless MovementType == MovementSale
	Notes          string
	CreatedAt      time.Time
}
