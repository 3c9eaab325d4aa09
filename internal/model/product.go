package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is a stocked garment variant. Quantity never goes negative; the
// ledger enforces that before any mutation.
type Product struct {
	ID        int
	Name      string
	Size      string
	Color     string
	Quantity  int
	Price     decimal.Decimal
	Threshold int
}

// LowStock reports whether the quantity fell strictly below the alert
// threshold. A quantity equal to the threshold is not low.
func (p *Product) LowStock() bool {
	return p.Quantity < p.Threshold
}

func (p *Product) String() string {
	return fmt.Sprintf("ID: %d | %s | Size: %s | Color: %s | Qty: %d | Price: R$%s",
		p.ID, p.Name, p.Size, p.Color, p.Quantity, p.Price.StringFixed(2))
}
