package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one (product id, quantity) pair within a sale.
type LineItem struct {
	ProductID int
	Quantity  int
}

// Sale is an immutable record of a settled transaction. Total is a snapshot
// taken at settlement time and never recomputed, even if product prices
// change afterwards. Items keep their insertion order for display.
type Sale struct {
	ID        int
	Items     []LineItem
	CreatedAt time.Time
	Total     decimal.Decimal
}

func (s *Sale) String() string {
	return fmt.Sprintf("Sale #%d | Date: %s | Total: R$%s",
		s.ID, s.CreatedAt.Format("02/01/2006 15:04"), s.Total.StringFixed(2))
}
