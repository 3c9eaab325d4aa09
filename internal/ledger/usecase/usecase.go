package usecase

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/amarorib/boutique-inventory/internal/ledger"
	"github.com/amarorib/boutique-inventory/internal/ledger/dto"
	"github.com/amarorib/boutique-inventory/internal/model"
)

// DefaultThreshold is the low-stock alert limit applied when a new product
// does not specify one.
const DefaultThreshold = 5

// LowStockFunc receives a copy of a product whose quantity just fell below
// its threshold during settlement.
type LowStockFunc func(model.Product)

type ledgerUseCase struct {
	// One lock spans every operation, including both phases of SettleSale,
	// so no caller can observe a product between validation and commit.
	mu sync.Mutex

	products  map[int]*model.Product
	sales     []*model.Sale
	movements []model.StockMovement

	nextProductID int
	nextSaleID    int

	now        func() time.Time
	onLowStock LowStockFunc
	logger     *zap.Logger
}

// NewLedgerUseCase builds an empty ledger. onLowStock may be nil.
func NewLedgerUseCase(log *zap.Logger, onLowStock LowStockFunc) ledger.UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ledgerUseCase{
		products:   make(map[int]*model.Product),
		now:        time.Now,
		onLowStock: onLowStock,
		logger:     log,
	}
}

func (uc *ledgerUseCase) CreateProduct(input *dto.CreateProductInput) *model.Product {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	threshold := DefaultThreshold
	if input.Threshold != nil {
		threshold = *input.Threshold
	}

	uc.nextProductID++
	p := &model.Product{
		ID:        uc.nextProductID,
		Name:      input.Name,
		Size:      input.Size,
		Color:     input.Color,
		Quantity:  input.Quantity,
		Price:     input.Price,
		Threshold: threshold,
	}
	uc.products[p.ID] = p
	uc.record(p.ID, model.MovementInitial, p.Quantity, 0, p.Quantity, 0, "initial stock")

	uc.logger.Debug("product registered",
		zap.Int("product_id", p.ID),
		zap.String("name", p.Name),
		zap.Int("quantity", p.Quantity))

	out := *p
	return &out
}

func (uc *ledgerUseCase) GetProduct(id int) (*model.Product, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	p, ok := uc.products[id]
	if !ok {
		return nil, ledger.ErrProductNotFound
	}
	out := *p
	return &out, nil
}

func (uc *ledgerUseCase) ListProducts() []model.Product {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := uc.snapshotProducts()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (uc *ledgerUseCase) ListProductsByName() []model.Product {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := uc.snapshotProducts()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// snapshotProducts copies every product. Caller holds the lock.
func (uc *ledgerUseCase) snapshotProducts() []model.Product {
	out := make([]model.Product, 0, len(uc.products))
	for _, p := range uc.products {
		out = append(out, *p)
	}
	return out
}

func (uc *ledgerUseCase) UpdateProduct(input *dto.UpdateProductInput) (*model.Product, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	p, ok := uc.products[input.ID]
	if !ok {
		return nil, ledger.ErrProductNotFound
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Size != nil {
		p.Size = *input.Size
	}
	if input.Color != nil {
		p.Color = *input.Color
	}
	if input.Quantity != nil && *input.Quantity != p.Quantity {
		uc.record(p.ID, model.MovementAdjustment, *input.Quantity-p.Quantity,
			p.Quantity, *input.Quantity, 0, "manual adjustment")
		p.Quantity = *input.Quantity
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.Threshold != nil {
		p.Threshold = *input.Threshold
	}

	out := *p
	return &out, nil
}

func (uc *ledgerUseCase) DeleteProduct(id int) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.products[id]; !ok {
		return false
	}
	// Removal is unconditional: past sales keep referencing the id and
	// reports degrade those lines instead of failing.
	delete(uc.products, id)
	uc.logger.Debug("product removed", zap.Int("product_id", id))
	return true
}

func (uc *ledgerUseCase) SettleSale(items []dto.SaleItem) (*model.Sale, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	// Validation phase: every line is checked before any quantity moves.
	// Lines naming the same product count cumulatively, so duplicates
	// cannot drive the quantity negative at commit. A single failing line
	// aborts the whole sale.
	requested := make(map[int]int, len(items))
	for _, it := range items {
		p, ok := uc.products[it.ProductID]
		if !ok {
			return nil, &ledger.UnknownProductError{ProductID: it.ProductID}
		}
		requested[it.ProductID] += it.Quantity
		if p.Quantity < requested[it.ProductID] {
			return nil, &ledger.InsufficientStockError{
				ProductID: it.ProductID,
				Available: p.Quantity,
				Requested: requested[it.ProductID],
			}
		}
	}

	uc.nextSaleID++
	saleID := uc.nextSaleID
	now := uc.now()

	// Commit phase: decrement, journal and alert per line, then append the
	// immutable sale record.
	total := decimal.Zero
	saleItems := make([]model.LineItem, 0, len(items))
	for _, it := range items {
		p := uc.products[it.ProductID]
		before := p.Quantity
		p.Quantity -= it.Quantity
		uc.record(p.ID, model.MovementSale, -it.Quantity, before, p.Quantity, saleID, "")

		if p.LowStock() {
			uc.logger.Warn("low stock",
				zap.Int("product_id", p.ID),
				zap.String("name", p.Name),
				zap.Int("quantity", p.Quantity),
				zap.Int("threshold", p.Threshold))
			if uc.onLowStock != nil {
				uc.onLowStock(*p)
			}
		}

		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		saleItems = append(saleItems, model.LineItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	sale := &model.Sale{
		ID:        saleID,
		Items:     saleItems,
		CreatedAt: now,
		Total:     total,
	}
	uc.sales = append(uc.sales, sale)

	uc.logger.Info("sale settled",
		zap.Int("sale_id", sale.ID),
		zap.Int("lines", len(sale.Items)),
		zap.String("total", sale.Total.StringFixed(2)))

	out := *sale
	out.Items = append([]model.LineItem(nil), sale.Items...)
	return &out, nil
}

func (uc *ledgerUseCase) ListSales() []model.Sale {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]model.Sale, 0, len(uc.sales))
	for _, s := range uc.sales {
		c := *s
		c.Items = append([]model.LineItem(nil), s.Items...)
		out = append(out, c)
	}
	return out
}

func (uc *ledgerUseCase) ListLowStock() []model.Product {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var out []model.Product
	for _, p := range uc.products {
		if p.LowStock() {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity < out[j].Quantity
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (uc *ledgerUseCase) ListMovements() []model.StockMovement {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return append([]model.StockMovement(nil), uc.movements...)
}

// record appends a journal entry. Caller holds the lock.
func (uc *ledgerUseCase) record(productID int, movementType string, change, before, after, saleID int, notes string) {
	uc.movements = append(uc.movements, model.StockMovement{
		ID:             uuid.New().String(),
		ProductID:      productID,
		MovementType:   movementType,
		QuantityChange: change,
		QuantityBefore: before,
		QuantityAfter:  after,
		SaleID:         saleID,
		Notes:          notes,
		CreatedAt:      uc.now(),
	})
}

func (uc *ledgerUseCase) StockReport() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var b strings.Builder
	b.WriteString("===== STOCK REPORT =====\n")
	fmt.Fprintf(&b, "Date: %s\n", uc.now().Format("02/01/2006 15:04"))
	fmt.Fprintf(&b, "Total products: %d\n\n", len(uc.products))

	products := uc.snapshotProducts()
	sort.Slice(products, func(i, j int) bool {
		if products[i].Name != products[j].Name {
			return products[i].Name < products[j].Name
		}
		return products[i].ID < products[j].ID
	})

	for i := range products {
		p := &products[i]
		status := "OK"
		if p.LowStock() {
			status = "LOW STOCK"
		}
		fmt.Fprintf(&b, "%s | Status: %s\n", p, status)
	}
	return b.String()
}

func (uc *ledgerUseCase) SalesReport(from, to *time.Time) string {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	// nil bounds cover all time; both ends are inclusive.
	var filtered []*model.Sale
	sum := decimal.Zero
	for _, s := range uc.sales {
		if from != nil && s.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && s.CreatedAt.After(*to) {
			continue
		}
		filtered = append(filtered, s)
		sum = sum.Add(s.Total)
	}

	periodStart := "Start"
	if from != nil {
		periodStart = from.Format("02/01/2006")
	}
	periodEnd := "Today"
	if to != nil {
		periodEnd = to.Format("02/01/2006")
	}

	var b strings.Builder
	b.WriteString("===== SALES REPORT =====\n")
	fmt.Fprintf(&b, "Period: %s to %s\n", periodStart, periodEnd)
	fmt.Fprintf(&b, "Total sales: %d\n", len(filtered))
	fmt.Fprintf(&b, "Total value: R$%s\n\n", sum.StringFixed(2))

	for _, s := range filtered {
		fmt.Fprintf(&b, "%s\n", s)
		b.WriteString("Items sold:\n")
		for _, item := range s.Items {
			if p, ok := uc.products[item.ProductID]; ok {
				fmt.Fprintf(&b, "  - %dx %s (Size: %s, Color: %s) - R$%s each\n",
					item.Quantity, p.Name, p.Size, p.Color, p.Price.StringFixed(2))
			} else {
				// Line items survive product removal; degrade instead of failing.
				fmt.Fprintf(&b, "  - %dx product ID %d (not found in current inventory)\n",
					item.Quantity, item.ProductID)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
