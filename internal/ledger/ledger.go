package ledger

import (
	"time"

	"github.com/amarorib/boutique-inventory/internal/ledger/dto"
	"github.com/amarorib/boutique-inventory/internal/model"
)

// UseCase is the inventory ledger: the sole owner and mutator of products,
// sales and the stock movement journal. All returned entities are copies.
type UseCase interface {
	CreateProduct(input *dto.CreateProductInput) *model.Product
	GetProduct(id int) (*model.Product, error)
	ListProducts() []model.Product
	ListProductsByName() []model.Product
	UpdateProduct(input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(id int) bool

	SettleSale(items []dto.SaleItem) (*model.Sale, error)
	ListSales() []model.Sale
	ListLowStock() []model.Product
	ListMovements() []model.StockMovement

	StockReport() string
	SalesReport(from, to *time.Time) string
}
