package shell

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amarorib/boutique-inventory/internal/ledger"
	"github.com/amarorib/boutique-inventory/internal/ledger/dto"
	"github.com/amarorib/boutique-inventory/internal/ledger/usecase"
)

func TestParsePeriodDate(t *testing.T) {
	got, err := ParsePeriodDate("23/08/2026", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 23, 0, 0, 0, 0, time.Local), *got)
}

func TestParsePeriodDate_EndOfDay(t *testing.T) {
	got, err := ParsePeriodDate("23/08/2026", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 23, 23, 59, 59, 0, time.Local), *got)
}

func TestParsePeriodDate_Invalid(t *testing.T) {
	_, err := ParsePeriodDate("2026-08-23", false)
	assert.Error(t, err)
}

func newSeededLedger() ledger.UseCase {
	uc := usecase.NewLedgerUseCase(nil, nil)
	uc.CreateProduct(&dto.CreateProductInput{
		Name:     "Basic Tee",
		Size:     "M",
		Color:    "Black",
		Quantity: 10,
		Price:    decimal.NewFromFloat(49.90),
	})
	return uc
}

func runSession(t *testing.T, uc ledger.UseCase, input string) string {
	t.Helper()
	var out bytes.Buffer
	sh := New(uc, nil, strings.NewReader(input), &out, nil)
	sh.Run()
	return out.String()
}

func TestRun_ListProductsAndExit(t *testing.T) {
	out := runSession(t, newSeededLedger(), "4\n0\n")

	assert.Contains(t, out, "PRODUCTS IN STOCK")
	assert.Contains(t, out, "Basic Tee")
	assert.Contains(t, out, "Shutting down...")
}

func TestRun_ExitsOnEOF(t *testing.T) {
	out := runSession(t, newSeededLedger(), "")
	assert.Contains(t, out, "Choose an option")
}

func TestRun_RecordSale(t *testing.T) {
	uc := newSeededLedger()

	// Menu 5, product 1 x2, blank to finish, confirm, exit.
	out := runSession(t, uc, "5\n1\n2\n\ny\n0\n")

	assert.Contains(t, out, "2x Basic Tee added to the sale.")
	assert.Contains(t, out, "Sale #1 recorded. Total: R$99.80")

	p, err := uc.GetProduct(1)
	require.NoError(t, err)
	assert.Equal(t, 8, p.Quantity)
}

func TestRun_SaleCancelled(t *testing.T) {
	uc := newSeededLedger()

	out := runSession(t, uc, "5\n1\n2\n\nn\n0\n")

	assert.Contains(t, out, "Sale cancelled.")
	assert.Empty(t, uc.ListSales())

	p, err := uc.GetProduct(1)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Quantity)
}

func TestRun_UpdateKeepsBlankFields(t *testing.T) {
	uc := newSeededLedger()

	// Menu 2, id 1, new name, blanks for everything else, exit.
	out := runSession(t, uc, "2\n1\nPremium Tee\n\n\n\n\n\n0\n")

	assert.Contains(t, out, "Product updated")

	p, err := uc.GetProduct(1)
	require.NoError(t, err)
	assert.Equal(t, "Premium Tee", p.Name)
	assert.Equal(t, "M", p.Size)
	assert.Equal(t, 10, p.Quantity)
}
