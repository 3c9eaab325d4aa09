package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/amarorib/boutique-inventory/internal/ledger"
	"github.com/amarorib/boutique-inventory/internal/ledger/dto"
	"github.com/amarorib/boutique-inventory/internal/report"
)

// Shell drives the interactive menu over the ledger. All input sanitation
// lives here; the ledger only ever sees clean requests.
type Shell struct {
	ledger   ledger.UseCase
	exporter *report.FileExporter
	in       *bufio.Scanner
	out      io.Writer
	logger   *zap.Logger
	eof      bool
}

func New(uc ledger.UseCase, exporter *report.FileExporter, in io.Reader, out io.Writer, log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Shell{
		ledger:   uc,
		exporter: exporter,
		in:       bufio.NewScanner(in),
		out:      out,
		logger:   log,
	}
}

// Run loops over the menu until the operator exits or input ends.
func (s *Shell) Run() {
	for {
		s.printMenu()
		choice := s.prompt("Choose an option: ")
		if s.eof {
			return
		}
		switch choice {
		case "1":
			s.registerProduct()
		case "2":
			s.updateProduct()
		case "3":
			s.removeProduct()
		case "4":
			s.printProducts()
		case "5":
			s.recordSale()
		case "6":
			s.listLowStock()
		case "7":
			s.stockReport()
		case "8":
			s.salesReport()
		case "9":
			s.listMovements()
		case "0":
			fmt.Fprintln(s.out, "Shutting down...")
			return
		default:
			fmt.Fprintln(s.out, "Invalid option.")
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "===== CLOTHING STORE INVENTORY =====")
	fmt.Fprintln(s.out, "1. Register product")
	fmt.Fprintln(s.out, "2. Update product")
	fmt.Fprintln(s.out, "3. Remove product")
	fmt.Fprintln(s.out, "4. List products")
	fmt.Fprintln(s.out, "5. Record sale")
	fmt.Fprintln(s.out, "6. List low-stock products")
	fmt.Fprintln(s.out, "7. Stock report")
	fmt.Fprintln(s.out, "8. Sales report")
	fmt.Fprintln(s.out, "9. Stock movement history")
	fmt.Fprintln(s.out, "0. Exit")
	fmt.Fprintln(s.out, strings.Repeat("=", 36))
}

func (s *Shell) prompt(label string) string {
	if s.eof {
		return ""
	}
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		s.eof = true
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

// promptPositiveInt insists on a whole number greater than zero.
func (s *Shell) promptPositiveInt(label string) int {
	for {
		raw := s.prompt(label)
		if s.eof {
			return 0
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			fmt.Fprintln(s.out, "Value must be a positive whole number.")
			continue
		}
		return n
	}
}

// promptPositivePrice insists on a decimal greater than zero.
func (s *Shell) promptPositivePrice(label string) decimal.Decimal {
	for {
		raw := s.prompt(label)
		if s.eof {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(raw)
		if err != nil || !d.IsPositive() {
			fmt.Fprintln(s.out, "Price must be a number greater than zero.")
			continue
		}
		return d
	}
}

func (s *Shell) promptID(label string) (int, bool) {
	raw := s.prompt(label)
	id, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid ID.")
		return 0, false
	}
	return id, true
}

func (s *Shell) registerProduct() {
	fmt.Fprintln(s.out, "\n===== REGISTER PRODUCT =====")
	name := s.prompt("Name: ")
	size := s.prompt("Size: ")
	color := s.prompt("Color: ")
	qty := s.promptPositiveInt("Quantity: ")
	price := s.promptPositivePrice("Price: R$")
	if s.eof {
		return
	}

	input := &dto.CreateProductInput{
		Name:     name,
		Size:     size,
		Color:    color,
		Quantity: qty,
		Price:    price,
	}
	if raw := s.prompt("Low-stock alert threshold [5]: "); raw != "" {
		if t, err := strconv.Atoi(raw); err == nil && t >= 0 {
			input.Threshold = &t
		} else {
			fmt.Fprintln(s.out, "Invalid value, using the default (5).")
		}
	}

	p := s.ledger.CreateProduct(input)
	fmt.Fprintf(s.out, "\nProduct registered: %s\n", p)
}

func (s *Shell) updateProduct() {
	fmt.Fprintln(s.out, "\n===== UPDATE PRODUCT =====")
	s.printProducts()

	id, ok := s.promptID("\nID of the product to update: ")
	if !ok {
		return
	}
	current, err := s.ledger.GetProduct(id)
	if err != nil {
		fmt.Fprintln(s.out, "Product not found.")
		return
	}
	fmt.Fprintf(s.out, "\nUpdating: %s\n", current)

	// Blank input keeps the current value; the dto field stays nil.
	input := &dto.UpdateProductInput{ID: id}
	if v := s.prompt(fmt.Sprintf("Name [%s]: ", current.Name)); v != "" {
		input.Name = &v
	}
	if v := s.prompt(fmt.Sprintf("Size [%s]: ", current.Size)); v != "" {
		input.Size = &v
	}
	if v := s.prompt(fmt.Sprintf("Color [%s]: ", current.Color)); v != "" {
		input.Color = &v
	}
	if raw := s.prompt(fmt.Sprintf("Quantity [%d]: ", current.Quantity)); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			input.Quantity = &n
		} else {
			fmt.Fprintln(s.out, "Invalid quantity, keeping the current value.")
		}
	}
	if raw := s.prompt(fmt.Sprintf("Price [R$%s]: ", current.Price.StringFixed(2))); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil && !d.IsNegative() {
			input.Price = &d
		} else {
			fmt.Fprintln(s.out, "Invalid price, keeping the current value.")
		}
	}
	if raw := s.prompt(fmt.Sprintf("Low-stock alert threshold [%d]: ", current.Threshold)); raw != "" {
		if t, err := strconv.Atoi(raw); err == nil && t >= 0 {
			input.Threshold = &t
		} else {
			fmt.Fprintln(s.out, "Invalid threshold, keeping the current value.")
		}
	}

	updated, err := s.ledger.UpdateProduct(input)
	if err != nil {
		fmt.Fprintln(s.out, "Product not found.")
		return
	}
	fmt.Fprintf(s.out, "\nProduct updated: %s\n", updated)
}

func (s *Shell) removeProduct() {
	fmt.Fprintln(s.out, "\n===== REMOVE PRODUCT =====")
	s.printProducts()

	id, ok := s.promptID("\nID of the product to remove: ")
	if !ok {
		return
	}
	if s.ledger.DeleteProduct(id) {
		fmt.Fprintf(s.out, "Product %d removed.\n", id)
	} else {
		fmt.Fprintf(s.out, "Product %d not found.\n", id)
	}
}

func (s *Shell) printProducts() {
	fmt.Fprintln(s.out, "\n===== PRODUCTS IN STOCK =====")
	products := s.ledger.ListProducts()
	if len(products) == 0 {
		fmt.Fprintln(s.out, "No products registered.")
		return
	}
	for i := range products {
		p := &products[i]
		status := "OK"
		if p.LowStock() {
			status = "LOW STOCK"
		}
		fmt.Fprintf(s.out, "%s | Status: %s\n", p, status)
	}
}

func (s *Shell) recordSale() {
	fmt.Fprintln(s.out, "\n===== RECORD SALE =====")
	s.printProducts()

	var items []dto.SaleItem
	index := make(map[int]int) // product id -> position in items

	for {
		raw := s.prompt("\nProduct ID (blank to finish): ")
		if raw == "" {
			break
		}
		id, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid ID.")
			continue
		}
		p, err := s.ledger.GetProduct(id)
		if err != nil {
			fmt.Fprintln(s.out, "Product not found.")
			continue
		}
		fmt.Fprintf(s.out, "Selected: %s | Size: %s | Color: %s | Price: R$%s\n",
			p.Name, p.Size, p.Color, p.Price.StringFixed(2))

		qty := 0
		for qty <= 0 || qty > p.Quantity {
			qty = s.promptPositiveInt(fmt.Sprintf("Quantity (available: %d): ", p.Quantity))
			if s.eof {
				return
			}
			if qty > p.Quantity {
				fmt.Fprintf(s.out, "Not enough stock. Available: %d\n", p.Quantity)
			}
		}

		if pos, ok := index[id]; ok {
			items[pos].Quantity += qty
		} else {
			index[id] = len(items)
			items = append(items, dto.SaleItem{ProductID: id, Quantity: qty})
		}
		fmt.Fprintf(s.out, "%dx %s added to the sale.\n", qty, p.Name)
	}

	if len(items) == 0 {
		fmt.Fprintln(s.out, "No items selected. Sale cancelled.")
		return
	}

	fmt.Fprintln(s.out, "\n===== SALE SUMMARY =====")
	total := decimal.Zero
	for _, it := range items {
		p, err := s.ledger.GetProduct(it.ProductID)
		if err != nil {
			continue
		}
		subtotal := p.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(subtotal)
		fmt.Fprintf(s.out, "%dx %s (Size: %s, Color: %s) - R$%s each - Subtotal: R$%s\n",
			it.Quantity, p.Name, p.Size, p.Color, p.Price.StringFixed(2), subtotal.StringFixed(2))
	}
	fmt.Fprintf(s.out, "\nTotal: R$%s\n", total.StringFixed(2))

	if !strings.EqualFold(s.prompt("\nConfirm sale? (y/n): "), "y") {
		fmt.Fprintln(s.out, "Sale cancelled.")
		return
	}

	sale, err := s.ledger.SettleSale(items)
	if err != nil {
		var unknown *ledger.UnknownProductError
		var short *ledger.InsufficientStockError
		switch {
		case errors.As(err, &unknown):
			fmt.Fprintf(s.out, "Sale failed: product %d no longer exists.\n", unknown.ProductID)
		case errors.As(err, &short):
			fmt.Fprintf(s.out, "Sale failed: product %d has only %d units left (requested %d).\n",
				short.ProductID, short.Available, short.Requested)
		default:
			fmt.Fprintf(s.out, "Sale failed: %v\n", err)
		}
		return
	}

	fmt.Fprintf(s.out, "\nSale #%d recorded. Total: R$%s\n", sale.ID, sale.Total.StringFixed(2))
}

func (s *Shell) listLowStock() {
	fmt.Fprintln(s.out, "\n===== LOW-STOCK PRODUCTS =====")
	products := s.ledger.ListLowStock()
	if len(products) == 0 {
		fmt.Fprintln(s.out, "No products are low on stock.")
		return
	}
	for i := range products {
		fmt.Fprintf(s.out, "%s | ALERT: low stock\n", &products[i])
	}
}

func (s *Shell) listMovements() {
	fmt.Fprintln(s.out, "\n===== STOCK MOVEMENT HISTORY =====")
	movements := s.ledger.ListMovements()
	if len(movements) == 0 {
		fmt.Fprintln(s.out, "No stock movements recorded.")
		return
	}
	for _, m := range movements {
		line := fmt.Sprintf("%s | product %d | %s | %+d (%d -> %d)",
			m.CreatedAt.Format("02/01/2006 15:04"), m.ProductID, m.MovementType,
			m.QuantityChange, m.QuantityBefore, m.QuantityAfter)
		if m.SaleID != 0 {
			line += fmt.Sprintf(" | sale #%d", m.SaleID)
		}
		fmt.Fprintln(s.out, line)
	}
}

func (s *Shell) stockReport() {
	text := s.ledger.StockReport()
	fmt.Fprintln(s.out, "\n"+text)
	s.maybeExport("stock_report", text)
}

func (s *Shell) salesReport() {
	fmt.Fprintln(s.out, "\n===== SALES REPORT =====")
	fmt.Fprintln(s.out, "Set the report period (leave blank to cover everything):")

	from, ok := s.promptDate("Start date (DD/MM/YYYY): ", false)
	var to *time.Time
	if ok {
		to, ok = s.promptDate("End date (DD/MM/YYYY): ", true)
	}
	if !ok {
		fmt.Fprintln(s.out, "Invalid date format. Covering the whole period.")
		from, to = nil, nil
	}

	text := s.ledger.SalesReport(from, to)
	fmt.Fprintln(s.out, "\n"+text)
	s.maybeExport("sales_report", text)
}

func (s *Shell) promptDate(label string, endOfDay bool) (*time.Time, bool) {
	raw := s.prompt(label)
	if raw == "" {
		return nil, true
	}
	t, err := ParsePeriodDate(raw, endOfDay)
	if err != nil {
		return nil, false
	}
	return t, true
}

// ParsePeriodDate parses a DD/MM/YYYY report bound. endOfDay pushes the
// result to 23:59:59 so a date-only end bound covers its whole day.
func ParsePeriodDate(raw string, endOfDay bool) (*time.Time, error) {
	t, err := time.ParseInLocation("02/01/2006", raw, time.Local)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		// Set the clock fields directly; adding a duration would drift by
		// an hour across a DST transition.
		t = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.Local)
	}
	return &t, nil
}

func (s *Shell) maybeExport(prefix, text string) {
	if s.exporter == nil {
		return
	}
	if !strings.EqualFold(s.prompt("Save this report to a file? (y/n): "), "y") {
		return
	}
	path, err := s.exporter.Export(prefix, text)
	if err != nil {
		s.logger.Error("report export failed", zap.Error(err))
		fmt.Fprintf(s.out, "Could not save the report: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Report saved as '%s'\n", path)
}
