package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sales-portal/internal/auth"
	"sales-portal/internal/core"
	"sales-portal/internal/export"

	"github.com/go-playground/validator/v10"
)

type appService struct {
	ledger   *core.Ledger
	cfg      *Config
	sessions *auth.Service
	pdf      *export.PDFExporter
	validate *validator.Validate
	now      func() time.Time
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(ledger *core.Ledger, cfg *Config, sessions *auth.Service) ApplicationService {
	svc := &appService{
		ledger:   ledger,
		cfg:      cfg,
		sessions: sessions,
		validate: validator.New(),
		now:      time.Now,
	}
	if cfg.PDFEndpoint != "" {
		svc.pdf = &export.PDFExporter{Endpoint: cfg.PDFEndpoint}
	}
	return svc
}

// Login signs the operator in. Any non-empty credential pair is accepted.
func (s *appService) Login(username, password string) (*SessionResult, error) {
	session, err := s.sessions.Login(username, password)
	if err != nil {
		return nil, err
	}
	return &SessionResult{Session: session}, nil
}

// ListProducts returns every product, newest first.
func (s *appService) ListProducts() (*ProductListResult, error) {
	return &ProductListResult{
		Products:          s.ledger.Products(),
		LowStockThreshold: s.cfg.LowStockThreshold,
	}, nil
}

// GetProduct returns a single product snapshot.
func (s *appService) GetProduct(productID int64) (*ProductResult, error) {
	p, ok := s.ledger.Product(productID)
	if !ok {
		return nil, fmt.Errorf("product %d not found", productID)
	}
	return &ProductResult{Product: p}, nil
}

// CreateProduct adds a product to the catalog.
func (s *appService) CreateProduct(req CreateProductRequest) (*ProductResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid product input: %w", err)
	}
	if req.BasePrice.IsNegative() {
		return nil, fmt.Errorf("base price cannot be negative, got %s", req.BasePrice)
	}

	p, ok := s.ledger.CreateProduct(req.Name, req.Stock, req.BasePrice)
	if !ok {
		return nil, fmt.Errorf("product %q was rejected by the ledger", req.Name)
	}
	return &ProductResult{Product: p}, nil
}

// RenameProduct changes a product's display name.
func (s *appService) RenameProduct(req RenameProductRequest) error {
	req.NewName = strings.TrimSpace(req.NewName)
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid rename input: %w", err)
	}
	if _, ok := s.ledger.Product(req.ProductID); !ok {
		return fmt.Errorf("product %d not found", req.ProductID)
	}
	s.ledger.RenameProduct(req.ProductID, req.NewName)
	return nil
}

// DeleteProduct removes a product and everything it owns.
func (s *appService) DeleteProduct(productID int64) error {
	if _, ok := s.ledger.Product(productID); !ok {
		return fmt.Errorf("product %d not found", productID)
	}
	s.ledger.DeleteProduct(productID)
	return nil
}

// AddStock records a goods receipt against a product.
func (s *appService) AddStock(req AddStockRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid stock input: %w", err)
	}
	if _, ok := s.ledger.Product(req.ProductID); !ok {
		return fmt.Errorf("product %d not found", req.ProductID)
	}
	s.ledger.AddStock(req.ProductID, req.QuantityToAdd)
	return nil
}

// Reserve places a customer hold on available stock.
func (s *appService) Reserve(req ReserveRequest) (*ReservationResult, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid reservation input: %w", err)
	}
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price cannot be negative, got %s", req.UnitPrice)
	}

	p, ok := s.ledger.Product(req.ProductID)
	if !ok {
		return nil, fmt.Errorf("product %d not found", req.ProductID)
	}
	if available := p.AvailableStock(); req.Quantity > available {
		return nil, fmt.Errorf("insufficient stock for %s: available %d, requested %d",
			p.Name, available, req.Quantity)
	}

	r, ok := s.ledger.Reserve(req.ProductID, req.CustomerName, req.Quantity, req.UnitPrice)
	if !ok {
		return nil, fmt.Errorf("reservation for %q was rejected by the ledger", req.CustomerName)
	}
	p, _ = s.ledger.Product(req.ProductID)
	return &ReservationResult{Reservation: r, AvailableStock: p.AvailableStock()}, nil
}

// CancelReservation releases a live reservation without shipping it.
func (s *appService) CancelReservation(productID, reservationID int64) error {
	if err := s.findReservation(productID, reservationID); err != nil {
		return err
	}
	s.ledger.CancelReservation(productID, reservationID)
	return nil
}

// ShipOrder fulfils a live reservation.
func (s *appService) ShipOrder(productID, reservationID int64) error {
	if err := s.findReservation(productID, reservationID); err != nil {
		return err
	}
	s.ledger.ShipOrder(productID, reservationID)
	return nil
}

func (s *appService) findReservation(productID, reservationID int64) error {
	p, ok := s.ledger.Product(productID)
	if !ok {
		return fmt.Errorf("product %d not found", productID)
	}
	for _, r := range p.Reservations {
		if r.ID == reservationID {
			return nil
		}
	}
	return fmt.Errorf("reservation %d not found on product %s", reservationID, p.Name)
}

// LowStockProducts returns products at or below the configured threshold.
func (s *appService) LowStockProducts() (*ProductListResult, error) {
	return &ProductListResult{
		Products:          core.LowStockProducts(s.ledger.Products(), s.cfg.LowStockThreshold),
		LowStockThreshold: s.cfg.LowStockThreshold,
	}, nil
}

// CustomerQuotations groups live reservations by customer.
func (s *appService) CustomerQuotations() (*QuotationGroupsResult, error) {
	return &QuotationGroupsResult{
		Groups: core.GroupReservationsByCustomer(s.ledger.Products()),
	}, nil
}

// ShippedOrdersReport returns shipped orders inside the optional date window.
func (s *appService) ShippedOrdersReport(req ReportRequest) (*ShippedReportResult, error) {
	window, err := s.parseWindow(req)
	if err != nil {
		return nil, err
	}
	return &ShippedReportResult{
		Rows: core.AllShippedOrders(s.ledger.Products(), window),
	}, nil
}

// ActivityReport returns one product's activity inside the optional date window.
func (s *appService) ActivityReport(productID int64, req ReportRequest) (*ActivityReportResult, error) {
	window, err := s.parseWindow(req)
	if err != nil {
		return nil, err
	}
	p, ok := s.ledger.Product(productID)
	if !ok {
		return nil, fmt.Errorf("product %d not found", productID)
	}
	return &ActivityReportResult{
		ProductName: p.Name,
		Entries:     core.FilterActivity(p, window),
	}, nil
}

func (s *appService) parseWindow(req ReportRequest) (core.DateRange, error) {
	if err := s.validate.Struct(req); err != nil {
		return core.DateRange{}, fmt.Errorf("invalid report dates, use YYYY-MM-DD: %w", err)
	}
	var window core.DateRange
	if req.FromDate != "" {
		from, err := time.ParseInLocation("2006-01-02", req.FromDate, time.Local)
		if err != nil {
			return core.DateRange{}, fmt.Errorf("invalid start date %q: %w", req.FromDate, err)
		}
		window.Start = &from
	}
	if req.ToDate != "" {
		to, err := time.ParseInLocation("2006-01-02", req.ToDate, time.Local)
		if err != nil {
			return core.DateRange{}, fmt.Errorf("invalid end date %q: %w", req.ToDate, err)
		}
		window.End = &to
	}
	return window, nil
}

// ExportQuotation writes a quotation document for the named customer.
func (s *appService) ExportQuotation(ctx context.Context, customerName string) (*ExportResult, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}

	groups := core.GroupReservationsByCustomer(s.ledger.Products())
	var group *core.CustomerReservations
	for i := range groups {
		if groups[i].CustomerName == customerName {
			group = &groups[i]
			break
		}
	}
	if group == nil {
		return nil, fmt.Errorf("no live reservations for customer %q", customerName)
	}

	quotation := export.BuildQuotation(*group, s.now())

	var data []byte
	format := "html"
	if s.pdf != nil {
		pdfBytes, err := s.pdf.Render(ctx, quotation)
		if err != nil {
			return nil, fmt.Errorf("failed to convert quotation to PDF: %w", err)
		}
		data = pdfBytes
		format = "pdf"
	} else {
		data = []byte(export.RenderHTML(quotation))
	}

	path := filepath.Join(s.cfg.ExportDir, quotation.FileName(format))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write quotation file: %w", err)
	}

	return &ExportResult{Path: path, Format: format, GrandTotal: quotation.GrandTotal}, nil
}

// Snapshot returns the full in-memory state.
func (s *appService) Snapshot() (*SnapshotResult, error) {
	return &SnapshotResult{TakenAt: s.now(), Products: s.ledger.Products()}, nil
}
