package app

import (
	"context"
)

// ApplicationService is the single interface all UI adapters (REPL, CLI) call.
// It decouples presentation from business logic. Implementations must contain
// no fmt.Println, no ANSI codes, and no display logic of any kind.
//
// The service is the form layer of the system: it parses and validates adapter
// input and reports failures as errors the adapter can show. The core ledger
// underneath rejects bad input silently, so every message a user sees
// originates here.
type ApplicationService interface {
	// Login signs the operator in. Any non-empty credential pair is accepted.
	Login(username, password string) (*SessionResult, error)

	// ListProducts returns every product, newest first.
	ListProducts() (*ProductListResult, error)

	// GetProduct returns a single product snapshot.
	GetProduct(productID int64) (*ProductResult, error)

	// CreateProduct adds a product to the catalog.
	CreateProduct(req CreateProductRequest) (*ProductResult, error)

	// RenameProduct changes a product's display name. No activity entry is
	// recorded for renames.
	RenameProduct(req RenameProductRequest) error

	// DeleteProduct removes a product and everything it owns.
	DeleteProduct(productID int64) error

	// AddStock records a goods receipt against a product.
	AddStock(req AddStockRequest) error

	// Reserve places a customer hold on available stock.
	Reserve(req ReserveRequest) (*ReservationResult, error)

	// CancelReservation releases a live reservation without shipping it.
	CancelReservation(productID, reservationID int64) error

	// ShipOrder fulfils a live reservation, deducting stock and recording the
	// shipped order.
	ShipOrder(productID, reservationID int64) error

	// LowStockProducts returns products at or below the configured threshold.
	LowStockProducts() (*ProductListResult, error)

	// CustomerQuotations groups live reservations by customer for quoting.
	CustomerQuotations() (*QuotationGroupsResult, error)

	// ShippedOrdersReport returns all shipped orders inside the optional date
	// window, newest first.
	ShippedOrdersReport(req ReportRequest) (*ShippedReportResult, error)

	// ActivityReport returns one product's activity entries inside the optional
	// date window, newest first.
	ActivityReport(productID int64, req ReportRequest) (*ActivityReportResult, error)

	// ExportQuotation writes a quotation document for the named customer and
	// returns where it was written. PDF when a converter endpoint is
	// configured, HTML otherwise.
	ExportQuotation(ctx context.Context, customerName string) (*ExportResult, error)

	// Snapshot returns the full in-memory state for scripted JSON output.
	Snapshot() (*SnapshotResult, error)
}
