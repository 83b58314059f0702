package app

import (
	"time"

	"sales-portal/internal/auth"
	"sales-portal/internal/core"

	"github.com/shopspring/decimal"
)

// SessionResult is returned by Login.
type SessionResult struct {
	Session *auth.Session
}

// ProductListResult is returned by ListProducts and LowStockProducts.
type ProductListResult struct {
	Products          []core.Product
	LowStockThreshold int
}

// ProductResult is returned by GetProduct and CreateProduct.
type ProductResult struct {
	Product core.Product
}

// ReservationResult is returned by Reserve.
type ReservationResult struct {
	Reservation core.Reservation
	// AvailableStock is the product's remaining available stock after the
	// reservation was accepted.
	AvailableStock int
}

// QuotationGroupsResult is returned by CustomerQuotations.
type QuotationGroupsResult struct {
	Groups []core.CustomerReservations
}

// ShippedReportResult is returned by ShippedOrdersReport.
type ShippedReportResult struct {
	Rows []core.ShippedOrderRow
}

// ActivityReportResult is returned by ActivityReport.
type ActivityReportResult struct {
	ProductName string
	Entries     []core.Activity
}

// ExportResult is returned by ExportQuotation.
type ExportResult struct {
	Path       string
	Format     string // "pdf" or "html"
	GrandTotal decimal.Decimal
}

// SnapshotResult is returned by Snapshot.
type SnapshotResult struct {
	TakenAt  time.Time      `json:"taken_at"`
	Products []core.Product `json:"products"`
}
