package app

import (
	"github.com/shopspring/decimal"
)

// CreateProductRequest is the input for adding a product to the catalog.
// BasePrice must be non-negative; decimal bounds are checked in the service.
type CreateProductRequest struct {
	Name      string `validate:"required"`
	Stock     int    `validate:"gte=0"`
	BasePrice decimal.Decimal
}

// RenameProductRequest is the input for changing a product's display name.
type RenameProductRequest struct {
	ProductID int64  `validate:"required,gt=0"`
	NewName   string `validate:"required"`
}

// AddStockRequest is the input for a goods receipt.
type AddStockRequest struct {
	ProductID     int64 `validate:"required,gt=0"`
	QuantityToAdd int   `validate:"required,gt=0"`
}

// ReserveRequest is the input for placing a customer hold on stock.
// UnitPrice must be non-negative; zero is a valid give-away price.
type ReserveRequest struct {
	ProductID    int64  `validate:"required,gt=0"`
	CustomerName string `validate:"required"`
	Quantity     int    `validate:"required,gt=0"`
	UnitPrice    decimal.Decimal
}

// ReportRequest bounds a report to an optional date window. Dates are
// YYYY-MM-DD; the end date is inclusive of its whole day.
type ReportRequest struct {
	FromDate string `validate:"omitempty,datetime=2006-01-02"`
	ToDate   string `validate:"omitempty,datetime=2006-01-02"`
}
