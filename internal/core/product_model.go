package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActivityType identifies the kind of event recorded in a product's activity log.
// The values double as the display strings shown in activity reports.
type ActivityType string

const (
	ActivityProductCreated       ActivityType = "Product Created"
	ActivityStockAdded           ActivityType = "Stock Added"
	ActivityReserved             ActivityType = "Product Reserved"
	ActivityReservationCancelled ActivityType = "Reservation Cancelled"
	ActivityOrderShipped         ActivityType = "Order Shipped"
)

// ActivityDetails is the payload of an Activity. Each activity kind has its own
// details type carrying exactly the fields documented for it, so a consumer never
// has to guess which fields are meaningful.
type ActivityDetails interface {
	activityDetails()
}

// ProductCreatedDetails records the human-readable initial-stock statement.
type ProductCreatedDetails struct {
	Notes string `json:"notes"`
}

// StockAddedDetails records how many units a goods receipt added.
type StockAddedDetails struct {
	Quantity int `json:"quantity"`
}

// ReservedDetails records who reserved how many units at what price.
type ReservedDetails struct {
	CustomerName string          `json:"customer_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// ReservationCancelledDetails records who the cancelled reservation was for and
// how many units it held. The unit price is not retained.
type ReservationCancelledDetails struct {
	CustomerName string `json:"customer_name"`
	Quantity     int    `json:"quantity"`
}

// OrderShippedDetails records the fulfilled reservation's customer, quantity and price.
type OrderShippedDetails struct {
	CustomerName string          `json:"customer_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

func (ProductCreatedDetails) activityDetails()       {}
func (StockAddedDetails) activityDetails()           {}
func (ReservedDetails) activityDetails()             {}
func (ReservationCancelledDetails) activityDetails() {}
func (OrderShippedDetails) activityDetails()         {}

// Activity is one append-only entry in a product's audit history. Entries are
// never mutated or removed while their product exists.
type Activity struct {
	ID      int64           `json:"id"`
	Type    ActivityType    `json:"type"`
	Date    time.Time       `json:"date"`
	Details ActivityDetails `json:"details"`
}

// Reservation is a live customer hold against a product's stock. It ends either
// by cancellation or by shipment, which converts it into a ShippedOrder.
type Reservation struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customer_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"` // fixed at reservation time
}

// ShippedOrder is the immutable record of a fulfilled reservation.
type ShippedOrder struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customer_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ShippedDate  time.Time       `json:"shipped_date"`
}

// Product is a catalog item together with everything it owns: live reservations,
// shipped-order history and the activity log. Stock counts units physically held,
// independent of reservation state.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Stock         int             `json:"stock"`
	BasePrice     decimal.Decimal `json:"base_price"`
	Reservations  []Reservation   `json:"reservations"`
	ShippedOrders []ShippedOrder  `json:"shipped_orders"`
	ActivityLog   []Activity      `json:"activity_log"`
}

// ReservedQuantity returns the total units held by live reservations.
func (p *Product) ReservedQuantity() int {
	total := 0
	for _, r := range p.Reservations {
		total += r.Quantity
	}
	return total
}

// AvailableStock returns the units not held by any live reservation.
// It is never negative: reservations are only accepted up to available stock.
func (p *Product) AvailableStock() int {
	return p.Stock - p.ReservedQuantity()
}

// Clone returns a deep copy of the product. Snapshots handed to callers are
// clones, so no caller can reach the ledger's owned state.
func (p *Product) Clone() Product {
	c := *p
	c.Reservations = append([]Reservation(nil), p.Reservations...)
	c.ShippedOrders = append([]ShippedOrder(nil), p.ShippedOrders...)
	c.ActivityLog = append([]Activity(nil), p.ActivityLog...)
	return c
}
