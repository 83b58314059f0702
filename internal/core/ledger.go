package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Ledger is the single source of truth for products and everything they own.
// All mutations go through its methods; derived views are snapshots or pure
// query functions over snapshots, never the owned state itself.
//
// Every precondition failure (blank name, non-positive quantity, insufficient
// available stock, unknown id) is a silent no-op. The UI adapters validate
// input and report errors to the user; the ledger is the last line of defense
// and fails closed rather than clamping or auto-correcting.
//
// The ledger is synchronous and single-threaded: each call fully commits or is
// fully rejected before the next is observed.
type Ledger struct {
	products []*Product // display order, newest first
	byID     map[int64]*Product
	nextID   int64
	now      func() time.Time
}

// NewLedger returns an empty ledger using the wall clock for event timestamps.
func NewLedger() *Ledger {
	return NewLedgerWithClock(time.Now)
}

// NewLedgerWithClock returns an empty ledger with an injected clock.
// Tests use it to pin activity and shipment timestamps.
func NewLedgerWithClock(now func() time.Time) *Ledger {
	return &Ledger{byID: make(map[int64]*Product), now: now}
}

// allocID hands out session-unique ids. A counter, not a timestamp: two entities
// created within the same instant must not collide.
func (l *Ledger) allocID() int64 {
	l.nextID++
	return l.nextID
}

// ── Mutations ─────────────────────────────────────────────────────────────────

// CreateProduct adds a product with no reservations, no shipment history and a
// single "Product Created" activity entry, and surfaces it first in the display
// order. The returned snapshot's ok is false when the input was rejected.
func (l *Ledger) CreateProduct(name string, stock int, basePrice decimal.Decimal) (Product, bool) {
	name = strings.TrimSpace(name)
	if name == "" || stock < 0 || basePrice.IsNegative() {
		return Product{}, false
	}

	p := &Product{
		ID:        l.allocID(),
		Name:      name,
		Stock:     stock,
		BasePrice: basePrice,
	}
	p.ActivityLog = append(p.ActivityLog, Activity{
		ID:   l.allocID(),
		Type: ActivityProductCreated,
		Date: l.now(),
		Details: ProductCreatedDetails{
			Notes: fmt.Sprintf("Product created with an initial stock of %d unit(s).", stock),
		},
	})

	l.products = append([]*Product{p}, l.products...)
	l.byID[p.ID] = p
	return p.Clone(), true
}

// RenameProduct replaces the product's display name in place.
// It is the one mutation that leaves no activity entry.
func (l *Ledger) RenameProduct(productID int64, newName string) {
	newName = strings.TrimSpace(newName)
	p, ok := l.byID[productID]
	if !ok || newName == "" {
		return
	}
	p.Name = newName
}

// DeleteProduct removes the product and cascades to everything it owns:
// reservations, shipped orders and the activity log are discarded with it.
func (l *Ledger) DeleteProduct(productID int64) {
	if _, ok := l.byID[productID]; !ok {
		return
	}
	delete(l.byID, productID)
	for i, p := range l.products {
		if p.ID == productID {
			l.products = append(l.products[:i], l.products[i+1:]...)
			break
		}
	}
}

// AddStock increases the product's physical stock and records a "Stock Added"
// activity entry.
func (l *Ledger) AddStock(productID int64, quantityToAdd int) {
	p, ok := l.byID[productID]
	if !ok || quantityToAdd <= 0 {
		return
	}
	p.Stock += quantityToAdd
	p.ActivityLog = append(p.ActivityLog, Activity{
		ID:      l.allocID(),
		Type:    ActivityStockAdded,
		Date:    l.now(),
		Details: StockAddedDetails{Quantity: quantityToAdd},
	})
}

// Reserve places a customer hold on available stock at a unit price fixed at
// reservation time. The request is accepted or rejected as a whole: on
// rejection no reservation exists and no activity entry is appended.
func (l *Ledger) Reserve(productID int64, customerName string, quantity int, unitPrice decimal.Decimal) (Reservation, bool) {
	customerName = strings.TrimSpace(customerName)
	p, ok := l.byID[productID]
	if !ok || customerName == "" || quantity <= 0 || unitPrice.IsNegative() {
		return Reservation{}, false
	}
	if quantity > p.AvailableStock() {
		return Reservation{}, false
	}

	r := Reservation{
		ID:           l.allocID(),
		CustomerName: customerName,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
	}
	p.Reservations = append(p.Reservations, r)
	p.ActivityLog = append(p.ActivityLog, Activity{
		ID:   l.allocID(),
		Type: ActivityReserved,
		Date: l.now(),
		Details: ReservedDetails{
			CustomerName: r.CustomerName,
			Quantity:     r.Quantity,
			UnitPrice:    r.UnitPrice,
		},
	})
	return r, true
}

// CancelReservation removes a live reservation without touching stock and
// records a "Reservation Cancelled" activity entry. The cancelled unit price is
// deliberately not carried into the entry.
func (l *Ledger) CancelReservation(productID, reservationID int64) {
	p, ok := l.byID[productID]
	if !ok {
		return
	}
	for i, r := range p.Reservations {
		if r.ID == reservationID {
			p.Reservations = append(p.Reservations[:i], p.Reservations[i+1:]...)
			p.ActivityLog = append(p.ActivityLog, Activity{
				ID:   l.allocID(),
				Type: ActivityReservationCancelled,
				Date: l.now(),
				Details: ReservationCancelledDetails{
					CustomerName: r.CustomerName,
					Quantity:     r.Quantity,
				},
			})
			return
		}
	}
}

// ShipOrder fulfils a live reservation as one unit of work: stock is reduced by
// the reserved quantity, the reservation is consumed into a ShippedOrder stamped
// with the shipment time, and an "Order Shipped" activity entry is appended.
//
// Stock is not re-validated here. Acceptance already guaranteed
// quantity <= stock, and no operation can shrink stock below the reserved sum,
// so a redundant check could only mask a real bug elsewhere.
func (l *Ledger) ShipOrder(productID, reservationID int64) {
	p, ok := l.byID[productID]
	if !ok {
		return
	}
	for i, r := range p.Reservations {
		if r.ID == reservationID {
			shippedAt := l.now()
			p.Stock -= r.Quantity
			p.Reservations = append(p.Reservations[:i], p.Reservations[i+1:]...)
			p.ShippedOrders = append(p.ShippedOrders, ShippedOrder{
				ID:           r.ID,
				CustomerName: r.CustomerName,
				Quantity:     r.Quantity,
				UnitPrice:    r.UnitPrice,
				ShippedDate:  shippedAt,
			})
			p.ActivityLog = append(p.ActivityLog, Activity{
				ID:   l.allocID(),
				Type: ActivityOrderShipped,
				Date: shippedAt,
				Details: OrderShippedDetails{
					CustomerName: r.CustomerName,
					Quantity:     r.Quantity,
					UnitPrice:    r.UnitPrice,
				},
			})
			return
		}
	}
}

// ── Snapshots ─────────────────────────────────────────────────────────────────

// Products returns deep-copied snapshots of every product in display order,
// newest first.
func (l *Ledger) Products() []Product {
	out := make([]Product, 0, len(l.products))
	for _, p := range l.products {
		out = append(out, p.Clone())
	}
	return out
}

// Product returns a deep-copied snapshot of a single product.
func (l *Ledger) Product(productID int64) (Product, bool) {
	p, ok := l.byID[productID]
	if !ok {
		return Product{}, false
	}
	return p.Clone(), true
}
