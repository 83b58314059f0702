package core

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// The reporting queries are pure functions over product snapshots. They never
// mutate and always observe the result of every completed ledger operation,
// since there is no asynchronous boundary between a mutation and a read.

// DateRange is an optional report window. A record passes when it is on or
// after Start and on or before the end of End's calendar day; a nil bound is
// unbounded on that side.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether t falls inside the window.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(endOfDay(*r.End)) {
		return false
	}
	return true
}

// endOfDay returns the last instant of t's calendar day, so that a report's end
// date is inclusive of the whole day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// QuotationLine is one live reservation seen from the customer's side.
type QuotationLine struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CustomerReservations groups one customer's live reservations across all
// products. The grouping key is the exact customer name; no normalization.
type CustomerReservations struct {
	CustomerName string          `json:"customer_name"`
	Lines        []QuotationLine `json:"lines"`
}

// GroupReservationsByCustomer collects every live reservation, grouped by
// customer. Customers appear in the order they are first encountered, walking
// products in display order and reservations in insertion order.
func GroupReservationsByCustomer(products []Product) []CustomerReservations {
	index := make(map[string]int)
	var groups []CustomerReservations
	for _, p := range products {
		for _, r := range p.Reservations {
			i, ok := index[r.CustomerName]
			if !ok {
				i = len(groups)
				index[r.CustomerName] = i
				groups = append(groups, CustomerReservations{CustomerName: r.CustomerName})
			}
			groups[i].Lines = append(groups[i].Lines, QuotationLine{
				ProductName: p.Name,
				Quantity:    r.Quantity,
				UnitPrice:   r.UnitPrice,
			})
		}
	}
	return groups
}

// ShippedOrderRow is a shipped order annotated with its product's name for
// report rendering.
type ShippedOrderRow struct {
	ShippedOrder
	ProductName string `json:"product_name"`
}

// AllShippedOrders flattens every product's shipment history into one report,
// filtered to the window and sorted by shipment time, newest first.
func AllShippedOrders(products []Product, window DateRange) []ShippedOrderRow {
	var rows []ShippedOrderRow
	for _, p := range products {
		for _, o := range p.ShippedOrders {
			if !window.Contains(o.ShippedDate) {
				continue
			}
			rows = append(rows, ShippedOrderRow{ShippedOrder: o, ProductName: p.Name})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ShippedDate.After(rows[j].ShippedDate)
	})
	return rows
}

// FilterActivity returns the product's activity entries inside the window,
// newest first.
func FilterActivity(p Product, window DateRange) []Activity {
	var entries []Activity
	for _, a := range p.ActivityLog {
		if !window.Contains(a.Date) {
			continue
		}
		entries = append(entries, a)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries
}

// LowStockProducts returns the products whose available stock is at or below
// the threshold, preserving display order. It drives the low-stock badge.
func LowStockProducts(products []Product, threshold int) []Product {
	var low []Product
	for _, p := range products {
		if p.AvailableStock() <= threshold {
			low = append(low, p)
		}
	}
	return low
}
