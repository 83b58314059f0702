package app

import (
	"sales-portal/internal/core"

	"github.com/shopspring/decimal"
)

// SeedDemoCatalog fills an empty ledger with the demo catalog so a fresh
// session has something to work with. Products are created oldest-last so the
// display order reads Quantum Laptop Pro first.
func SeedDemoCatalog(ledger *core.Ledger) {
	type demoReservation struct {
		customer string
		quantity int
	}
	demo := []struct {
		name         string
		stock        int
		basePrice    string
		reservations []demoReservation
	}{
		{"4K Flexi-Monitor", 15, "449.00", nil},
		{"Hyper-Thread Keyboard", 35, "129.99", []demoReservation{
			{"Charlie Brown", 5},
		}},
		{"Cybernetic Mouse X1", 50, "79.50", nil},
		{"Quantum Laptop Pro", 20, "1899.00", []demoReservation{
			{"Alice Johnson", 2},
			{"Bob Smith", 1},
		}},
	}

	for _, d := range demo {
		price := decimal.RequireFromString(d.basePrice)
		p, ok := ledger.CreateProduct(d.name, d.stock, price)
		if !ok {
			continue
		}
		for _, r := range d.reservations {
			ledger.Reserve(p.ID, r.customer, r.quantity, price)
		}
	}
}
