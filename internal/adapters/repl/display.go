package repl

import (
	"fmt"
	"strings"

	"sales-portal/internal/app"
	"sales-portal/internal/core"

	"github.com/shopspring/decimal"
)

func intToDecimal(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func printProducts(result *app.ProductListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  %-58s\n", "PRODUCTS")
	fmt.Println(strings.Repeat("=", 78))
	if len(result.Products) == 0 {
		fmt.Println("  No products yet. Use 'add' to create one.")
		fmt.Println(strings.Repeat("=", 78))
		return
	}
	fmt.Printf("  %-4s %-28s %7s %9s %10s %11s\n", "ID", "NAME", "STOCK", "RESERVED", "AVAILABLE", "BASE PRICE")
	fmt.Println(strings.Repeat("-", 78))
	for _, p := range result.Products {
		badge := " "
		if p.AvailableStock() <= result.LowStockThreshold {
			badge = "!"
		}
		fmt.Printf("%s %-4d %-28s %7d %9d %10d %11s\n",
			badge, p.ID, p.Name, p.Stock, p.ReservedQuantity(), p.AvailableStock(),
			"$"+p.BasePrice.StringFixed(2))
		for _, r := range p.Reservations {
			fmt.Printf("       res %-4d %-22s qty %-4d @ $%s\n",
				r.ID, r.CustomerName, r.Quantity, r.UnitPrice.StringFixed(2))
		}
	}
	fmt.Println(strings.Repeat("=", 78))
	fmt.Println("  ! = at or below the low-stock threshold")
}

func printShippedReport(result *app.ShippedReportResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 88))
	fmt.Printf("  %-58s\n", "SHIPPED ORDERS")
	fmt.Println(strings.Repeat("=", 88))
	if len(result.Rows) == 0 {
		fmt.Println("  No shipped orders found for the selected date range.")
		fmt.Println(strings.Repeat("=", 88))
		return
	}
	fmt.Printf("  %-22s %-18s %5s %11s %11s  %s\n", "PRODUCT", "CUSTOMER", "QTY", "UNIT PRICE", "TOTAL", "SHIPPED")
	fmt.Println(strings.Repeat("-", 88))
	for _, row := range result.Rows {
		total := row.UnitPrice.Mul(intToDecimal(row.Quantity))
		fmt.Printf("  %-22s %-18s %5d %11s %11s  %s\n",
			row.ProductName, row.CustomerName, row.Quantity,
			"$"+row.UnitPrice.StringFixed(2), "$"+total.StringFixed(2),
			row.ShippedDate.Format("2006-01-02 15:04"))
	}
	fmt.Println(strings.Repeat("=", 88))
}

func printActivityReport(result *app.ActivityReportResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  ACTIVITY REPORT - %s\n", result.ProductName)
	fmt.Println(strings.Repeat("=", 78))
	if len(result.Entries) == 0 {
		fmt.Println("  No activities found for the selected date range.")
		fmt.Println(strings.Repeat("=", 78))
		return
	}
	for _, entry := range result.Entries {
		fmt.Printf("  %-16s %-22s %s\n",
			entry.Date.Format("2006-01-02 15:04"), entry.Type, formatActivityDetails(entry))
	}
	fmt.Println(strings.Repeat("=", 78))
}

// formatActivityDetails renders one audit entry's payload as a sentence.
func formatActivityDetails(entry core.Activity) string {
	switch d := entry.Details.(type) {
	case core.ProductCreatedDetails:
		if d.Notes != "" {
			return d.Notes
		}
		return "Product was added to the inventory."
	case core.StockAddedDetails:
		return fmt.Sprintf("Added %d unit(s) to stock.", d.Quantity)
	case core.ReservedDetails:
		return fmt.Sprintf("Reserved %d unit(s) for %s at $%s/unit.",
			d.Quantity, d.CustomerName, d.UnitPrice.StringFixed(2))
	case core.ReservationCancelledDetails:
		return fmt.Sprintf("Reservation for %d unit(s) by %s was cancelled.", d.Quantity, d.CustomerName)
	case core.OrderShippedDetails:
		return fmt.Sprintf("Shipped %d unit(s) to %s.", d.Quantity, d.CustomerName)
	default:
		return "Unknown activity."
	}
}

func printQuotations(result *app.QuotationGroupsResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("  %-58s\n", "CUSTOMER QUOTATIONS")
	fmt.Println(strings.Repeat("=", 72))
	if len(result.Groups) == 0 {
		fmt.Println("  No live reservations to quote.")
		fmt.Println(strings.Repeat("=", 72))
		return
	}
	for _, group := range result.Groups {
		fmt.Printf("  %s\n", group.CustomerName)
		for _, line := range group.Lines {
			total := line.UnitPrice.Mul(intToDecimal(line.Quantity))
			fmt.Printf("    %-28s qty %-4d @ %10s = %10s\n",
				line.ProductName, line.Quantity,
				"$"+line.UnitPrice.StringFixed(2), "$"+total.StringFixed(2))
		}
	}
	fmt.Println(strings.Repeat("-", 72))
	fmt.Println("  Use 'quote <customer name>' to export a quotation document.")
	fmt.Println(strings.Repeat("=", 72))
}

func printLowStock(result *app.ProductListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  LOW STOCK - available at or below %d\n", result.LowStockThreshold)
	fmt.Println(strings.Repeat("=", 62))
	if len(result.Products) == 0 {
		fmt.Println("  All products are above the threshold.")
		fmt.Println(strings.Repeat("=", 62))
		return
	}
	fmt.Printf("  %-4s %-34s %10s\n", "ID", "NAME", "AVAILABLE")
	fmt.Println(strings.Repeat("-", 62))
	for _, p := range result.Products {
		fmt.Printf("  %-4d %-34s %10d\n", p.ID, p.Name, p.AvailableStock())
	}
	fmt.Println(strings.Repeat("=", 62))
}
