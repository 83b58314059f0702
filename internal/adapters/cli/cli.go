package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"sales-portal/internal/app"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:]; the first element is the subcommand name.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	switch args[0] {
	case "products", "ls":
		result, err := svc.ListProducts()
		if err != nil {
			log.Fatalf("Failed to list products: %v", err)
		}
		printProducts(result)

	case "shipped":
		var req app.ReportRequest
		if len(args) > 1 {
			req.FromDate = args[1]
		}
		if len(args) > 2 {
			req.ToDate = args[2]
		}
		result, err := svc.ShippedOrdersReport(req)
		if err != nil {
			log.Fatalf("Failed to build shipped report: %v", err)
		}
		printShipped(result)

	case "lowstock":
		result, err := svc.LowStockProducts()
		if err != nil {
			log.Fatalf("Failed to build low-stock report: %v", err)
		}
		if len(result.Products) == 0 {
			fmt.Printf("No products at or below the threshold of %d.\n", result.LowStockThreshold)
			return
		}
		for _, p := range result.Products {
			fmt.Printf("%d\t%s\tavailable %d\n", p.ID, p.Name, p.AvailableStock())
		}

	case "quote":
		if len(args) < 2 {
			log.Fatal("Usage: portal quote \"<customer name>\"")
		}
		customer := strings.Join(args[1:], " ")
		result, err := svc.ExportQuotation(ctx, customer)
		if err != nil {
			log.Fatalf("Failed to export quotation: %v", err)
		}
		fmt.Printf("Quotation written to %s (grand total $%s).\n",
			result.Path, result.GrandTotal.StringFixed(2))

	case "snapshot":
		result, err := svc.Snapshot()
		if err != nil {
			log.Fatalf("Failed to take snapshot: %v", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Fatalf("Failed to encode snapshot: %v", err)
		}

	default:
		log.Fatalf("Unknown command: %s\nAvailable: products, shipped, lowstock, quote, snapshot", args[0])
	}
}

func printProducts(result *app.ProductListResult) {
	fmt.Printf("%-4s %-28s %7s %9s %10s %11s\n", "ID", "NAME", "STOCK", "RESERVED", "AVAILABLE", "BASE PRICE")
	fmt.Println(strings.Repeat("-", 74))
	for _, p := range result.Products {
		fmt.Printf("%-4d %-28s %7d %9d %10d %11s\n",
			p.ID, p.Name, p.Stock, p.ReservedQuantity(), p.AvailableStock(),
			"$"+p.BasePrice.StringFixed(2))
	}
}

func printShipped(result *app.ShippedReportResult) {
	if len(result.Rows) == 0 {
		fmt.Println("No shipped orders found for the selected date range.")
		return
	}
	fmt.Printf("%-22s %-18s %5s %11s  %s\n", "PRODUCT", "CUSTOMER", "QTY", "UNIT PRICE", "SHIPPED")
	fmt.Println(strings.Repeat("-", 74))
	for _, row := range result.Rows {
		fmt.Printf("%-22s %-18s %5d %11s  %s\n",
			row.ProductName, row.CustomerName, row.Quantity,
			"$"+row.UnitPrice.StringFixed(2), row.ShippedDate.Format("2006-01-02 15:04"))
	}
}
