package repl

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"sales-portal/internal/app"

	"github.com/shopspring/decimal"
)

// handleAddProduct runs an interactive product creation session.
func handleAddProduct(reader *bufio.Reader, svc app.ApplicationService) {
	fmt.Println("Adding a product. Type 'cancel' at any prompt to abort.")

	name, ok := promptLine(reader, "  Name: ")
	if !ok {
		return
	}
	stock, ok := promptInt(reader, "  Initial stock: ")
	if !ok {
		return
	}
	basePrice, ok := promptDecimal(reader, "  Base price: ", decimal.Zero)
	if !ok {
		return
	}

	result, err := svc.CreateProduct(app.CreateProductRequest{
		Name:      name,
		Stock:     stock,
		BasePrice: basePrice,
	})
	if err != nil {
		fmt.Printf("Could not add product: %v\n", err)
		return
	}
	fmt.Printf("Added %s (id %d) with stock %d.\n",
		result.Product.Name, result.Product.ID, result.Product.Stock)
}

// handleReserve runs an interactive reservation session for one product.
// The unit price prompt defaults to the product's base price.
func handleReserve(reader *bufio.Reader, svc app.ApplicationService, productID int64) {
	product, err := svc.GetProduct(productID)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	available := product.Product.AvailableStock()
	if available == 0 {
		fmt.Printf("%s has no available stock to reserve.\n", product.Product.Name)
		return
	}
	fmt.Printf("Reserving %s (available %d). Type 'cancel' at any prompt to abort.\n",
		product.Product.Name, available)

	customer, ok := promptLine(reader, "  Customer name: ")
	if !ok {
		return
	}
	quantity, ok := promptInt(reader, "  Quantity: ")
	if !ok {
		return
	}
	unitPrice, ok := promptDecimal(reader,
		fmt.Sprintf("  Unit price [%s]: ", product.Product.BasePrice.StringFixed(2)),
		product.Product.BasePrice)
	if !ok {
		return
	}

	result, err := svc.Reserve(app.ReserveRequest{
		ProductID:    productID,
		CustomerName: customer,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
	})
	if err != nil {
		fmt.Printf("Could not reserve: %v\n", err)
		return
	}
	fmt.Printf("Reserved %d unit(s) for %s at $%s. Available stock is now %d.\n",
		result.Reservation.Quantity, result.Reservation.CustomerName,
		result.Reservation.UnitPrice.StringFixed(2), result.AvailableStock)
}

// promptLine reads one non-empty line. ok is false when the operator cancels.
func promptLine(reader *bufio.Reader, prompt string) (string, bool) {
	for {
		fmt.Print(prompt)
		raw, _ := reader.ReadString('\n')
		raw = strings.TrimSpace(raw)
		if strings.EqualFold(raw, "cancel") {
			fmt.Println("Cancelled.")
			return "", false
		}
		if raw == "" {
			continue
		}
		return raw, true
	}
}

func promptInt(reader *bufio.Reader, prompt string) (int, bool) {
	for {
		raw, ok := promptLine(reader, prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Println("  Enter a whole number.")
			continue
		}
		return n, true
	}
}

// promptDecimal reads a decimal amount; an empty line takes the default.
func promptDecimal(reader *bufio.Reader, prompt string, fallback decimal.Decimal) (decimal.Decimal, bool) {
	for {
		fmt.Print(prompt)
		raw, _ := reader.ReadString('\n')
		raw = strings.TrimSpace(raw)
		if strings.EqualFold(raw, "cancel") {
			fmt.Println("Cancelled.")
			return decimal.Zero, false
		}
		if raw == "" {
			return fallback, true
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Println("  Enter an amount such as 4.50.")
			continue
		}
		return amount, true
	}
}
