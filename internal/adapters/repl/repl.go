package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"sales-portal/internal/app"
)

// Run starts the interactive portal loop. It gates the dashboard behind the
// login prompt, then reads commands from reader and dispatches them against
// the application service until the operator exits.
func Run(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	session := promptLogin(reader, svc)

	fmt.Println("Sales Portal Pro")
	fmt.Printf("Signed in as %s\n", session.Username)
	fmt.Println("Type 'products' to see the catalog, 'help' for all commands.")
	fmt.Println(strings.Repeat("-", 70))

	errExit := fmt.Errorf("exit")

	dispatch := func(input string) error {
		tokens := strings.Fields(input)
		if len(tokens) == 0 {
			return nil
		}
		cmd := strings.ToLower(tokens[0])
		args := tokens[1:]

		switch cmd {
		case "products", "ls":
			result, err := svc.ListProducts()
			if err != nil {
				return err
			}
			printProducts(result)

		case "add":
			handleAddProduct(reader, svc)

		case "stock":
			if len(args) < 2 {
				return fmt.Errorf("usage: stock <product-id> <quantity>")
			}
			productID, err := parseID(args[0])
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			if err := svc.AddStock(app.AddStockRequest{ProductID: productID, QuantityToAdd: qty}); err != nil {
				return err
			}
			fmt.Printf("Added %d unit(s).\n", qty)

		case "reserve":
			if len(args) < 1 {
				return fmt.Errorf("usage: reserve <product-id>")
			}
			productID, err := parseID(args[0])
			if err != nil {
				return err
			}
			handleReserve(reader, svc, productID)

		case "cancel":
			productID, reservationID, err := parseIDPair(args, "cancel")
			if err != nil {
				return err
			}
			if err := svc.CancelReservation(productID, reservationID); err != nil {
				return err
			}
			fmt.Println("Reservation cancelled.")

		case "ship":
			productID, reservationID, err := parseIDPair(args, "ship")
			if err != nil {
				return err
			}
			if err := svc.ShipOrder(productID, reservationID); err != nil {
				return err
			}
			fmt.Println("Order shipped.")

		case "rename":
			if len(args) < 2 {
				return fmt.Errorf("usage: rename <product-id> <new name>")
			}
			productID, err := parseID(args[0])
			if err != nil {
				return err
			}
			newName := strings.Join(args[1:], " ")
			if err := svc.RenameProduct(app.RenameProductRequest{ProductID: productID, NewName: newName}); err != nil {
				return err
			}
			fmt.Printf("Renamed to %s.\n", newName)

		case "delete":
			if len(args) < 1 {
				return fmt.Errorf("usage: delete <product-id>")
			}
			productID, err := parseID(args[0])
			if err != nil {
				return err
			}
			result, err := svc.GetProduct(productID)
			if err != nil {
				return err
			}
			fmt.Printf("Delete %q and all of its history? (y/n): ", result.Product.Name)
			choice, _ := reader.ReadString('\n')
			if c := strings.TrimSpace(strings.ToLower(choice)); c != "y" && c != "yes" {
				fmt.Println("Delete cancelled.")
				return nil
			}
			if err := svc.DeleteProduct(productID); err != nil {
				return err
			}
			fmt.Println("Product deleted.")

		case "report":
			if len(args) < 1 {
				return fmt.Errorf("usage: report <product-id> [from] [to]  (dates YYYY-MM-DD)")
			}
			productID, err := parseID(args[0])
			if err != nil {
				return err
			}
			result, err := svc.ActivityReport(productID, reportWindow(args[1:]))
			if err != nil {
				return err
			}
			printActivityReport(result)

		case "shipped":
			result, err := svc.ShippedOrdersReport(reportWindow(args))
			if err != nil {
				return err
			}
			printShippedReport(result)

		case "quotes":
			result, err := svc.CustomerQuotations()
			if err != nil {
				return err
			}
			printQuotations(result)

		case "quote":
			if len(args) < 1 {
				return fmt.Errorf("usage: quote <customer name>")
			}
			customer := strings.Join(args, " ")
			result, err := svc.ExportQuotation(ctx, customer)
			if err != nil {
				return err
			}
			fmt.Printf("Quotation written to %s (grand total $%s).\n", result.Path, result.GrandTotal.StringFixed(2))

		case "lowstock":
			result, err := svc.LowStockProducts()
			if err != nil {
				return err
			}
			printLowStock(result)

		case "help":
			printHelp()

		case "exit", "quit":
			return errExit

		default:
			return fmt.Errorf("unknown command %q, try 'help'", cmd)
		}
		return nil
	}

	for {
		fmt.Print("\n> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if err := dispatch(input); err != nil {
			if err == errExit {
				fmt.Println("Goodbye.")
				return
			}
			fmt.Printf("Error: %v\n", err)
		}
	}
}

// promptLogin loops until the stub accepts a credential pair.
func promptLogin(reader *bufio.Reader, svc app.ApplicationService) *appSession {
	for {
		fmt.Print("Email: ")
		username, _ := reader.ReadString('\n')
		fmt.Print("Password: ")
		password, _ := reader.ReadString('\n')

		result, err := svc.Login(strings.TrimSpace(username), strings.TrimSpace(password))
		if err != nil {
			fmt.Printf("Login failed: %v\n", err)
			continue
		}
		return &appSession{Username: result.Session.Username}
	}
}

type appSession struct {
	Username string
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func parseIDPair(args []string, cmd string) (int64, int64, error) {
	if len(args) < 2 {
		return 0, 0, fmt.Errorf("usage: %s <product-id> <reservation-id>", cmd)
	}
	productID, err := parseID(args[0])
	if err != nil {
		return 0, 0, err
	}
	reservationID, err := parseID(args[1])
	if err != nil {
		return 0, 0, err
	}
	return productID, reservationID, nil
}

// reportWindow maps optional [from] [to] arguments onto a ReportRequest.
// Validation happens in the service.
func reportWindow(args []string) app.ReportRequest {
	var req app.ReportRequest
	if len(args) > 0 {
		req.FromDate = args[0]
	}
	if len(args) > 1 {
		req.ToDate = args[1]
	}
	return req
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  products                      list the catalog with reservations")
	fmt.Println("  add                           add a product (interactive)")
	fmt.Println("  stock <id> <qty>              add stock to a product")
	fmt.Println("  reserve <id>                  reserve stock for a customer (interactive)")
	fmt.Println("  cancel <id> <res-id>          cancel a reservation")
	fmt.Println("  ship <id> <res-id>            ship a reservation")
	fmt.Println("  rename <id> <new name>        rename a product")
	fmt.Println("  delete <id>                   delete a product and its history")
	fmt.Println("  report <id> [from] [to]       product activity report (dates YYYY-MM-DD)")
	fmt.Println("  shipped [from] [to]           shipped orders report")
	fmt.Println("  quotes                        list customers with live reservations")
	fmt.Println("  quote <customer name>         export a quotation document")
	fmt.Println("  lowstock                      products at or below the low-stock threshold")
	fmt.Println("  help, exit")
}
