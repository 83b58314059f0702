package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"sales-portal/internal/adapters/cli"
	"sales-portal/internal/adapters/repl"
	"sales-portal/internal/app"
	"sales-portal/internal/auth"
	"sales-portal/internal/core"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ledger := core.NewLedger()
	if cfg.SeedDemoData {
		app.SeedDemoCatalog(ledger)
	}

	sessions := auth.NewService(cfg.SessionSecret, cfg.SessionTTL)
	svc := app.NewAppService(ledger, cfg, sessions)

	ctx := context.Background()
	if len(os.Args) > 1 {
		cli.Run(ctx, svc, os.Args[1:])
		return
	}
	repl.Run(ctx, svc, bufio.NewReader(os.Stdin))
}
