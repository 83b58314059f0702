package app

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration, read from PORTAL_-prefixed environment
// variables. A .env file is loaded by main before this runs.
type Config struct {
	// LowStockThreshold drives the low-stock report: products whose available
	// stock is at or below it are flagged.
	LowStockThreshold int `envconfig:"LOW_STOCK_THRESHOLD" default:"5"`

	// ExportDir is where quotation documents are written.
	ExportDir string `envconfig:"EXPORT_DIR" default:"."`

	// PDFEndpoint is an optional Gotenberg URL. When set, quotations are
	// exported as PDF; otherwise the rendered HTML is written directly.
	PDFEndpoint string `envconfig:"PDF_ENDPOINT"`

	SessionSecret string        `envconfig:"SESSION_SECRET" default:"sales-portal-dev"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"12h"`

	// SeedDemoData fills the ledger with the demo catalog on startup. State is
	// in-memory only, so an unseeded portal starts empty every run.
	SeedDemoData bool `envconfig:"SEED_DEMO_DATA" default:"true"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("portal", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}
