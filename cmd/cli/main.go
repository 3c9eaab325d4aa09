package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/amarorib/boutique-inventory/config"
	"github.com/amarorib/boutique-inventory/internal/ledger"
	"github.com/amarorib/boutique-inventory/internal/ledger/dto"
	ledgerUC "github.com/amarorib/boutique-inventory/internal/ledger/usecase"
	"github.com/amarorib/boutique-inventory/internal/model"
	"github.com/amarorib/boutique-inventory/internal/report"
	"github.com/amarorib/boutique-inventory/internal/shell"
)

func main() {
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	logger, err := buildLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Low-stock alerts surface on the terminal in addition to the log.
	uc := ledgerUC.NewLedgerUseCase(logger, func(p model.Product) {
		fmt.Printf("ALERT: low stock for %s (quantity: %d)\n", p.Name, p.Quantity)
	})

	if cfg.Seed.DemoData {
		seedDemoProducts(uc)
		logger.Info("demo products loaded")
	}

	exporter := report.NewFileExporter(cfg.Report.Dir)
	sh := shell.New(uc, exporter, os.Stdin, os.Stdout, logger)

	logger.Info("inventory shell starting", zap.String("env", cfg.App.Env))
	sh.Run()
	logger.Info("inventory shell stopped")
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.App.Env == "development" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	if lvl, err := zapcore.ParseLevel(cfg.Logger.Level); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	zapCfg.Encoding = cfg.Logger.Encoding
	zapCfg.DisableCaller = cfg.Logger.DisableCaller
	zapCfg.DisableStacktrace = cfg.Logger.DisableStacktrace
	return zapCfg.Build()
}

func seedDemoProducts(uc ledger.UseCase) {
	demo := []dto.CreateProductInput{
		{Name: "Camiseta Básica", Size: "M", Color: "Preta", Quantity: 15, Price: decimal.NewFromFloat(49.90)},
		{Name: "Camiseta Básica", Size: "G", Color: "Preta", Quantity: 10, Price: decimal.NewFromFloat(49.90)},
		{Name: "Camiseta Básica", Size: "M", Color: "Branca", Quantity: 12, Price: decimal.NewFromFloat(49.90)},
		{Name: "Calça Jeans", Size: "40", Color: "Azul", Quantity: 8, Price: decimal.NewFromFloat(129.90)},
		{Name: "Calça Jeans", Size: "42", Color: "Azul", Quantity: 6, Price: decimal.NewFromFloat(129.90)},
		{Name: "Vestido Floral", Size: "P", Color: "Colorido", Quantity: 5, Price: decimal.NewFromFloat(89.90)},
		{Name: "Vestido Floral", Size: "M", Color: "Colorido", Quantity: 3, Price: decimal.NewFromFloat(89.90)},
		{Name: "Bermuda Tactel", Size: "M", Color: "Preta", Quantity: 20, Price: decimal.NewFromFloat(59.90)},
	}
	for i := range demo {
		uc.CreateProduct(&demo[i])
	}
}
