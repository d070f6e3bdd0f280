package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/roomlens/backend/config"
	httpDelivery "github.com/roomlens/backend/internal/delivery/http"
	"github.com/roomlens/backend/internal/domain"
	"github.com/roomlens/backend/internal/infrastructure/catalog"
	"github.com/roomlens/backend/internal/infrastructure/credits"
	"github.com/roomlens/backend/internal/infrastructure/imagegen"
	"github.com/roomlens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load configuration: %v", err)
	}

	if cfg.Server.Environment == "development" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	logrus.Infof("starting RoomLens backend v1.0.0")
	logrus.Infof("environment: %s", cfg.Server.Environment)
	logrus.Infof("credits store: %s", cfg.Credits.Store)

	// Initialize infrastructure dependencies
	catalogIndex := catalog.NewMemoryIndex()

	var ledger domain.CreditLedger
	switch cfg.Credits.Store {
	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.Credits.SQLitePath), 0o755); err != nil {
			logrus.Fatalf("create credits data directory: %v", err)
		}
		sqliteLedger, err := credits.OpenSQLite(cfg.Credits.SQLitePath, cfg.Credits.InitialBalance)
		if err != nil {
			logrus.Fatalf("open credit ledger: %v", err)
		}
		defer sqliteLedger.Close()
		ledger = sqliteLedger
	default:
		ledger = credits.NewMemoryLedger(cfg.Credits.InitialBalance)
	}

	provider := imagegen.NewClient(imagegen.Config{
		APIKey:  cfg.Provider.APIKey,
		BaseURL: cfg.Provider.BaseURL,
		Model:   cfg.Provider.Model,
		Timeout: cfg.Provider.Timeout,
	})
	if cfg.Server.Environment == "development" {
		provider.SetDebug(true)
	}
	if provider.Enabled() {
		logrus.Infof("image provider configured: %s (model: %s)", cfg.Provider.BaseURL, cfg.Provider.Model)
	} else {
		logrus.Warn("image provider API key not configured - serving recommendations only")
	}

	// Initialize usecase layer
	recommender := usecase.NewRecommendationService(catalogIndex, usecase.RecommendationConfig{
		EnableDebugLogging: cfg.Server.Environment == "development",
	})
	restyleService := usecase.NewRestyleService(recommender, ledger, provider)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(restyleService, recommender, ledger)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logrus.Infof("server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
