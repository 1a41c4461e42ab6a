package main

import (
	"context"
	"net/http"
	"os"
	"sync"

	"github.com/angelmondragon/shopflow-backend/api/routes"
	"github.com/angelmondragon/shopflow-backend/internal/cart"
	"github.com/angelmondragon/shopflow-backend/internal/catalog"
	"github.com/angelmondragon/shopflow-backend/internal/orders"
	"github.com/angelmondragon/shopflow-backend/internal/search"
	"github.com/angelmondragon/shopflow-backend/internal/session"
	"github.com/angelmondragon/shopflow-backend/pkg/checkout"
	"github.com/angelmondragon/shopflow-backend/pkg/config"
	"github.com/angelmondragon/shopflow-backend/pkg/instance"
	"github.com/angelmondragon/shopflow-backend/pkg/logger"
	"github.com/angelmondragon/shopflow-backend/pkg/metrics"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	products, categories, err := catalog.LoadSeed(cfg.Engine.CatalogSeedPath)
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog seed", err)
		os.Exit(1)
	}

	// All three stores share one lock so checkout can commit across
	// them as a single observable transition.
	storeLock := new(sync.Mutex)

	catalogStore, err := catalog.NewStoreWithLock(products, categories, storeLock)
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog store", err)
		os.Exit(1)
	}

	cartStore := cart.NewStoreWithLock(storeLock)
	sess := session.NewWithLock(storeLock)

	searchDeb, err := search.NewDebouncer(cfg.Engine.SearchDebounce, func(query string) {
		catalogStore.SetSearchQuery(query)
	})
	if err != nil {
		logg.Error(context.Background(), "failed to build search debouncer", err)
		os.Exit(1)
	}
	defer searchDeb.Stop()

	taxRate, err := cfg.Engine.TaxRateDecimal()
	if err != nil {
		logg.Error(context.Background(), "failed to parse tax rate", err)
		os.Exit(1)
	}

	ledger, err := orders.NewLedger(storeLock, cartStore, catalogStore, sess, checkout.NewCalculator(taxRate))
	if err != nil {
		logg.Error(context.Background(), "failed to build order ledger", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	em := metrics.NewEngineMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, registry, em, catalogStore, searchDeb, cartStore, sess, ledger),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
