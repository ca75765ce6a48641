package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boutique/internal/advisory"
	"boutique/internal/billing"
	"boutique/internal/catalog"
	"boutique/internal/commons"
	"boutique/internal/infrastructure/logger"
	"boutique/internal/infrastructure/metrics"
	"boutique/internal/infrastructure/mysql"
	"boutique/internal/ledger"
	ledgerrepo "boutique/internal/ledger/repository"
	"boutique/internal/reporting"
	"boutique/internal/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, zap.String("store", cfg.Store.Code))
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	storeMetrics := metrics.NewStoreMetrics(registry)

	var orderRepo ledger.Repository
	if cfg.Database.Enabled {
		var db *sql.DB
		db, err = mysql.NewConnection(cfg.Database)
		if err != nil {
			zapLogger.Fatal("connecting to database", zap.Error(err))
		}
		defer db.Close()
		if err := mysql.EnsureSchema(context.Background(), db); err != nil {
			zapLogger.Fatal("creating schema", zap.Error(err))
		}
		zapLogger.Info("database connected")
		orderRepo = ledgerrepo.NewMySQLOrderRepository(db)
	} else {
		zapLogger.Info("database disabled, orders are kept in memory")
	}

	orders := ledger.New(orderRepo, zapLogger)
	if err := orders.Load(context.Background()); err != nil {
		zapLogger.Fatal("loading orders", zap.Error(err))
	}

	catalogSvc, catalogCtrl, err := catalog.NewModule(cfg.Store, zapLogger)
	if err != nil {
		zapLogger.Fatal("loading catalog", zap.Error(err))
	}

	var provider advisory.Provider = advisory.DisabledProvider{}
	if cfg.Advisory.Enabled && cfg.Advisory.APIKey != "" {
		gemini, err := advisory.NewGeminiProvider(context.Background(), cfg.Advisory, nil)
		if err != nil {
			zapLogger.Fatal("creating gemini provider", zap.Error(err))
		}
		provider = gemini
		zapLogger.Info("styling advice enabled", zap.String("model", cfg.Advisory.Model))
	}
	advisor := advisory.NewService(provider, zapLogger, storeMetrics)

	_, billingCtrl, err := billing.NewModule(cfg.Store, orders, advisor, catalogSvc, storeMetrics, zapLogger)
	if err != nil {
		zapLogger.Fatal("creating billing session", zap.Error(err))
	}
	reportingCtrl := reporting.NewModule(orders, zapLogger)

	router := server.NewRouter(catalogCtrl, billingCtrl, reportingCtrl, registry, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
