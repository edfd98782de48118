package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/stocksheet/stocksheet/internal/app"
	"github.com/stocksheet/stocksheet/internal/catalog/products"
	"github.com/stocksheet/stocksheet/internal/dashboard"
	"github.com/stocksheet/stocksheet/internal/masterdata/suppliers"
	"github.com/stocksheet/stocksheet/internal/observability"
	"github.com/stocksheet/stocksheet/internal/procurement"
	"github.com/stocksheet/stocksheet/internal/records"
	"github.com/stocksheet/stocksheet/internal/sales"
	"github.com/stocksheet/stocksheet/internal/settings"
	"github.com/stocksheet/stocksheet/internal/sheetdb"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Default().Warn("load .env", slog.Any("error", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	metrics := observability.NewMetrics()

	store := sheetdb.NewStore(cfg.WorkbookPath, logger)
	store.SetObserver(metrics.ObserveSheetOp)
	if !store.Configured() {
		logger.Warn("workbook not found, provisioning on first use",
			slog.String("path", cfg.WorkbookPath))
	}

	settingsService := settings.NewService(store)
	settingsHandler := settings.NewHandler(logger, settingsService)

	productsService := products.NewService(products.NewRepository(store))
	productsHandler := products.NewHandler(logger, productsService, settingsService)

	salesService := sales.NewService(sales.NewRepository(store), productsService, logger)
	salesHandler := sales.NewHandler(logger, salesService)

	purchasesService := procurement.NewService(procurement.NewRepository(store), productsService, logger)
	purchasesHandler := procurement.NewHandler(logger, purchasesService)

	suppliersService := suppliers.NewService(suppliers.NewRepository(store))
	suppliersHandler := suppliers.NewHandler(logger, suppliersService)

	dashboardService := dashboard.NewService(productsService, salesService, purchasesService, settingsService)
	dashboardHandler := dashboard.NewHandler(logger, dashboardService)

	recordsHandler := records.NewHandler(logger, store)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		RecordsHandler:   recordsHandler,
		ProductsHandler:  productsHandler,
		SalesHandler:     salesHandler,
		PurchasesHandler: purchasesHandler,
		SuppliersHandler: suppliersHandler,
		SettingsHandler:  settingsHandler,
		DashboardHandler: dashboardHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
