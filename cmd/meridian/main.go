package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/meridian-erp/meridian/internal/app"
	"github.com/meridian-erp/meridian/internal/auth"
	"github.com/meridian-erp/meridian/internal/inventory"
	"github.com/meridian-erp/meridian/internal/invoicing"
	"github.com/meridian-erp/meridian/internal/invoicing/export"
	"github.com/meridian-erp/meridian/internal/masterdata/products"
	"github.com/meridian-erp/meridian/internal/masterdata/suppliers"
	"github.com/meridian-erp/meridian/internal/masterdata/warehouses"
	"github.com/meridian-erp/meridian/internal/notifications"
	"github.com/meridian-erp/meridian/internal/observability"
	"github.com/meridian-erp/meridian/internal/platform/db"
	"github.com/meridian-erp/meridian/internal/prefs"
	"github.com/meridian-erp/meridian/internal/rbac"
	"github.com/meridian-erp/meridian/internal/roles"
	"github.com/meridian-erp/meridian/internal/sales/customers"
	"github.com/meridian-erp/meridian/internal/sales/orders"
	"github.com/meridian-erp/meridian/internal/shared"
	"github.com/meridian-erp/meridian/internal/users"
	"github.com/meridian-erp/meridian/jobs"
	"github.com/meridian-erp/meridian/report"
)

type exportQueue struct {
	client *jobs.Client
}

func (q exportQueue) EnqueueExport(ctx context.Context, invoiceID, requestedBy int64) error {
	_, err := q.client.EnqueueInvoiceExport(ctx, jobs.InvoiceExportPayload{
		InvoiceID:   invoiceID,
		RequestedBy: requestedBy,
	})
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN, cfg.PGMaxConns)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, cfg.SessionTTL)
	metrics := observability.NewMetrics()

	guard := rbac.Middleware{
		Service: rbac.NewService(pool),
		Logger:  logger,
	}

	pdfClient := report.NewClient(cfg.GotenbergURL)
	if err := pdfClient.Ping(ctx); err != nil {
		logger.Warn("gotenberg ping", slog.Any("error", err))
	}
	exporter := export.NewExporter(logger, export.NewHTMLTarget(), pdfClient)

	notifService := notifications.NewService(logger, notifications.NewRepository(pool), redisClient)

	suppliersHandler := suppliers.NewHandler(logger, suppliers.NewService(suppliers.NewRepository(pool)))
	warehousesHandler := warehouses.NewHandler(logger, warehouses.NewService(warehouses.NewRepository(pool)))
	productsHandler := products.NewHandler(logger, products.NewService(products.NewRepository(pool)))
	customersHandler := customers.NewHandler(logger, customers.NewService(customers.NewRepository(pool)))
	ordersHandler := orders.NewHandler(logger, orders.NewService(orders.NewRepository(pool)))
	inventoryHandler := inventory.NewHandler(logger, inventory.NewService(inventory.NewRepository(pool)))
	jobsClient, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Error("init jobs client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := jobsClient.Close(); err != nil {
			logger.Warn("jobs client close", slog.Any("error", err))
		}
	}()

	invoicesHandler := invoicing.NewHandler(logger, invoicing.NewService(invoicing.NewRepository(pool)), exporter, exportQueue{client: jobsClient})
	usersHandler := users.NewHandler(logger, users.NewService(users.NewRepository(pool)))
	rolesHandler := roles.NewHandler(logger, roles.NewService(roles.NewRepository(pool)))
	authHandler := auth.NewHandler(logger, auth.NewService(auth.NewRepository(pool), sessionManager))
	notifHandler := notifications.NewHandler(logger, notifService)

	prefsStore := prefs.NewStore(redisClient)
	prefsHandler := prefs.NewHandler(logger, prefsStore, map[string]prefs.ResourceColumns{
		"suppliers":  {Columns: suppliers.Columns(), Defaults: suppliers.DefaultColumns(), Max: suppliers.MaxColumns},
		"warehouses": {Columns: warehouses.Columns(), Defaults: warehouses.DefaultColumns(), Max: warehouses.MaxColumns},
		"products":   {Columns: products.Columns(), Defaults: products.DefaultColumns(), Max: products.MaxColumns},
		"customers":  {Columns: customers.Columns(), Defaults: customers.DefaultColumns(), Max: customers.MaxColumns},
		"orders":     {Columns: orders.Columns(), Defaults: orders.DefaultColumns(), Max: orders.MaxColumns},
		"inventory":  {Columns: inventory.Columns(), Defaults: inventory.DefaultColumns(), Max: inventory.MaxColumns},
		"invoices":   {Columns: invoicing.Columns(), Defaults: invoicing.DefaultColumns(), Max: invoicing.MaxColumns},
	})

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobsHandler := jobs.NewHandler(inspector, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		SessionManager: sessionManager,
		RBACMiddleware: guard,
		Metrics:        metrics,

		AuthHandler:          authHandler,
		SuppliersHandler:     suppliersHandler,
		WarehousesHandler:    warehousesHandler,
		ProductsHandler:      productsHandler,
		CustomersHandler:     customersHandler,
		OrdersHandler:        ordersHandler,
		InventoryHandler:     inventoryHandler,
		InvoicesHandler:      invoicesHandler,
		UsersHandler:         usersHandler,
		RolesHandler:         rolesHandler,
		NotificationsHandler: notifHandler,
		PrefsHandler:         prefsHandler,
		JobsHandler:          jobsHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", cfg.AppAddr), slog.String("env", cfg.AppEnv))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.AppRequestTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", slog.Any("error", err))
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}
}
