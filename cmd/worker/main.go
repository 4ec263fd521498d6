package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/meridian-erp/meridian/internal/app"
	"github.com/meridian-erp/meridian/internal/invoicing"
	"github.com/meridian-erp/meridian/internal/invoicing/export"
	jobmetrics "github.com/meridian-erp/meridian/internal/jobs"
	"github.com/meridian-erp/meridian/internal/notifications"
	"github.com/meridian-erp/meridian/internal/platform/db"
	"github.com/meridian-erp/meridian/jobs"
	"github.com/meridian-erp/meridian/report"
)

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
		logger.Error("connect database", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}

	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		logger.Error("create export dir", slog.Any("error", err))
		os.Exit(1)
	}

	metrics := jobmetrics.NewMetrics(nil)

	pdfClient := report.NewClient(cfg.GotenbergURL)
	exporter := export.NewExporter(logger, export.NewHTMLTarget(), pdfClient)
	invoiceService := invoicing.NewService(invoicing.NewRepository(pool))
	notifService := notifications.NewService(logger, notifications.NewRepository(pool), redisClient)

	exportJob := jobs.NewInvoiceExportJob(logger, invoiceService, exporter, notifService, metrics, cfg.ExportDir)
	scanJob := jobs.NewNotificationScanJob(logger, notifService, metrics)

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskInvoiceExport, Handler: exportJob.Handle},
			{Type: jobs.TaskNotificationScan, Handler: scanJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: "@every 30s", Task: jobs.NewNotificationScanTask(), Options: []asynq.Option{asynq.MaxRetry(1)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
