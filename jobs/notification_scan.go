package jobs

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"

	jobmetrics "github.com/meridian-erp/meridian/internal/jobs"
	"github.com/meridian-erp/meridian/internal/notifications"
)

// NotificationScanJob recomputes unread badge counters. The scheduler
// fires it every 30 seconds.
type NotificationScanJob struct {
	logger  *slog.Logger
	service *notifications.Service
	metrics *jobmetrics.Metrics
}

func NewNotificationScanJob(logger *slog.Logger, service *notifications.Service, metrics *jobmetrics.Metrics) *NotificationScanJob {
	return &NotificationScanJob{logger: logger, service: service, metrics: metrics}
}

func (j *NotificationScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	tracker := j.metrics.Track("notification_scan")
	if err := j.service.RefreshUnreadCounts(ctx); err != nil {
		j.logger.Warn("notification scan failed", "error", err)
		return tracker.End(err)
	}
	return tracker.End(nil)
}
