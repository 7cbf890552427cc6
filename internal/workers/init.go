package workers

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/metrics"
	"helping-hands/volunteerhub/internal/notifications"
)

const (
	mailWorkers     = 2
	monitorInterval = 30 * time.Second
)

// Run starts the mail worker and monitor on g. Both stop when ctx is done.
func Run(ctx context.Context, g *errgroup.Group, queue *common.RedisQueueService, mailer notifications.Mailer, metricsReg *metrics.MetricsRegistry) {
	worker := NewMailQueueWorker("mail_queue", queue, mailer, metricsReg)
	monitor := NewMailQueueMonitor(queue, metricsReg)

	g.Go(func() error {
		return worker.Start(ctx, mailWorkers)
	})
	g.Go(func() error {
		monitor.Start(ctx, monitorInterval)
		return nil
	})
}
