package workers

import (
	"context"
	"time"

	"helping-hands/volunteerhub/internal/constants"
	"helping-hands/volunteerhub/internal/logging"
	"helping-hands/volunteerhub/internal/metrics"
)

// QueueStatsReader reads and bounds stream depth for the monitor.
type QueueStatsReader interface {
	GetQueueLength(ctx context.Context, streamName string) (int64, error)
	GetPendingCount(ctx context.Context, streamName, groupName string) (int64, error)
	TrimStream(ctx context.Context, streamName string, maxLen int64) error
}

// MailQueueMonitor publishes the mail stream length as a gauge and warns
// when messages pile up unacknowledged. Acked entries stay in a stream, so
// it also trims it back to retain entries.
type MailQueueMonitor struct {
	queue      QueueStatsReader
	metrics    *metrics.MetricsRegistry
	warnLength int64
	retain     int64
}

// NewMailQueueMonitor creates a new queue monitor
func NewMailQueueMonitor(queue QueueStatsReader, metricsReg *metrics.MetricsRegistry) *MailQueueMonitor {
	return &MailQueueMonitor{
		queue:      queue,
		metrics:    metricsReg,
		warnLength: 100,
		retain:     10000,
	}
}

// QueueStats is one observation of the mail stream.
type QueueStats struct {
	StreamName   string
	QueueLength  int64
	PendingCount int64
	LastChecked  time.Time
}

// Start checks the stream every interval until ctx is done.
func (m *MailQueueMonitor) Start(ctx context.Context, interval time.Duration) {
	logging.Info("Starting mail queue monitoring", "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Run immediately on start
	_, _ = m.Check(ctx)

	for {
		select {
		case <-ctx.Done():
			logging.Info("Mail queue monitor shutting down")
			return
		case <-ticker.C:
			_, _ = m.Check(ctx)
		}
	}
}

// Check reads the current stream state and updates the gauge.
func (m *MailQueueMonitor) Check(ctx context.Context) (QueueStats, error) {
	stats := QueueStats{StreamName: constants.MailStream, LastChecked: time.Now().UTC()}

	length, err := m.queue.GetQueueLength(ctx, constants.MailStream)
	if err != nil {
		logging.Warn("Reading mail queue length failed", "error", err)
		return stats, err
	}
	stats.QueueLength = length
	if m.metrics != nil {
		m.metrics.MailQueueLength.Set(float64(length))
	}

	pending, err := m.queue.GetPendingCount(ctx, constants.MailStream, constants.MailConsumerGroup)
	if err != nil {
		logging.Warn("Reading mail pending count failed", "error", err)
		return stats, err
	}
	stats.PendingCount = pending

	if pending >= m.warnLength {
		logging.Warn("Mail queue backlog", "length", length, "pending", pending)
	}

	// Never trim into unacknowledged entries.
	if keep := max(m.retain, pending); length > keep {
		if err := m.queue.TrimStream(ctx, constants.MailStream, keep); err != nil {
			logging.Warn("Trimming mail stream failed", "error", err)
			return stats, err
		}
	}
	return stats, nil
}
