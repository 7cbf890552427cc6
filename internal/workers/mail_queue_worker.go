package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/constants"
	"helping-hands/volunteerhub/internal/logging"
	"helping-hands/volunteerhub/internal/metrics"
	"helping-hands/volunteerhub/internal/notifications"
)

// MailQueue is the part of common.RedisQueueService the worker consumes.
type MailQueue interface {
	CreateConsumerGroup(ctx context.Context, streamName, groupName string) error
	Dequeue(ctx context.Context, streamName, groupName, consumerName string, blockTime time.Duration) (*common.QueueMessage, error)
	Ack(ctx context.Context, streamName, groupName, messageID string) error
	ClaimStale(ctx context.Context, streamName, groupName, consumerName string, minIdleTime time.Duration) ([]*common.QueueMessage, error)
}

// MailQueueWorker delivers mails queued by notifications.RedisOutbox.
type MailQueueWorker struct {
	workerID string
	queue    MailQueue
	mailer   notifications.Mailer
	metrics  *metrics.MetricsRegistry

	stream        string
	group         string
	blockTime     time.Duration
	claimInterval time.Duration
	minIdle       time.Duration
	backoff       time.Duration
}

// NewMailQueueWorker creates a new mail queue worker
func NewMailQueueWorker(workerID string, queue MailQueue, mailer notifications.Mailer, metricsReg *metrics.MetricsRegistry) *MailQueueWorker {
	return &MailQueueWorker{
		workerID:      workerID,
		queue:         queue,
		mailer:        mailer,
		metrics:       metricsReg,
		stream:        constants.MailStream,
		group:         constants.MailConsumerGroup,
		blockTime:     5 * time.Second,
		claimInterval: 2 * time.Minute,
		minIdle:       5 * time.Minute,
		backoff:       time.Second,
	}
}

// Start runs numWorkers consumers plus a stale-message claimer until ctx is done.
func (w *MailQueueWorker) Start(ctx context.Context, numWorkers int) error {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	logging.Info("Starting mail queue workers", "worker_id", w.workerID, "count", numWorkers, "stream", w.stream)

	if err := w.queue.CreateConsumerGroup(ctx, w.stream, w.group); err != nil {
		return fmt.Errorf("create consumer group %s: %w", w.group, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		workerName := fmt.Sprintf("%s-worker-%d", w.workerID, i)
		go func() {
			defer wg.Done()
			w.processQueue(ctx, workerName)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		w.claimStaleMessages(ctx)
	}()

	wg.Wait()
	logging.Info("All mail queue workers stopped", "worker_id", w.workerID)
	return nil
}

func (w *MailQueueWorker) processQueue(ctx context.Context, workerName string) {
	processedCount := 0
	errorCount := 0

	for {
		select {
		case <-ctx.Done():
			logging.Info("Mail worker shutting down", "worker", workerName, "processed", processedCount, "errors", errorCount)
			return
		default:
		}

		msg, err := w.queue.Dequeue(ctx, w.stream, w.group, workerName, w.blockTime)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			logging.Warn("Mail dequeue failed", "worker", workerName, "error", err)
			sleepCtx(ctx, w.backoff)
			continue
		}
		if msg == nil {
			continue
		}

		if err := w.handle(ctx, msg); err != nil {
			errorCount++
		} else {
			processedCount++
		}
	}
}

// handle delivers one message and acknowledges it. Failed sends are acked
// too: the error is logged and counted, never retried.
func (w *MailQueueWorker) handle(ctx context.Context, qm *common.QueueMessage) error {
	var msg notifications.Message
	err := json.Unmarshal(qm.Data, &msg)
	if err != nil {
		logging.Error("Dropping undecodable mail", "message_id", qm.ID, "error", err)
	} else if err = w.mailer.Send(ctx, msg); err != nil {
		logging.Error("Mail delivery failed", "message_id", qm.ID, "kind", msg.Kind, "to", msg.To, "error", err)
		w.count(msg.Kind, "failed")
	} else {
		w.count(msg.Kind, "sent")
	}

	if ackErr := w.queue.Ack(ctx, w.stream, w.group, qm.ID); ackErr != nil {
		logging.Warn("Mail ack failed", "message_id", qm.ID, "error", ackErr)
	}
	return err
}

func (w *MailQueueWorker) claimStaleMessages(ctx context.Context) {
	ticker := time.NewTicker(w.claimInterval)
	defer ticker.Stop()

	claimer := w.workerID + "-claimer"
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.claimOnce(ctx, claimer)
		}
	}
}

func (w *MailQueueWorker) claimOnce(ctx context.Context, claimer string) {
	msgs, err := w.queue.ClaimStale(ctx, w.stream, w.group, claimer, w.minIdle)
	if err != nil {
		logging.Warn("Claiming stale mail failed", "error", err)
		return
	}
	if len(msgs) > 0 {
		logging.Info("Claimed stale mail", "count", len(msgs))
	}
	for _, m := range msgs {
		_ = w.handle(ctx, m)
	}
}

func (w *MailQueueWorker) count(kind constants.MailKind, result string) {
	if w.metrics == nil {
		return
	}
	w.metrics.MailTotal.WithLabelValues(string(kind), result).Inc()
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
