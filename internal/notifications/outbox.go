package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"helping-hands/volunteerhub/internal/common"
	"helping-hands/volunteerhub/internal/constants"
	"helping-hands/volunteerhub/internal/logging"
	"helping-hands/volunteerhub/internal/metrics"
)

// Outbox accepts messages for delivery. Callers enqueue after their transaction
// commits; an Enqueue error means the message will not be delivered.
type Outbox interface {
	Enqueue(ctx context.Context, msg Message) error
}

// Delivery records the outcome of one synchronous send.
type Delivery struct {
	Message Message
	Err     error
	At      time.Time
}

// SyncOutbox sends inline and keeps a bounded history of outcomes.
type SyncOutbox struct {
	mailer  Mailer
	metrics *metrics.MetricsRegistry
	limit   int

	mu         sync.Mutex
	deliveries []Delivery
}

var _ Outbox = (*SyncOutbox)(nil)

// NewSyncOutbox wraps a mailer. m may be nil.
func NewSyncOutbox(mailer Mailer, m *metrics.MetricsRegistry) *SyncOutbox {
	return &SyncOutbox{mailer: mailer, metrics: m, limit: 100}
}

func (o *SyncOutbox) Enqueue(ctx context.Context, msg Message) error {
	err := o.mailer.Send(ctx, msg)
	o.record(Delivery{Message: msg, Err: err, At: time.Now().UTC()})
	if err != nil {
		countMail(o.metrics, msg.Kind, "failed")
		return fmt.Errorf("deliver %s mail: %w", msg.Kind, err)
	}
	countMail(o.metrics, msg.Kind, "sent")
	return nil
}

// Deliveries returns a copy of the recorded outcomes, oldest first.
func (o *SyncOutbox) Deliveries() []Delivery {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Delivery, len(o.deliveries))
	copy(out, o.deliveries)
	return out
}

// Failures returns the recorded outcomes that carry an error.
func (o *SyncOutbox) Failures() []Delivery {
	var failed []Delivery
	for _, d := range o.Deliveries() {
		if d.Err != nil {
			failed = append(failed, d)
		}
	}
	return failed
}

func (o *SyncOutbox) record(d Delivery) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.deliveries = append(o.deliveries, d)
	if len(o.deliveries) > o.limit {
		o.deliveries = o.deliveries[len(o.deliveries)-o.limit:]
	}
}

// Queue is the subset of the Redis stream queue the outbox needs.
type Queue interface {
	Enqueue(ctx context.Context, streamName string, payload any) error
}

// RedisOutbox appends messages to a Redis stream consumed by the mail worker.
type RedisOutbox struct {
	queue   Queue
	stream  string
	metrics *metrics.MetricsRegistry
}

var _ Outbox = (*RedisOutbox)(nil)

var _ Queue = (*common.RedisQueueService)(nil)

// NewRedisOutbox writes to constants.MailStream. m may be nil.
func NewRedisOutbox(queue Queue, m *metrics.MetricsRegistry) *RedisOutbox {
	return &RedisOutbox{queue: queue, stream: constants.MailStream, metrics: m}
}

func (o *RedisOutbox) Enqueue(ctx context.Context, msg Message) error {
	if err := o.queue.Enqueue(ctx, o.stream, msg); err != nil {
		countMail(o.metrics, msg.Kind, "failed")
		return fmt.Errorf("queue %s mail: %w", msg.Kind, err)
	}
	countMail(o.metrics, msg.Kind, "queued")
	logging.Debug("Mail queued", "kind", msg.Kind, "to", msg.To)
	return nil
}

func countMail(m *metrics.MetricsRegistry, kind constants.MailKind, result string) {
	if m == nil {
		return
	}
	m.MailTotal.WithLabelValues(string(kind), result).Inc()
}
