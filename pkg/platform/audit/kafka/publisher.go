// Package kafka publishes audit events to a Kafka topic.
//
// Production is asynchronous and fail-open: an evaluation must complete even
// when the broker is degraded, so produce errors are logged and counted, not
// returned to the caller.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"kredi/pkg/platform/audit"
)

type Publisher struct {
	client  *kgo.Client
	topic   string
	logger  *slog.Logger
	metrics *Metrics
}

type Option func(*Publisher)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(p *Publisher) {
		p.metrics = m
	}
}

// New connects to the brokers and ensures the topic exists. Topic creation is
// idempotent so multiple instances can start concurrently.
func New(brokers []string, topic string, opts ...Option) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	p := &Publisher{client: client, topic: topic}
	for _, opt := range opts {
		opt(p)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := p.ensureTopic(ctx); err != nil {
		client.Close()
		return nil, err
	}
	return p, nil
}

func (p *Publisher) ensureTopic(ctx context.Context) error {
	admin := kadm.NewClient(p.client)
	resps, err := admin.CreateTopics(ctx, 1, 1, nil, p.topic)
	if err != nil {
		return fmt.Errorf("create topic %q: %w", p.topic, err)
	}
	for _, resp := range resps {
		if resp.Err != nil && !errors.Is(resp.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %q: %w", p.topic, resp.Err)
		}
	}
	return nil
}

// Emit serializes the event and produces it asynchronously, keyed by borrower
// so per-borrower ordering is preserved within a partition.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	record := &kgo.Record{
		Key:   []byte(event.BorrowerID.String()),
		Value: value,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			if p.metrics != nil {
				p.metrics.IncrementPublishFailures()
			}
			if p.logger != nil {
				p.logger.Warn("audit event publish failed",
					"topic", p.topic,
					"action", event.Action,
					"error", err,
				)
			}
			return
		}
		if p.metrics != nil {
			p.metrics.IncrementPublished()
		}
	})
	return nil
}

// Flush drains pending produces; call before shutdown.
func (p *Publisher) Flush(ctx context.Context) error {
	return p.client.Flush(ctx)
}

func (p *Publisher) Close() {
	p.client.Close()
}
