package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"newsdesk/internal/audit/metrics"
)

// DefaultTopic is the Kafka topic audit entries are mirrored to.
const DefaultTopic = "newsdesk.audit"

// KafkaPublisher mirrors audit entries to Kafka so downstream consumers
// (SIEM, analytics) get the trail without reading our database. Produces are
// asynchronous; delivery failures are logged, never retried here, because
// the Postgres trail remains the source of truth.
type KafkaPublisher struct {
	client  *kgo.Client
	topic   string
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type KafkaOption func(*KafkaPublisher)

func WithKafkaLogger(logger *slog.Logger) KafkaOption {
	return func(p *KafkaPublisher) { p.logger = logger }
}

func WithKafkaTopic(topic string) KafkaOption {
	return func(p *KafkaPublisher) { p.topic = topic }
}

func WithKafkaMetrics(m *metrics.Metrics) KafkaOption {
	return func(p *KafkaPublisher) { p.metrics = m }
}

// NewKafkaPublisher connects to the given brokers and ensures the audit
// topic exists.
func NewKafkaPublisher(ctx context.Context, brokers []string, opts ...KafkaOption) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, err
	}

	p := &KafkaPublisher{
		client: client,
		topic:  DefaultTopic,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.ensureTopic(ctx); err != nil {
		client.Close()
		return nil, err
	}
	return p, nil
}

func (p *KafkaPublisher) ensureTopic(ctx context.Context) error {
	adm := kadm.NewClient(p.client)
	resp, err := adm.CreateTopics(ctx, 3, 1, nil, p.topic)
	if err != nil {
		return err
	}
	for _, res := range resp {
		if res.Err != nil {
			// Already-exists is the normal case after the first boot.
			p.logger.DebugContext(ctx, "audit topic creation response",
				"topic", res.Topic, "error", res.Err)
		}
	}
	return nil
}

// Publish produces the entry asynchronously, keyed by target ID so one
// entity's history stays ordered within a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, entry Entry) {
	value, err := json.Marshal(entry)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to encode audit entry", "error", err)
		return
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(entry.TargetID),
		Value: value,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.logger.Error("failed to publish audit entry",
				"action", entry.Action, "target_id", entry.TargetID, "error", err)
		}
	})
	if p.metrics != nil {
		p.metrics.IncrementPublished()
	}
}

// Close flushes buffered produces and releases the client.
func (p *KafkaPublisher) Close(ctx context.Context) error {
	if err := p.client.Flush(ctx); err != nil {
		return err
	}
	p.client.Close()
	return nil
}
