package events

import (
	"context"
	"encoding/json"
	"loanlink/loan_marketplace/configs"
	"loanlink/loan_marketplace/internal/pkg/logger"
	"loanlink/loan_marketplace/internal/pkg/models"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

const publishRetries = 3

// Producer publishes application lifecycle events keyed by application id so
// consumers see one application's events in order.
type Producer struct {
	producer *kafka.Producer
	topic    string
}

func NewKafkaProducer(broker, topic string) (*Producer, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":  broker,
		"security.protocol":  configs.KAFKA_SECURITY_PROTOCOL,
		"sasl.mechanisms":    configs.KAFKA_SASL_MECHANISM,
		"sasl.username":      configs.KAFKA_SASL_USERNAME,
		"sasl.password":      configs.KAFKA_SASL_PASSWORD,
		"session.timeout.ms": configs.KAFKA_SESSION_TIMEOUT_MS,
		"client.id":          configs.KAFKA_CLIENT_ID,
		"log_level":          0,
	})
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: p,
		topic:    topic,
	}, nil
}

// Publish marshals the event and produces it with a short backoff retry. A
// nil Producer drops the event silently so the API still serves when Kafka
// was unreachable at startup.
func (p *Producer) Publish(ctx context.Context, event models.ApplicationEvent) error {
	if p == nil {
		return nil
	}

	value, err := json.Marshal(event)
	if err != nil {
		logger.Error(ctx, "Failed to marshal application event: %v", err)
		return err
	}

	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            []byte(event.ApplicationID),
		Value:          value,
	}

	var lastErr error
	for attempt := 0; attempt < publishRetries; attempt++ {
		lastErr = p.producer.Produce(msg, nil)
		if lastErr == nil {
			logger.Debug(ctx, "Published %s for application %s", event.Event, event.ApplicationID)
			return nil
		}
		logger.Error(ctx, "Failed to publish %s on attempt %d: %v", event.Event, attempt+1, lastErr)
		time.Sleep(time.Second * time.Duration(attempt+1))
	}
	return lastErr
}

func (p *Producer) Close() {
	if p == nil {
		return
	}
	p.producer.Flush(15 * 1000)
	p.producer.Close()
}
