package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"eventbuka/internal/shared/config"
	"eventbuka/pkg/logger"
)

// Producer publishes email notifications onto the Kafka pipeline.
type Producer interface {
	Publish(ctx context.Context, notification *EmailNotification) error
	PublishToDeadLetter(ctx context.Context, notification *EmailNotification) error
	Close() error
}

type kafkaProducer struct {
	producer        sarama.SyncProducer
	topic           string
	deadLetterTopic string
	log             *logger.Logger
}

// NewKafkaProducer connects a synchronous producer with idempotent
// writes and hash partitioning on the recipient id.
func NewKafkaProducer(cfg config.KafkaConfig, log *logger.Logger) (Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Info("kafka notification producer connected", "brokers", cfg.Brokers, "topic", cfg.NotificationTopic)

	return &kafkaProducer{
		producer:        producer,
		topic:           cfg.NotificationTopic,
		deadLetterTopic: cfg.DeadLetterTopic,
		log:             log,
	}, nil
}

func (p *kafkaProducer) Publish(ctx context.Context, notification *EmailNotification) error {
	notification.Status = NotificationStatusQueued
	notification.UpdatedAt = time.Now()
	return p.send(ctx, p.topic, notification)
}

// PublishToDeadLetter parks a notification that has exhausted its
// retries so it can be replayed by hand.
func (p *kafkaProducer) PublishToDeadLetter(ctx context.Context, notification *EmailNotification) error {
	notification.Status = NotificationStatusDead
	notification.UpdatedAt = time.Now()
	return p.send(ctx, p.deadLetterTopic, notification)
}

func (p *kafkaProducer) send(_ context.Context, topic string, notification *EmailNotification) error {
	messageBytes, err := notification.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     topic,
		Key:       sarama.StringEncoder(notification.GetPartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Headers:   buildHeaders(notification),
		Timestamp: notification.CreatedAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		notification.MarkFailed(err)
		return fmt.Errorf("failed to send notification to Kafka: %w", err)
	}

	p.log.Debug("notification published",
		"topic", topic,
		"partition", partition,
		"offset", offset,
		"type", string(notification.Type),
		"recipient", notification.RecipientEmail,
	)
	return nil
}

func buildHeaders(notification *EmailNotification) []sarama.RecordHeader {
	headers := []sarama.RecordHeader{
		{Key: []byte("notification_id"), Value: []byte(notification.ID.String())},
		{Key: []byte("notification_type"), Value: []byte(notification.Type)},
		{Key: []byte("recipient_id"), Value: []byte(notification.RecipientID.String())},
		{Key: []byte("producer"), Value: []byte("eventbuka-notifications")},
		{Key: []byte("created_at"), Value: []byte(notification.CreatedAt.Format(time.RFC3339))},
	}

	if notification.EventID != nil {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte("event_id"),
			Value: []byte(notification.EventID.String()),
		})
	}
	if notification.BookingID != nil {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte("booking_id"),
			Value: []byte(notification.BookingID.String()),
		})
	}

	return headers
}

func (p *kafkaProducer) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
		p.log.Info("kafka notification producer closed")
	}
	return nil
}
