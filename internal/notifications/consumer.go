package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/IBM/sarama"

	"eventbuka/internal/shared/config"
	"eventbuka/pkg/logger"
)

// Consumer runs the email worker pool behind a Kafka consumer group.
type Consumer interface {
	Start(ctx context.Context, numWorkers int) error
	Stop() error
}

type kafkaConsumer struct {
	consumerGroup sarama.ConsumerGroup
	topics        []string
	sender        EmailSender
	deadLetter    Producer
	log           *logger.Logger
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

func NewKafkaConsumer(cfg config.KafkaConfig, sender EmailSender, deadLetter Producer, log *logger.Logger) (Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = 30 * time.Second
	saramaConfig.Consumer.Group.Heartbeat.Interval = 3 * time.Second
	saramaConfig.Consumer.MaxProcessingTime = 5 * time.Minute
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &kafkaConsumer{
		consumerGroup: consumerGroup,
		topics:        []string{cfg.NotificationTopic},
		sender:        sender,
		deadLetter:    deadLetter,
		log:           log,
	}, nil
}

func (c *kafkaConsumer) Start(ctx context.Context, numWorkers int) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.consumerGroup.Errors() {
			c.log.Error("notification consumer group error", "error", err)
		}
	}()

	for i := 0; i < numWorkers; i++ {
		c.wg.Add(1)
		go func(workerID int) {
			defer c.wg.Done()
			c.runWorker(ctx, workerID)
		}(i)
	}

	c.log.Info("notification consumer workers started", "workers", numWorkers, "topics", c.topics)
	return nil
}

func (c *kafkaConsumer) runWorker(ctx context.Context, workerID int) {
	handler := &workerHandler{
		workerID:   workerID,
		sender:     c.sender,
		deadLetter: c.deadLetter,
		log:        c.log,
	}

	for {
		select {
		case <-ctx.Done():
			c.log.Debug("notification worker shutting down", "worker", workerID)
			return
		default:
			if err := c.consumerGroup.Consume(ctx, c.topics, handler); err != nil {
				c.log.Error("notification worker consume failed", "worker", workerID, "error", err)
				time.Sleep(time.Second)
			}
		}
	}
}

func (c *kafkaConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()

	if err := c.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	c.log.Info("notification consumer stopped")
	return nil
}

type workerHandler struct {
	workerID   int
	sender     EmailSender
	deadLetter Producer
	log        *logger.Logger
}

func (h *workerHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *workerHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *workerHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}
			h.processMessage(session.Context(), message)
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *workerHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	var notification EmailNotification
	if err := json.Unmarshal(message.Value, &notification); err != nil {
		h.log.Error("failed to decode notification, dropping",
			"worker", h.workerID,
			"topic", message.Topic,
			"offset", message.Offset,
			"error", err,
		)
		return
	}

	if err := h.sendWithRetry(ctx, &notification); err != nil {
		notification.MarkFailed(err)
		h.log.Error("notification delivery exhausted retries",
			"worker", h.workerID,
			"notification_id", notification.ID.String(),
			"recipient", notification.RecipientEmail,
			"error", err,
		)
		if h.deadLetter != nil {
			if dlqErr := h.deadLetter.PublishToDeadLetter(ctx, &notification); dlqErr != nil {
				h.log.Error("failed to park notification in dead letter topic", "error", dlqErr)
			}
		}
		return
	}

	notification.MarkSent()
	h.log.Debug("notification delivered",
		"worker", h.workerID,
		"type", string(notification.Type),
		"recipient", notification.RecipientEmail,
	)
}

func (h *workerHandler) sendWithRetry(ctx context.Context, notification *EmailNotification) error {
	backoff := time.Second

	for {
		err := h.sender.Send(ctx, notification)
		if err == nil {
			return nil
		}

		notification.IncrementRetry()
		if !notification.ShouldRetry() {
			return err
		}

		// exponential backoff between attempts
		delay := backoff * time.Duration(1<<(notification.RetryCount-1))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
