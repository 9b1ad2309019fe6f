package notifications

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"eventbuka/internal/shared/config"
	"eventbuka/internal/users"
	"eventbuka/pkg/logger"
)

// UserDirectory resolves recipient contact details for outgoing
// notifications.
type UserDirectory interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*users.ProfileResponse, error)
}

// Service publishes booking and voting notifications and runs the
// email worker pool. When Kafka is disabled or unreachable the API
// keeps serving; publishes are logged and dropped.
type Service struct {
	producer  Producer
	consumer  Consumer
	directory UserDirectory
	log       *logger.Logger

	workers int

	mu      sync.Mutex
	running bool
}

// NewService wires the Kafka pipeline. A nil producer (Kafka disabled
// or connection failure at startup) puts the service in degraded mode.
func NewService(cfg config.KafkaConfig, emailCfg config.EmailConfig, directory UserDirectory, log *logger.Logger) (*Service, error) {
	svc := &Service{
		directory: directory,
		log:       log,
		workers:   3,
	}

	if !cfg.Enabled {
		log.Info("kafka disabled, notifications run in degraded mode")
		return svc, nil
	}

	producer, err := NewKafkaProducer(cfg, log)
	if err != nil {
		log.Error("kafka unreachable, notifications run in degraded mode", "error", err)
		return svc, nil
	}
	svc.producer = producer

	sender, err := NewSMTPSender(emailCfg, log)
	if err != nil {
		log.Error("smtp not configured, email worker disabled", "error", err)
		return svc, nil
	}

	consumer, err := NewKafkaConsumer(cfg, sender, producer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification consumer: %w", err)
	}
	svc.consumer = consumer

	return svc, nil
}

// Start launches the email worker pool. No-op in degraded mode.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || s.consumer == nil {
		return nil
	}
	if err := s.consumer.Start(ctx, s.workers); err != nil {
		return err
	}
	s.running = true
	return nil
}

func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	if s.consumer != nil && s.running {
		if err := s.consumer.Stop(); err != nil {
			firstErr = err
		}
		s.running = false
	}
	if s.producer != nil {
		if err := s.producer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// BookingConfirmed implements the booking notifier contract.
func (s *Service) BookingConfirmed(ctx context.Context, userID uuid.UUID, reference string, eventID uuid.UUID, total int64) {
	s.publishBooking(ctx, NotificationTypeBookingConfirmed, userID, reference, eventID, map[string]interface{}{
		"reference":    reference,
		"total_amount": total,
	}, "Booking confirmed: "+reference)
}

// BookingCancelled implements the booking notifier contract.
func (s *Service) BookingCancelled(ctx context.Context, userID uuid.UUID, reference string, eventID uuid.UUID, refund int64) {
	s.publishBooking(ctx, NotificationTypeBookingCancelled, userID, reference, eventID, map[string]interface{}{
		"reference":     reference,
		"refund_amount": refund,
	}, "Booking cancelled: "+reference)
}

// VoteCast implements the voting notifier contract.
func (s *Service) VoteCast(ctx context.Context, userID uuid.UUID, categoryName, nomineeName string, amountPaid int64) {
	recipient, err := s.directory.GetProfile(ctx, userID)
	if err != nil {
		s.log.Error("cannot resolve vote receipt recipient", "user_id", userID.String(), "error", err)
		return
	}

	notification := NewNotificationBuilder().
		WithType(NotificationTypeVoteReceipt).
		WithRecipient(userID, recipient.Email, recipient.FullName).
		WithSubject("Your vote in " + categoryName).
		WithTemplateData(map[string]interface{}{
			"category_name": categoryName,
			"nominee_name":  nomineeName,
			"amount_paid":   amountPaid,
		}).
		Build()

	s.publish(ctx, notification)
}

func (s *Service) publishBooking(ctx context.Context, notType NotificationType, userID uuid.UUID, reference string, eventID uuid.UUID, data map[string]interface{}, subject string) {
	recipient, err := s.directory.GetProfile(ctx, userID)
	if err != nil {
		s.log.Error("cannot resolve booking notification recipient", "user_id", userID.String(), "error", err)
		return
	}

	notification := NewNotificationBuilder().
		WithType(notType).
		WithRecipient(userID, recipient.Email, recipient.FullName).
		WithSubject(subject).
		WithTemplateData(data).
		WithEventContext(eventID).
		Build()

	s.publish(ctx, notification)
}

func (s *Service) publish(ctx context.Context, notification *EmailNotification) {
	if s.producer == nil {
		s.log.Info("notification dropped, kafka unavailable",
			"type", string(notification.Type),
			"recipient", notification.RecipientEmail,
		)
		return
	}

	if err := s.producer.Publish(ctx, notification); err != nil {
		s.log.Error("failed to publish notification",
			"type", string(notification.Type),
			"recipient", notification.RecipientEmail,
			"error", err,
		)
	}
}
