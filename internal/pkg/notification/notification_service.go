package notification

import (
	"context"
	"encoding/json"
	"loanlink/loan_marketplace/configs"
	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/logger"
	"loanlink/loan_marketplace/internal/pkg/pubsub"
	"time"
)

// DecisionNotification is delivered to the notification topic when a manager
// approves or rejects an application; the downstream service turns it into an
// email to the borrower.
type DecisionNotification struct {
	ApplicationID string     `json:"applicationId"`
	UserEmail     string     `json:"userEmail"`
	LoanTitle     string     `json:"loanTitle"`
	Status        string     `json:"status"`
	DecidedAt     *time.Time `json:"decidedAt,omitempty"`
}

type NotificationService struct {
	pubsubPublisher pubsub.PubSubPublisherInterface
	topic           string
}

func NewNotificationService(pubsubPublisher pubsub.PubSubPublisherInterface) *NotificationService {
	return &NotificationService{
		pubsubPublisher: pubsubPublisher,
		topic:           configs.PUBSUB_TOPIC,
	}
}

// NotifyDecision publishes the decision. Only Approved/Rejected are
// delivered; resetting an application to pending notifies nobody. A missing
// publisher (Pub/Sub disabled or unreachable at startup) is a no-op.
func (s *NotificationService) NotifyDecision(ctx context.Context, notification DecisionNotification) error {
	if s == nil || s.pubsubPublisher == nil {
		return nil
	}
	if notification.Status != consts.StatusApproved && notification.Status != consts.StatusRejected {
		return nil
	}

	data, err := json.Marshal(notification)
	if err != nil {
		logger.Error(ctx, "Failed to marshal decision notification: %v", err)
		return err
	}

	attributes := map[string]string{
		"event":     consts.EventApplicationDecided,
		"userEmail": notification.UserEmail,
	}

	if _, err := s.pubsubPublisher.Publish(ctx, s.topic, data, attributes); err != nil {
		return err
	}
	return nil
}
