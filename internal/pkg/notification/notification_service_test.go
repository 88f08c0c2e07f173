package notification

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"loanlink/loan_marketplace/internal/pkg/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPubSubPublisher struct{ mock.Mock }

func (m *MockPubSubPublisher) Publish(ctx context.Context, topic string, data []byte, attributes map[string]string) (string, error) {
	args := m.Called(ctx, topic, data, attributes)
	return args.String(0), args.Error(1)
}

func (m *MockPubSubPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestNotifyDecisionPublishesApproval(t *testing.T) {
	publisher := new(MockPubSubPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.MatchedBy(func(attrs map[string]string) bool {
		return attrs["event"] == consts.EventApplicationDecided && attrs["userEmail"] == "maria@example.com"
	})).Return("msg-1", nil)

	service := &NotificationService{pubsubPublisher: publisher, topic: "loan-decisions"}

	decidedAt := time.Now().UTC()
	err := service.NotifyDecision(context.Background(), DecisionNotification{
		ApplicationID: "abc123",
		UserEmail:     "maria@example.com",
		LoanTitle:     "Home Loan",
		Status:        consts.StatusApproved,
		DecidedAt:     &decidedAt,
	})

	require.NoError(t, err)
	publisher.AssertExpectations(t)

	// Payload decodes back into the notification shape.
	call := publisher.Calls[0]
	var decoded DecisionNotification
	require.NoError(t, json.Unmarshal(call.Arguments.Get(2).([]byte), &decoded))
	assert.Equal(t, "abc123", decoded.ApplicationID)
	assert.Equal(t, consts.StatusApproved, decoded.Status)
}

func TestNotifyDecisionSkipsPending(t *testing.T) {
	publisher := new(MockPubSubPublisher)

	service := &NotificationService{pubsubPublisher: publisher, topic: "loan-decisions"}

	err := service.NotifyDecision(context.Background(), DecisionNotification{
		ApplicationID: "abc123",
		Status:        consts.StatusPending,
	})

	require.NoError(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifyDecisionWithoutPublisherIsNoOp(t *testing.T) {
	service := &NotificationService{}

	err := service.NotifyDecision(context.Background(), DecisionNotification{
		Status: consts.StatusRejected,
	})
	assert.NoError(t, err)
}
