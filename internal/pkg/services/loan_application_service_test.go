package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/models"
	"loanlink/loan_marketplace/internal/pkg/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MockLoanApplicationsRepo struct{ mock.Mock }

func (m *MockLoanApplicationsRepo) Insert(ctx context.Context, application models.LoanApplication) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, application)
	if res := args.Get(0); res != nil {
		return res.(*mongo.InsertOneResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanApplicationsRepo) All(ctx context.Context) ([]models.LoanApplication, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.LoanApplication), args.Error(1)
}

func (m *MockLoanApplicationsRepo) ByID(ctx context.Context, id primitive.ObjectID) (*models.LoanApplication, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.LoanApplication), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanApplicationsRepo) ByUserEmail(ctx context.Context, email string) ([]models.LoanApplication, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.LoanApplication), args.Error(1)
}

func (m *MockLoanApplicationsRepo) Pending(ctx context.Context) ([]models.LoanApplication, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.LoanApplication), args.Error(1)
}

func (m *MockLoanApplicationsRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status string, approvedAt *time.Time) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, status, approvedAt)
	if res := args.Get(0); res != nil {
		return res.(*mongo.UpdateResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanApplicationsRepo) SetPayment(ctx context.Context, id primitive.ObjectID, transactionID string, paidAt time.Time) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, transactionID, paidAt)
	if res := args.Get(0); res != nil {
		return res.(*mongo.UpdateResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanApplicationsRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*mongo.DeleteResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event models.ApplicationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockDecisionNotifier struct{ mock.Mock }

func (m *MockDecisionNotifier) NotifyDecision(ctx context.Context, n notification.DecisionNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// nil worker pool runs publish tasks inline, so the mocks see the calls
// before the assertions run.

func TestApplyInsertsPendingAndPublishesCreated(t *testing.T) {
	repo := new(MockLoanApplicationsRepo)
	events := new(MockEventPublisher)

	insertedID := primitive.NewObjectID()
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(a models.LoanApplication) bool {
		return a.Status == consts.StatusPending && a.ApplicationFeeStatus == consts.FeeStatusUnpaid
	})).Return(&mongo.InsertOneResult{InsertedID: insertedID}, nil)

	events.On("Publish", mock.Anything, mock.MatchedBy(func(e models.ApplicationEvent) bool {
		return e.Event == consts.EventApplicationCreated && e.ApplicationID == insertedID.Hex()
	})).Return(nil)

	service := NewLoanApplicationService(repo, events, nil, nil)

	id, err := service.Apply(context.Background(), models.ApplyLoanRequest{
		LoanTitle:  "Home Loan",
		LoanAmount: "250000",
		Category:   "housing",
		FirstName:  "Maria",
		LastName:   "Santos",
		UserEmail:  "maria@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, insertedID, id)
	repo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestApplyInsertFailureSkipsPublish(t *testing.T) {
	repo := new(MockLoanApplicationsRepo)
	events := new(MockEventPublisher)

	repo.On("Insert", mock.Anything, mock.Anything).Return(nil, errors.New("write concern error"))

	service := NewLoanApplicationService(repo, events, nil, nil)

	_, err := service.Apply(context.Background(), models.ApplyLoanRequest{LoanTitle: "Home Loan"})

	require.Error(t, err)
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestUpdateStatusPublishesDecisionAndNotifies(t *testing.T) {
	repo := new(MockLoanApplicationsRepo)
	events := new(MockEventPublisher)
	notifier := new(MockDecisionNotifier)

	id := primitive.NewObjectID()
	approvedAt := time.Now().UTC()
	application := &models.LoanApplication{
		ID:        id,
		LoanTitle: "Home Loan",
		UserEmail: "maria@example.com",
		Status:    consts.StatusApproved,
	}

	repo.On("SetStatus", mock.Anything, id, consts.StatusApproved, &approvedAt).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)
	repo.On("ByID", mock.Anything, id).Return(application, nil)
	events.On("Publish", mock.Anything, mock.MatchedBy(func(e models.ApplicationEvent) bool {
		return e.Event == consts.EventApplicationDecided
	})).Return(nil)
	notifier.On("NotifyDecision", mock.Anything, mock.MatchedBy(func(n notification.DecisionNotification) bool {
		return n.Status == consts.StatusApproved && n.UserEmail == "maria@example.com"
	})).Return(nil)

	service := NewLoanApplicationService(repo, events, notifier, nil)

	result, err := service.UpdateStatus(context.Background(), id, consts.StatusApproved, &approvedAt)

	require.NoError(t, err)
	assert.EqualValues(t, 1, result.ModifiedCount)
	repo.AssertExpectations(t)
	events.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestUpdateStatusUnmatchedSkipsSideEffects(t *testing.T) {
	repo := new(MockLoanApplicationsRepo)
	events := new(MockEventPublisher)
	notifier := new(MockDecisionNotifier)

	id := primitive.NewObjectID()
	repo.On("SetStatus", mock.Anything, id, consts.StatusRejected, (*time.Time)(nil)).
		Return(&mongo.UpdateResult{MatchedCount: 0}, nil)

	service := NewLoanApplicationService(repo, events, notifier, nil)

	result, err := service.UpdateStatus(context.Background(), id, consts.StatusRejected, nil)

	require.NoError(t, err)
	assert.EqualValues(t, 0, result.MatchedCount)
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "NotifyDecision", mock.Anything, mock.Anything)
}

func TestRecordPaymentReturnsRawResult(t *testing.T) {
	repo := new(MockLoanApplicationsRepo)
	events := new(MockEventPublisher)

	id := primitive.NewObjectID()
	repo.On("SetPayment", mock.Anything, id, "pi_123", mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)
	events.On("Publish", mock.Anything, mock.MatchedBy(func(e models.ApplicationEvent) bool {
		return e.Event == consts.EventApplicationPaid
	})).Return(nil)

	service := NewLoanApplicationService(repo, events, nil, nil)

	result, err := service.RecordPayment(context.Background(), id, "pi_123")

	require.NoError(t, err)
	assert.EqualValues(t, 1, result.MatchedCount)
	events.AssertExpectations(t)
}

func TestDeletePublishesCancelledOnlyWhenRemoved(t *testing.T) {
	repo := new(MockLoanApplicationsRepo)
	events := new(MockEventPublisher)

	id := primitive.NewObjectID()
	repo.On("DeleteByID", mock.Anything, id).
		Return(&mongo.DeleteResult{DeletedCount: 1}, nil).Once()
	repo.On("DeleteByID", mock.Anything, id).
		Return(&mongo.DeleteResult{DeletedCount: 0}, nil).Once()
	events.On("Publish", mock.Anything, mock.MatchedBy(func(e models.ApplicationEvent) bool {
		return e.Event == consts.EventApplicationCancelled
	})).Return(nil).Once()

	service := NewLoanApplicationService(repo, events, nil, nil)

	deleted, err := service.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	// Deleting the same application again must not fire another event.
	deleted, err = service.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.EqualValues(t, 0, deleted)

	events.AssertExpectations(t)
}
