package services

import (
	"context"
	"loanlink/loan_marketplace/internal/pkg/common"
	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/logger"
	"loanlink/loan_marketplace/internal/pkg/models"
	"loanlink/loan_marketplace/internal/pkg/notification"
	"loanlink/loan_marketplace/internal/pkg/utils/worker"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type LoanApplicationsRepo interface {
	Insert(ctx context.Context, application models.LoanApplication) (*mongo.InsertOneResult, error)
	All(ctx context.Context) ([]models.LoanApplication, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*models.LoanApplication, error)
	ByUserEmail(ctx context.Context, email string) ([]models.LoanApplication, error)
	Pending(ctx context.Context) ([]models.LoanApplication, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string, approvedAt *time.Time) (*mongo.UpdateResult, error)
	SetPayment(ctx context.Context, id primitive.ObjectID, transactionID string, paidAt time.Time) (*mongo.UpdateResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event models.ApplicationEvent) error
}

type DecisionNotifier interface {
	NotifyDecision(ctx context.Context, n notification.DecisionNotification) error
}

type LoanApplicationService struct {
	repo       LoanApplicationsRepo
	events     EventPublisher
	notifier   DecisionNotifier
	workerPool *worker.WorkerPool
}

func NewLoanApplicationService(repo LoanApplicationsRepo, events EventPublisher, notifier DecisionNotifier, workerPool *worker.WorkerPool) *LoanApplicationService {
	return &LoanApplicationService{
		repo:       repo,
		events:     events,
		notifier:   notifier,
		workerPool: workerPool,
	}
}

// Apply inserts the application in its initial pending/unpaid state and
// returns the store-generated id.
func (s *LoanApplicationService) Apply(ctx context.Context, req models.ApplyLoanRequest) (primitive.ObjectID, error) {
	application := common.SerializeLoanApplication(req, time.Now().UTC())

	result, err := s.repo.Insert(ctx, application)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, _ := result.InsertedID.(primitive.ObjectID)
	application.ID = id
	s.publishAsync(consts.EventApplicationCreated, id.Hex(), application)
	return id, nil
}

func (s *LoanApplicationService) All(ctx context.Context) ([]models.LoanApplication, error) {
	return s.repo.All(ctx)
}

func (s *LoanApplicationService) ByID(ctx context.Context, id primitive.ObjectID) (*models.LoanApplication, error) {
	return s.repo.ByID(ctx, id)
}

func (s *LoanApplicationService) ByUserEmail(ctx context.Context, email string) ([]models.LoanApplication, error) {
	return s.repo.ByUserEmail(ctx, email)
}

func (s *LoanApplicationService) Pending(ctx context.Context) ([]models.LoanApplication, error) {
	return s.repo.Pending(ctx)
}

// UpdateStatus sets status + approvedAt. Transitions are caller-directed:
// nothing prevents re-deciding an application, matching the legacy API.
func (s *LoanApplicationService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, approvedAt *time.Time) (*mongo.UpdateResult, error) {
	result, err := s.repo.SetStatus(ctx, id, status, approvedAt)
	if err != nil {
		return nil, err
	}

	if result.MatchedCount > 0 {
		application, lookupErr := s.repo.ByID(ctx, id)
		if lookupErr != nil {
			logger.Warn(ctx, "Status updated but application %s could not be re-read for events: %v", id.Hex(), lookupErr)
			return result, nil
		}
		s.publishAsync(consts.EventApplicationDecided, id.Hex(), *application)
		s.notifyAsync(notification.DecisionNotification{
			ApplicationID: id.Hex(),
			UserEmail:     application.UserEmail,
			LoanTitle:     application.LoanTitle,
			Status:        status,
			DecidedAt:     approvedAt,
		})
	}
	return result, nil
}

// RecordPayment writes the payment fields unconditionally and returns the raw
// update result; the legacy route did no existence check and clients inspect
// the counts themselves.
func (s *LoanApplicationService) RecordPayment(ctx context.Context, id primitive.ObjectID, transactionID string) (*mongo.UpdateResult, error) {
	paidAt := time.Now().UTC()
	result, err := s.repo.SetPayment(ctx, id, transactionID, paidAt)
	if err != nil {
		return nil, err
	}

	if result.MatchedCount > 0 {
		s.publishAsync(consts.EventApplicationPaid, id.Hex(), models.LoanApplication{
			ID:                   id,
			TransactionID:        transactionID,
			ApplicationFeeStatus: consts.FeeStatusPaid,
			PaymentStatus:        consts.FeeStatusPaid,
			PaidAt:               &paidAt,
		})
	}
	return result, nil
}

func (s *LoanApplicationService) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if result.DeletedCount > 0 {
		s.publishAsync(consts.EventApplicationCancelled, id.Hex(), models.LoanApplication{ID: id})
	}
	return result.DeletedCount, nil
}

// publishAsync hands the Kafka publish to the worker pool; a publish failure
// is logged and never surfaced to the HTTP caller.
func (s *LoanApplicationService) publishAsync(event, applicationID string, application models.LoanApplication) {
	if s.events == nil {
		return
	}
	msg := common.SerializeApplicationEvent(event, applicationID, application)
	s.submit(func() {
		if err := s.events.Publish(context.Background(), msg); err != nil {
			logger.Error("Failed to publish %s for application %s: %v", event, applicationID, err)
		}
	})
}

func (s *LoanApplicationService) notifyAsync(n notification.DecisionNotification) {
	if s.notifier == nil {
		return
	}
	s.submit(func() {
		if err := s.notifier.NotifyDecision(context.Background(), n); err != nil {
			logger.Error("Failed to notify decision for application %s: %v", n.ApplicationID, err)
		}
	})
}

func (s *LoanApplicationService) submit(task worker.Task) {
	if s.workerPool != nil {
		s.workerPool.Submit(task)
		return
	}
	task()
}
