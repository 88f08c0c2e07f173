package store

import (
	"context"
	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/db"
	"loanlink/loan_marketplace/internal/pkg/logger"
	"loanlink/loan_marketplace/internal/pkg/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LoanApplicationsRepository struct {
	repo *MongoRepository[models.LoanApplication]
}

func NewLoanApplicationsRepository(mdb *db.MongoDB) *LoanApplicationsRepository {
	mrepo := NewMongoRepository[models.LoanApplication](mdb, consts.LoanApplicationsCollection)
	return &LoanApplicationsRepository{repo: mrepo}
}

func (r *LoanApplicationsRepository) Insert(ctx context.Context, application models.LoanApplication) (*mongo.InsertOneResult, error) {
	return r.repo.Create(application)
}

// All returns every application, newest first.
func (r *LoanApplicationsRepository) All(ctx context.Context) ([]models.LoanApplication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "application_date", Value: -1}})
	applications, err := r.repo.FindAll(bson.M{}, opts)
	if err != nil {
		logger.Error(ctx, "Failed to list loan applications: %v", err)
		return nil, err
	}
	return applications, nil
}

func (r *LoanApplicationsRepository) ByID(ctx context.Context, id primitive.ObjectID) (*models.LoanApplication, error) {
	application, err := r.repo.Read(bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *LoanApplicationsRepository) ByUserEmail(ctx context.Context, email string) ([]models.LoanApplication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "application_date", Value: -1}})
	return r.repo.FindAll(bson.M{"userEmail": email}, opts)
}

func (r *LoanApplicationsRepository) Pending(ctx context.Context) ([]models.LoanApplication, error) {
	return r.repo.FindAll(bson.M{"status": consts.StatusPending})
}

// SetStatus writes the status and approvedAt together; approvedAt is nil for
// anything but an approval, matching what the clients already expect.
func (r *LoanApplicationsRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string, approvedAt *time.Time) (*mongo.UpdateResult, error) {
	var approved interface{}
	if approvedAt != nil {
		approved = *approvedAt
	}
	return r.repo.SetFields(bson.M{"_id": id}, bson.M{
		"status":     status,
		"approvedAt": approved,
	})
}

func (r *LoanApplicationsRepository) SetPayment(ctx context.Context, id primitive.ObjectID, transactionID string, paidAt time.Time) (*mongo.UpdateResult, error) {
	return r.repo.SetFields(bson.M{"_id": id}, bson.M{
		"paymentStatus":        consts.FeeStatusPaid,
		"applicationFeeStatus": consts.FeeStatusPaid,
		"transactionId":        transactionID,
		"paidAt":               paidAt,
	})
}

func (r *LoanApplicationsRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.repo.Delete(bson.M{"_id": id})
}

// Since returns applications submitted in the trailing window, for the
// operations report.
func (r *LoanApplicationsRepository) Since(ctx context.Context, from time.Time) ([]models.LoanApplication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "application_date", Value: -1}})
	return r.repo.FindAll(bson.M{"application_date": bson.M{"$gte": from}}, opts)
}
