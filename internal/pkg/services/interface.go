package services

import (
	"context"
	"loanlink/loan_marketplace/internal/pkg/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Handler-facing service contracts.

type LoanProductServiceInterface interface {
	Search(ctx context.Context, search string) ([]models.LoanProduct, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*models.LoanProduct, error)
	Create(ctx context.Context, product models.LoanProduct) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type LoanApplicationServiceInterface interface {
	Apply(ctx context.Context, req models.ApplyLoanRequest) (primitive.ObjectID, error)
	All(ctx context.Context) ([]models.LoanApplication, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*models.LoanApplication, error)
	ByUserEmail(ctx context.Context, email string) ([]models.LoanApplication, error)
	Pending(ctx context.Context) ([]models.LoanApplication, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, approvedAt *time.Time) (*mongo.UpdateResult, error)
	RecordPayment(ctx context.Context, id primitive.ObjectID, transactionID string) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type UserServiceInterface interface {
	SignIn(ctx context.Context, req models.SignInRequest) (*mongo.UpdateResult, error)
	All(ctx context.Context) ([]models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	RoleByEmail(ctx context.Context, email string) (string, error)
	UpdateRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, email string) (int64, error)
}

type PaymentGatewayInterface interface {
	CreatePaymentIntent(ctx context.Context, priceMajor float64) (string, error)
}

type ReportServiceInterface interface {
	GenerateApplicationsReport(ctx context.Context) (string, int, error)
}

type ProductImportServiceInterface interface {
	Import(ctx context.Context) (int, error)
}
