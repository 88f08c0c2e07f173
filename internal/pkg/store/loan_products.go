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
)

type LoanProductsRepository struct {
	repo *MongoRepository[models.LoanProduct]
}

func NewLoanProductsRepository(mdb *db.MongoDB) *LoanProductsRepository {
	mrepo := NewMongoRepository[models.LoanProduct](mdb, consts.LoanProductsCollection)
	return &LoanProductsRepository{repo: mrepo}
}

// Search returns all products, or those whose title or category contains the
// search text case-insensitively.
func (r *LoanProductsRepository) Search(ctx context.Context, search string) ([]models.LoanProduct, error) {
	filter := bson.M{}
	if search != "" {
		pattern := primitive.Regex{Pattern: regexpQuote(search), Options: "i"}
		filter = bson.M{"$or": bson.A{
			bson.M{"loanTitle": pattern},
			bson.M{"category": pattern},
		}}
	}

	products, err := r.repo.FindAll(filter)
	if err != nil {
		logger.Error(ctx, "Failed to search loan products: %v", err)
		return nil, err
	}
	return products, nil
}

func (r *LoanProductsRepository) ByID(ctx context.Context, id primitive.ObjectID) (*models.LoanProduct, error) {
	product, err := r.repo.Read(bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *LoanProductsRepository) Insert(ctx context.Context, product models.LoanProduct) (*mongo.InsertOneResult, error) {
	return r.repo.Create(product)
}

func (r *LoanProductsRepository) SetFieldsByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	fields["updatedAt"] = time.Now().UTC()
	return r.repo.SetFields(bson.M{"_id": id}, fields)
}

func (r *LoanProductsRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.repo.Delete(bson.M{"_id": id})
}

// UpsertByTitle matches on loanTitle so the partner import can replay the same
// CSV without duplicating products.
func (r *LoanProductsRepository) UpsertByTitle(ctx context.Context, product models.LoanProduct) (*mongo.UpdateResult, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"category":      product.Category,
			"maxLoanAmount": product.MaxLoanAmount,
			"interestRate":  product.InterestRate,
			"description":   product.Description,
			"image":         product.Image,
			"updatedAt":     now,
		},
		"$setOnInsert": bson.M{
			"loanTitle": product.LoanTitle,
			"createdAt": now,
		},
	}
	return r.repo.Upsert(bson.M{"loanTitle": product.LoanTitle}, update)
}
