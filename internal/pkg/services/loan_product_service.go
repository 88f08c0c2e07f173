package services

import (
	"context"
	"loanlink/loan_marketplace/internal/pkg/cache"
	"loanlink/loan_marketplace/internal/pkg/logger"
	"loanlink/loan_marketplace/internal/pkg/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// LoanProductsRepo is the slice of the products repository this service uses.
type LoanProductsRepo interface {
	Search(ctx context.Context, search string) ([]models.LoanProduct, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*models.LoanProduct, error)
	Insert(ctx context.Context, product models.LoanProduct) (*mongo.InsertOneResult, error)
	SetFieldsByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type LoanProductService struct {
	repo  LoanProductsRepo
	cache *cache.ProductCache
}

func NewLoanProductService(repo LoanProductsRepo, productCache *cache.ProductCache) *LoanProductService {
	return &LoanProductService{repo: repo, cache: productCache}
}

// Search serves the unfiltered listing from cache when possible; search
// results always hit the store.
func (s *LoanProductService) Search(ctx context.Context, search string) ([]models.LoanProduct, error) {
	if search == "" {
		if products, ok := s.cache.GetAll(ctx); ok {
			logger.Debug(ctx, "Serving loan product listing from cache")
			return products, nil
		}
	}

	products, err := s.repo.Search(ctx, search)
	if err != nil {
		return nil, err
	}

	if search == "" {
		s.cache.SetAll(ctx, products)
	}
	return products, nil
}

func (s *LoanProductService) ByID(ctx context.Context, id primitive.ObjectID) (*models.LoanProduct, error) {
	return s.repo.ByID(ctx, id)
}

func (s *LoanProductService) Create(ctx context.Context, product models.LoanProduct) (primitive.ObjectID, error) {
	product.CreatedAt = time.Now().UTC()
	product.UpdatedAt = product.CreatedAt

	result, err := s.repo.Insert(ctx, product)
	if err != nil {
		return primitive.NilObjectID, err
	}

	s.cache.Invalidate(ctx)

	id, _ := result.InsertedID.(primitive.ObjectID)
	return id, nil
}

// Update applies a partial $set; a zero matched count means the product does
// not exist and the caller answers 404.
func (s *LoanProductService) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	result, err := s.repo.SetFieldsByID(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount > 0 {
		s.cache.Invalidate(ctx)
	}
	return result, nil
}

func (s *LoanProductService) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if result.DeletedCount > 0 {
		s.cache.Invalidate(ctx)
	}
	return result.DeletedCount, nil
}
