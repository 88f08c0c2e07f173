package services

import (
	"context"
	"errors"
	"testing"

	"loanlink/loan_marketplace/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MockLoanProductsRepo struct{ mock.Mock }

func (m *MockLoanProductsRepo) Search(ctx context.Context, search string) ([]models.LoanProduct, error) {
	args := m.Called(ctx, search)
	if res := args.Get(0); res != nil {
		return res.([]models.LoanProduct), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanProductsRepo) ByID(ctx context.Context, id primitive.ObjectID) (*models.LoanProduct, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.LoanProduct), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanProductsRepo) Insert(ctx context.Context, product models.LoanProduct) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, product)
	if res := args.Get(0); res != nil {
		return res.(*mongo.InsertOneResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanProductsRepo) SetFieldsByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	if res := args.Get(0); res != nil {
		return res.(*mongo.UpdateResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoanProductsRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*mongo.DeleteResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestSearchPassesTermThrough(t *testing.T) {
	repo := new(MockLoanProductsRepo)
	products := []models.LoanProduct{{LoanTitle: "Car Loan"}}
	repo.On("Search", mock.Anything, "car").Return(products, nil)

	// nil cache: the service must not panic and must skip caching entirely.
	service := NewLoanProductService(repo, nil)

	got, err := service.Search(context.Background(), "car")
	require.NoError(t, err)
	assert.Equal(t, products, got)
	repo.AssertExpectations(t)
}

func TestSearchEmptyTermWithNilCacheHitsStore(t *testing.T) {
	repo := new(MockLoanProductsRepo)
	repo.On("Search", mock.Anything, "").Return([]models.LoanProduct{}, nil)

	service := NewLoanProductService(repo, nil)

	got, err := service.Search(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, got)
	repo.AssertExpectations(t)
}

func TestCreateStampsTimestamps(t *testing.T) {
	repo := new(MockLoanProductsRepo)
	insertedID := primitive.NewObjectID()
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(p models.LoanProduct) bool {
		return !p.CreatedAt.IsZero() && p.UpdatedAt.Equal(p.CreatedAt)
	})).Return(&mongo.InsertOneResult{InsertedID: insertedID}, nil)

	service := NewLoanProductService(repo, nil)

	id, err := service.Create(context.Background(), models.LoanProduct{LoanTitle: "Car Loan", Category: "auto"})
	require.NoError(t, err)
	assert.Equal(t, insertedID, id)
	repo.AssertExpectations(t)
}

func TestUpdateReturnsMatchedCount(t *testing.T) {
	repo := new(MockLoanProductsRepo)
	id := primitive.NewObjectID()
	repo.On("SetFieldsByID", mock.Anything, id, bson.M{"interestRate": 4.5}).
		Return(&mongo.UpdateResult{MatchedCount: 0}, nil)

	service := NewLoanProductService(repo, nil)

	result, err := service.Update(context.Background(), id, bson.M{"interestRate": 4.5})
	require.NoError(t, err)
	assert.EqualValues(t, 0, result.MatchedCount)
}

func TestDeletePropagatesStoreError(t *testing.T) {
	repo := new(MockLoanProductsRepo)
	id := primitive.NewObjectID()
	repo.On("DeleteByID", mock.Anything, id).Return(nil, errors.New("connection reset"))

	service := NewLoanProductService(repo, nil)

	_, err := service.Delete(context.Background(), id)
	assert.Error(t, err)
}
