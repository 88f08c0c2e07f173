package services

import (
	"context"
	"errors"
	"testing"

	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type MockProductCSVSource struct{ mock.Mock }

func (m *MockProductCSVSource) PullProductCSV() (string, []byte, error) {
	args := m.Called()
	if res := args.Get(1); res != nil {
		return args.String(0), res.([]byte), args.Error(2)
	}
	return args.String(0), nil, args.Error(2)
}

func (m *MockProductCSVSource) MoveToProcessed(srcPath string) error {
	args := m.Called(srcPath)
	return args.Error(0)
}

type MockProductUpserter struct{ mock.Mock }

func (m *MockProductUpserter) UpsertByTitle(ctx context.Context, product models.LoanProduct) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, product)
	if res := args.Get(0); res != nil {
		return res.(*mongo.UpdateResult), args.Error(1)
	}
	return nil, args.Error(1)
}

const importCSV = `loanTitle,category,maxLoanAmount,interestRate,description,image
Home Loan,housing,500000,5.25,Long term housing loan,https://cdn.example.com/home.png
Car Loan,auto,80000,7.9,,
,misc,100,1,skipped because untitled,
`

func TestImportUpsertsEachRowAndArchives(t *testing.T) {
	source := new(MockProductCSVSource)
	repo := new(MockProductUpserter)

	source.On("PullProductCSV").Return("/upload/loanProducts/products.csv", []byte(importCSV), nil)
	source.On("MoveToProcessed", "/upload/loanProducts/products.csv").Return(nil)

	repo.On("UpsertByTitle", mock.Anything, mock.MatchedBy(func(p models.LoanProduct) bool {
		return p.LoanTitle == "Home Loan" && p.Category == "housing" && p.MaxLoanAmount == 500000 && p.InterestRate == 5.25
	})).Return(&mongo.UpdateResult{UpsertedCount: 1}, nil)
	repo.On("UpsertByTitle", mock.Anything, mock.MatchedBy(func(p models.LoanProduct) bool {
		return p.LoanTitle == "Car Loan" && p.Category == "auto"
	})).Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	service := NewProductImportService(source, repo, nil)

	imported, err := service.Import(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, imported)
	source.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestImportNoWaitingFile(t *testing.T) {
	source := new(MockProductCSVSource)
	source.On("PullProductCSV").Return("", nil, nil)

	service := NewProductImportService(source, new(MockProductUpserter), nil)

	_, err := service.Import(context.Background())
	assert.ErrorIs(t, err, consts.ErrImportNoFile)
}

func TestImportStopsOnUpsertError(t *testing.T) {
	source := new(MockProductCSVSource)
	repo := new(MockProductUpserter)

	source.On("PullProductCSV").Return("/upload/loanProducts/products.csv", []byte(importCSV), nil)
	repo.On("UpsertByTitle", mock.Anything, mock.Anything).
		Return(nil, errors.New("duplicate key")).Once()

	service := NewProductImportService(source, repo, nil)

	imported, err := service.Import(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, imported)
	source.AssertNotCalled(t, "MoveToProcessed", mock.Anything)
}

func TestParseProductCSVSkipsUntitledRows(t *testing.T) {
	products, err := parseProductCSV([]byte(importCSV))
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Home Loan", products[0].LoanTitle)
	assert.Equal(t, "https://cdn.example.com/home.png", products[0].Image)
	assert.Equal(t, "Car Loan", products[1].LoanTitle)
}
