package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"loanlink/loan_marketplace/internal/pkg/cache"
	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/logger"
	"loanlink/loan_marketplace/internal/pkg/models"
	"strconv"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProductCSVSource abstracts the SFTP pull so tests feed CSV bytes directly.
type ProductCSVSource interface {
	PullProductCSV() (string, []byte, error)
	MoveToProcessed(srcPath string) error
}

type ProductUpserter interface {
	UpsertByTitle(ctx context.Context, product models.LoanProduct) (*mongo.UpdateResult, error)
}

// ProductImportService syncs the loan-product catalog from the partner's CSV
// drop. Rows upsert by loanTitle so replays are harmless.
type ProductImportService struct {
	source ProductCSVSource
	repo   ProductUpserter
	cache  *cache.ProductCache
}

func NewProductImportService(source ProductCSVSource, repo ProductUpserter, productCache *cache.ProductCache) *ProductImportService {
	return &ProductImportService{
		source: source,
		repo:   repo,
		cache:  productCache,
	}
}

// Import pulls the waiting CSV and upserts its rows, returning how many were
// applied. No waiting file is an error the handler maps to 404.
func (s *ProductImportService) Import(ctx context.Context) (int, error) {
	path, data, err := s.source.PullProductCSV()
	if err != nil {
		return 0, err
	}
	if path == "" {
		return 0, consts.ErrImportNoFile
	}

	products, err := parseProductCSV(data)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, product := range products {
		if _, err := s.repo.UpsertByTitle(ctx, product); err != nil {
			logger.Error(ctx, "Failed to upsert product %q: %v", product.LoanTitle, err)
			return applied, err
		}
		applied++
	}

	if applied > 0 {
		s.cache.Invalidate(ctx)
	}

	if err := s.source.MoveToProcessed(path); err != nil {
		logger.Warn(ctx, "Imported %d products but could not archive %s: %v", applied, path, err)
	}

	return applied, nil
}

// parseProductCSV expects the header
// loanTitle,category,maxLoanAmount,interestRate,description,image
// and skips rows without a title.
func parseProductCSV(data []byte) ([]models.LoanProduct, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	var products []models.LoanProduct
	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header {
			header = false
			continue
		}
		if len(record) < 2 || record[0] == "" {
			continue
		}

		product := models.LoanProduct{
			LoanTitle: record[0],
			Category:  record[1],
		}
		if len(record) > 2 {
			product.MaxLoanAmount, _ = strconv.ParseFloat(record[2], 64)
		}
		if len(record) > 3 {
			product.InterestRate, _ = strconv.ParseFloat(record[3], 64)
		}
		if len(record) > 4 {
			product.Description = record[4]
		}
		if len(record) > 5 {
			product.Image = record[5]
		}
		products = append(products, product)
	}
	return products, nil
}
