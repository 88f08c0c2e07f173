package services

import (
	"context"
	"fmt"
	"loanlink/loan_marketplace/internal/pkg/common"
	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/gcs"
	"loanlink/loan_marketplace/internal/pkg/logger"
	"loanlink/loan_marketplace/internal/pkg/models"
	"time"

	"github.com/google/uuid"
)

type ApplicationsReportRepo interface {
	Since(ctx context.Context, from time.Time) ([]models.LoanApplication, error)
}

// ReportService renders a CSV of recent applications and parks it in the
// operations bucket for the back office.
type ReportService struct {
	repo      ApplicationsReportRepo
	uploader  gcs.GcsInterface
	lastHours int
}

func NewReportService(repo ApplicationsReportRepo, uploader gcs.GcsInterface, lastHours int) *ReportService {
	return &ReportService{
		repo:      repo,
		uploader:  uploader,
		lastHours: lastHours,
	}
}

// GenerateApplicationsReport returns the uploaded object name and the number
// of rows it contains.
func (s *ReportService) GenerateApplicationsReport(ctx context.Context) (string, int, error) {
	if s.uploader == nil {
		return "", 0, consts.ErrReportBucketNotConfigured
	}

	from := time.Now().UTC().Add(-time.Duration(s.lastHours) * time.Hour)
	applications, err := s.repo.Since(ctx, from)
	if err != nil {
		return "", 0, err
	}

	data, err := common.ApplicationsCSV(applications)
	if err != nil {
		logger.Error(ctx, "Failed to render applications CSV: %v", err)
		return "", 0, err
	}

	name := fmt.Sprintf("applications_%s.csv", uuid.NewString())
	objectName, err := s.uploader.UploadCSV(ctx, name, data)
	if err != nil {
		return "", 0, err
	}

	logger.Info(ctx, "Applications report with %d rows uploaded as %s", len(applications), objectName)
	return objectName, len(applications), nil
}
