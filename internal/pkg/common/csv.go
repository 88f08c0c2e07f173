package common

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"loanlink/loan_marketplace/internal/pkg/models"
	"time"
)

var applicationReportHeader = []string{
	"applicationId", "loanTitle", "loanAmount", "category",
	"userEmail", "status", "applicationFeeStatus", "application_date",
}

// ApplicationsCSV renders the report rows uploaded to the bucket.
func ApplicationsCSV(applications []models.LoanApplication) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(applicationReportHeader); err != nil {
		return nil, fmt.Errorf("could not write header: %v", err)
	}

	for _, app := range applications {
		record := []string{
			app.ID.Hex(),
			app.LoanTitle,
			app.LoanAmount,
			app.Category,
			app.UserEmail,
			app.Status,
			app.ApplicationFeeStatus,
			app.ApplicationDate.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("could not write record: %v", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
