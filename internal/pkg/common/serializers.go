package common

import (
	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/models"
	"time"
)

func SerializeLoanApplication(req models.ApplyLoanRequest, now time.Time) models.LoanApplication {

	return models.LoanApplication{
		LoanTitle:            req.LoanTitle,
		LoanAmount:           req.LoanAmount,
		Category:             req.Category,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		UserEmail:            req.UserEmail,
		Status:               consts.StatusPending,
		ApplicationFeeStatus: consts.FeeStatusUnpaid,
		ApplicationDate:      now,
	}

}

func SerializeApplicationEvent(event string, applicationID string, application models.LoanApplication) models.ApplicationEvent {

	return models.ApplicationEvent{
		Event:         event,
		ApplicationID: applicationID,
		UserEmail:     application.UserEmail,
		LoanTitle:     application.LoanTitle,
		Status:        application.Status,
		TransactionID: application.TransactionID,
		Timestamp:     time.Now().UTC(),
	}

}
