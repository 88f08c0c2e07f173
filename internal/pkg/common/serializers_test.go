package common

import (
	"testing"
	"time"

	"loanlink/loan_marketplace/internal/pkg/consts"
	"loanlink/loan_marketplace/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSerializeLoanApplication(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	application := SerializeLoanApplication(models.ApplyLoanRequest{
		LoanTitle:  "Home Loan",
		LoanAmount: "250000",
		Category:   "housing",
		FirstName:  "Maria",
		LastName:   "Santos",
		UserEmail:  "maria@example.com",
	}, now)

	assert.Equal(t, "Home Loan", application.LoanTitle)
	assert.Equal(t, "250000", application.LoanAmount)
	assert.Equal(t, consts.StatusPending, application.Status)
	assert.Equal(t, consts.FeeStatusUnpaid, application.ApplicationFeeStatus)
	assert.Equal(t, now, application.ApplicationDate)
	assert.Nil(t, application.ApprovedAt)
	assert.Empty(t, application.TransactionID)
}

func TestSerializeApplicationEvent(t *testing.T) {
	id := primitive.NewObjectID()
	event := SerializeApplicationEvent(consts.EventApplicationDecided, id.Hex(), models.LoanApplication{
		ID:        id,
		LoanTitle: "Home Loan",
		UserEmail: "maria@example.com",
		Status:    consts.StatusApproved,
	})

	assert.Equal(t, consts.EventApplicationDecided, event.Event)
	assert.Equal(t, id.Hex(), event.ApplicationID)
	assert.Equal(t, consts.StatusApproved, event.Status)
	assert.False(t, event.Timestamp.IsZero())
}
