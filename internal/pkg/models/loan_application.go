package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoanApplication carries the borrower's request against a loan product.
// approvedAt stays nil until a manager decides; the payment fields are set
// once by the payment-confirmation route and never cleared.
type LoanApplication struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	LoanTitle            string             `bson:"loanTitle" json:"loanTitle"`
	LoanAmount           string             `bson:"loanAmount" json:"loanAmount"`
	Category             string             `bson:"category" json:"category"`
	FirstName            string             `bson:"firstName" json:"firstName"`
	LastName             string             `bson:"lastName" json:"lastName"`
	UserEmail            string             `bson:"userEmail" json:"userEmail"`
	Status               string             `bson:"status" json:"status"`
	ApplicationFeeStatus string             `bson:"applicationFeeStatus" json:"applicationFeeStatus"`
	ApplicationDate      time.Time          `bson:"application_date" json:"application_date"`
	ApprovedAt           *time.Time         `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	PaymentStatus        string             `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	TransactionID        string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	PaidAt               *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}
