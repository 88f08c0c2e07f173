package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LoanProduct struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	LoanTitle     string             `bson:"loanTitle" json:"loanTitle"`
	Category      string             `bson:"category" json:"category"`
	MaxLoanAmount float64            `bson:"maxLoanAmount,omitempty" json:"maxLoanAmount,omitempty"`
	InterestRate  float64            `bson:"interestRate,omitempty" json:"interestRate,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
