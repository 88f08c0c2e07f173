package models

// ApplyLoanRequest is the POST /apply-loan body. LoanAmount arrives as a
// string because that is what the legacy web client sends.
type ApplyLoanRequest struct {
	LoanTitle  string `json:"loanTitle"`
	LoanAmount string `json:"loanAmount"`
	Category   string `json:"category"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	UserEmail  string `json:"userEmail"`
}

type StatusUpdateRequest struct {
	Status     string  `json:"status"`
	ApprovedAt *string `json:"approvedAt,omitempty"`
}

type PaymentRecordRequest struct {
	TransactionID string `json:"transactionId"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	PhotoURL string `json:"photoURL,omitempty"`
}

type RoleUpdateRequest struct {
	Role string `json:"role"`
}

type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// UpdateResult mirrors the shape the legacy API returned for raw update
// responses, so clients keep seeing matched/modified counts.
type UpdateResult struct {
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}
