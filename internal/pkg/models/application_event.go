package models

import "time"

// ApplicationEvent is the Kafka payload emitted on application lifecycle
// changes (created, decided, payment recorded, cancelled).
type ApplicationEvent struct {
	Event         string    `json:"event"`
	ApplicationID string    `json:"applicationId"`
	UserEmail     string    `json:"userEmail,omitempty"`
	LoanTitle     string    `json:"loanTitle,omitempty"`
	Status        string    `json:"status,omitempty"`
	TransactionID string    `json:"transactionId,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
