package utils

import (
	"loanlink/loan_marketplace/internal/pkg/consts"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseObjectID validates an externally supplied record identifier. A
// malformed id is a client error, never a driver panic.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, consts.ErrInvalidObjectID
	}
	return oid, nil
}

// MissingFields returns the names of required fields that are empty after
// trimming.
func MissingFields(fields map[string]string) []string {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

func IsValidStatus(status string) bool {
	for _, s := range consts.ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func IsValidRole(role string) bool {
	for _, r := range consts.ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
