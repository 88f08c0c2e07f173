package handlers

import (
	"errors"
	"loanlink/loan_marketplace/internal/pkg/consts"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
)

// storeErrorStatus maps persistence failures onto the response contract:
// no connection → 503, driver failure → 500. Not-found is handled per route
// because list routes return empty arrays instead.
func storeErrorStatus(err error) int {
	if errors.Is(err, consts.ErrStoreUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
