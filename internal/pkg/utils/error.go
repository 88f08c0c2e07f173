package utils

import "loanlink/loan_marketplace/internal/pkg/models"

func GetErrorCode(err error) string {
	if customErr, ok := err.(*models.CustomError); ok {
		return customErr.ErrorCode()
	}
	return "LOANLINK_INTERNAL_ERROR"
}
