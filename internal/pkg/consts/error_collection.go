package consts

import "loanlink/loan_marketplace/internal/pkg/models"

var (
	ErrStoreUnavailable = &models.CustomError{
		Code:    "LOANLINK_STORE_UNAVAILABLE",
		Message: "Database connection is not available",
	}
	ErrInvalidObjectID = &models.CustomError{
		Code:    "LOANLINK_VALIDATION_OBJECT_ID_INVALID",
		Message: "Record identifier is not a valid ObjectID",
	}
	ErrMissingRequiredFields = &models.CustomError{
		Code:    "LOANLINK_VALIDATION_MISSING_REQUIRED_FIELDS",
		Message: "One or more required fields are missing",
	}
	ErrInvalidStatus = &models.CustomError{
		Code:    "LOANLINK_VALIDATION_STATUS_INVALID",
		Message: "Status must be one of pending, Approved, Rejected",
	}
	ErrInvalidRole = &models.CustomError{
		Code:    "LOANLINK_VALIDATION_ROLE_INVALID",
		Message: "Role must be one of borrower, manager, admin",
	}
	ErrEmptyEmail = &models.CustomError{
		Code:    "LOANLINK_VALIDATION_EMAIL_EMPTY",
		Message: "Email must not be empty",
	}
	ErrInvalidPaymentAmount = &models.CustomError{
		Code:    "LOANLINK_VALIDATION_PAYMENT_AMOUNT_INVALID",
		Message: "Payment amount must be greater than zero",
	}
	ErrLoanProductNotFound = &models.CustomError{
		Code:    "LOANLINK_LOAN_PRODUCT_NOT_FOUND",
		Message: "Loan product not found",
	}
	ErrLoanApplicationNotFound = &models.CustomError{
		Code:    "LOANLINK_LOAN_APPLICATION_NOT_FOUND",
		Message: "Loan application not found",
	}
	ErrUserNotFound = &models.CustomError{
		Code:    "LOANLINK_USER_NOT_FOUND",
		Message: "User not found",
	}
	ErrCapabilityDenied = &models.CustomError{
		Code:    "LOANLINK_CAPABILITY_DENIED",
		Message: "Caller lacks the capability for this operation",
	}
	ErrReportBucketNotConfigured = &models.CustomError{
		Code:    "LOANLINK_REPORT_BUCKET_NOT_CONFIGURED",
		Message: "Report bucket name is not configured",
	}
	ErrImportNoFile = &models.CustomError{
		Code:    "LOANLINK_IMPORT_NO_FILE_FOUND",
		Message: "No product CSV found on the partner drop",
	}
)
