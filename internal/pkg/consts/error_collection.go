package consts

import (
	"net/http"

	"github.com/git-abhijeet/credit-risk/internal/pkg/models"
)

var (
	ErrorMissingRequiredFields = &models.CustomError{
		Code:    "CREDITRISK_VALIDATION_MISSING_REQUIRED_FIELDS",
		Message: "Missing required fields",
		Status:  http.StatusBadRequest,
	}
	ErrorPANFormatValidationFailed = &models.CustomError{
		Code:    "CREDITRISK_VALIDATION_PAN_FORMAT_INVALID",
		Message: "Invalid PAN format",
		Status:  http.StatusBadRequest,
	}
	ErrorAadhaarFormatValidationFailed = &models.CustomError{
		Code:    "CREDITRISK_VALIDATION_AADHAAR_FORMAT_INVALID",
		Message: "Invalid Aadhaar (must be 12 digits)",
		Status:  http.StatusBadRequest,
	}
	ErrorPersistenceFailed = &models.CustomError{
		Code:    "CREDITRISK_INTERNAL_ERROR_PERSISTENCE_FAILED",
		Message: "Internal error",
		Status:  http.StatusInternalServerError,
	}
	ErrorMetricsAggregationFailed = &models.CustomError{
		Code:    "CREDITRISK_INTERNAL_ERROR_METRICS_AGGREGATION_FAILED",
		Message: "Failed to compute metrics",
		Status:  http.StatusInternalServerError,
	}
	ErrorApplicationListingFailed = &models.CustomError{
		Code:    "CREDITRISK_INTERNAL_ERROR_APPLICATION_LISTING_FAILED",
		Message: "Failed to fetch applications",
		Status:  http.StatusInternalServerError,
	}
	ErrorEmailAlreadyRegistered = &models.CustomError{
		Code:    "CREDITRISK_AUTH_EMAIL_ALREADY_REGISTERED",
		Message: "Email already registered",
		Status:  http.StatusConflict,
	}
	ErrorInvalidCredentials = &models.CustomError{
		Code:    "CREDITRISK_AUTH_INVALID_CREDENTIALS",
		Message: "Invalid credentials",
		Status:  http.StatusUnauthorized,
	}
	ErrorAssistantUpstreamFailed = &models.CustomError{
		Code:    "CREDITRISK_ASSISTANT_UPSTREAM_FAILED",
		Message: "Assistant service unavailable",
		Status:  http.StatusBadGateway,
	}
)
