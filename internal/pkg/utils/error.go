package utils

import (
	"errors"
	"net/http"

	"github.com/git-abhijeet/credit-risk/internal/pkg/models"
)

func GetErrorCode(err error) string {
	var customErr *models.CustomError
	if errors.As(err, &customErr) {
		return customErr.ErrorCode()
	}
	return "CREDITRISK_INTERNAL_ERROR"
}

// GetErrorStatus maps an error to the HTTP status it should surface as.
// Non-custom errors default to 500.
func GetErrorStatus(err error) int {
	var customErr *models.CustomError
	if errors.As(err, &customErr) && customErr.HTTPStatus() != 0 {
		return customErr.HTTPStatus()
	}
	return http.StatusInternalServerError
}
