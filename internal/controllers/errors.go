package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Flexingg/Savings-Web/internal/models"
)

var errNoUpdateFields = errors.New("no fields provided for update")

// errInvalidDate names the offending field so that callers know what to fix.
func errInvalidDate(field string) error {
	return fmt.Errorf("%s must be a valid date in YYYY-MM-DD format", field)
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound

	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError

	default:
		return http.StatusBadRequest
	}
}
