package validation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finverde/Family-Finance-Backend/internal/apperrors"
)

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidUUID, id)
	}
	return nil
}

// ValidateDateRange checks that neither bound is zero. An inverted range is
// allowed; consumers treat it as an empty-but-valid window.
func ValidateDateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: both start and end are required", apperrors.ErrInvalidDateRange)
	}
	return nil
}
