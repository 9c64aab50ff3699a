package dto

import (
	"fmt"
	"math"

	"github.com/adlt1785/musicjournal-backend/internal/constants"
	"github.com/adlt1785/musicjournal-backend/internal/domain"
)

func requireString(field, value string) error {
	if value == "" {
		return domain.NewValidationError(field, "is required")
	}
	return nil
}

func validateRating(rating float64) error {
	if rating != math.Trunc(rating) {
		return domain.NewValidationError("rating", "must be an integer")
	}
	if rating < constants.MinRating || rating > constants.MaxRating {
		return domain.NewValidationError("rating", fmt.Sprintf("must be between %d and %d", constants.MinRating, constants.MaxRating))
	}
	return nil
}
