package services

import (
	"errors"

	"github.com/go-playground/validator/v10"

	apperrors "inspectra/pkg/errors"
)

// invalidPayload turns the first validator failure into a human-readable
// ValidationError. Field names come from the json tags.
func invalidPayload(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError("%s is required", fe.Field())
	case "min":
		return apperrors.NewValidationError("%s is too short (min %s characters)", fe.Field(), fe.Param())
	case "inspection_date":
		return apperrors.NewValidationError("%s must be a YYYY-MM-DD date", fe.Field())
	case "email_shape":
		return apperrors.NewValidationError("invalid email")
	default:
		return apperrors.NewValidationError("%s is invalid", fe.Field())
	}
}
