package validators

import (
	"fmt"
	"strings"

	"carbooking/internal/models"
)

// ValidateCarCreate checks the required creation fields first and then the
// field constraints.
func ValidateCarCreate(input *models.CarInput) ValidationErrors {
	var errs ValidationErrors
	for _, field := range input.MissingRequired() {
		errs = append(errs, ValidationError{
			Field:   field,
			Tag:     "required",
			Message: fmt.Sprintf("%s is required", field),
		})
	}
	return append(errs, ValidateStruct(input)...)
}

// ValidateCarUpdate checks only the fields that were sent.
func ValidateCarUpdate(input *models.CarInput) ValidationErrors {
	errs := ValidateStruct(input)
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Tag: "required", Message: "name cannot be empty"})
	}
	return errs
}

// MissingFieldsMessage renders "Missing required fields: a, b" for the
// required-field failures in errs, or "" when there are none.
func MissingFieldsMessage(errs ValidationErrors) string {
	var missing []string
	for _, e := range errs {
		if e.Tag == "required" {
			missing = append(missing, e.Field)
		}
	}
	if len(missing) == 0 {
		return ""
	}
	return "Missing required fields: " + strings.Join(missing, ", ")
}
