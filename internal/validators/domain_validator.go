package validators

import (
	"strings"

	"carbooking/internal/models"
)

func ValidateDomainCreate(input *models.DomainInput) ValidationErrors {
	var errs ValidationErrors
	if input.DomainName == nil || strings.TrimSpace(*input.DomainName) == "" {
		errs = append(errs, ValidationError{Field: "domainName", Tag: "required", Message: "domainName is required"})
	}
	return append(errs, ValidateStruct(input)...)
}

func ValidateDomainUpdate(input *models.DomainInput) ValidationErrors {
	errs := ValidateStruct(input)
	if input.DomainName != nil && strings.TrimSpace(*input.DomainName) == "" {
		errs = append(errs, ValidationError{Field: "domainName", Tag: "required", Message: "domainName cannot be empty"})
	}
	return errs
}
