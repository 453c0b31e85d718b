package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("currency_code", validateCurrencyCode)
}

var (
	ErrInvalidObjectID = errors.New("invalid object ID format")
	ErrInvalidCurrency = errors.New("invalid currency code")
)

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Details flattens the errors into a field -> message map for responses.
func (v ValidationErrors) Details() map[string]string {
	details := make(map[string]string, len(v))
	for _, err := range v {
		details[err.Field] = err.Message
	}
	return details
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return ValidationErrors{{Field: "body", Tag: "invalid", Message: err.Error()}}
		}
		for _, fe := range fieldErrors {
			validationErrors = append(validationErrors, ValidationError{
				Field:   fieldPath(fe),
				Tag:     fe.Tag(),
				Value:   fmt.Sprintf("%v", fe.Value()),
				Message: getErrorMessage(fe),
			})
		}
	}

	return validationErrors
}

// fieldPath drops the struct name prefix: "DomainInput.cars[0].carId" -> "cars[0].carId".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "email":
		return "Invalid email format"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", err.Field(), strings.ReplaceAll(err.Param(), " ", ", "))
	case "eq":
		return fmt.Sprintf("%s must be %s", err.Field(), err.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "object_id":
		return "Invalid ID format"
	case "currency_code":
		return "Invalid currency code"
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let required tag handle empty values
	}
	_, err := primitive.ObjectIDFromHex(value)
	return err == nil
}

// validateCurrencyCode accepts the currencies PayPal settles in.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	code := strings.ToUpper(fl.Field().String())
	validCurrencies := []string{"EUR", "USD", "GBP", "CHF", "CAD", "AUD", "JPY", "SEK", "NOK", "DKK", "PLN", "CZK", "HUF"}

	for _, currency := range validCurrencies {
		if code == currency {
			return true
		}
	}
	return false
}
