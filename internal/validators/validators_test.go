package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbooking/internal/models"
)

func strPtr(s string) *string      { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestValidateCarCreate_MissingFields(t *testing.T) {
	errs := ValidateCarCreate(&models.CarInput{Name: strPtr("Sedan")})

	require.Len(t, errs, 3)
	assert.Equal(t, "Missing required fields: type, carType, price", MissingFieldsMessage(errs))
}

func TestValidateCarCreate_Valid(t *testing.T) {
	carType := models.CarTypeTransfer
	errs := ValidateCarCreate(&models.CarInput{
		Name:    strPtr("Mercedes E-Class"),
		Type:    strPtr("Business"),
		CarType: &carType,
		Price:   floatPtr(0),
	})

	assert.Empty(t, errs)
}

func TestValidateCarCreate_BadEnumAndRating(t *testing.T) {
	carType := models.CarType("truck")
	rating := 6.0
	errs := ValidateCarCreate(&models.CarInput{
		Name:    strPtr("X"),
		Type:    strPtr("Y"),
		CarType: &carType,
		Price:   floatPtr(10),
		Rating:  &rating,
	})

	details := errs.Details()
	assert.Contains(t, details, "carType")
	assert.Contains(t, details, "rating")
	assert.Empty(t, MissingFieldsMessage(errs))
}

func TestValidateCarUpdate_EmptyName(t *testing.T) {
	errs := ValidateCarUpdate(&models.CarInput{Name: strPtr("  ")})
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
}

func TestValidateDomainCreate(t *testing.T) {
	errs := ValidateDomainCreate(&models.DomainInput{})
	require.Len(t, errs, 1)
	assert.Equal(t, "domainName", errs[0].Field)

	cars := []models.DomainCarInput{{CarID: "not-an-id"}}
	errs = ValidateDomainCreate(&models.DomainInput{DomainName: strPtr("example.com"), Cars: &cars})
	require.Len(t, errs, 1)
	assert.Equal(t, "cars[0].carId", errs[0].Field)
	assert.Equal(t, "Invalid ID format", errs[0].Message)
}

func TestValidateBookingInput(t *testing.T) {
	errs := ValidateBookingInput(&models.BookingInput{Email: "nope"})
	details := errs.Details()
	assert.Equal(t, "passengerName is required", details["passengerName"])
	assert.Equal(t, "Invalid email format", details["email"])

	errs = ValidateBookingInput(&models.BookingInput{PassengerName: "Ann", Email: "ann@example.com", Currency: "eur"})
	assert.Empty(t, errs)
}

func TestValidateCancelRequest(t *testing.T) {
	assert.Empty(t, ValidateCancelRequest(&CancelRequest{Status: "cancelled"}))
	assert.NotEmpty(t, ValidateCancelRequest(&CancelRequest{Status: "confirmed"}))
	assert.NotEmpty(t, ValidateCancelRequest(&CancelRequest{}))
}

func TestValidateCreateOrder(t *testing.T) {
	assert.Empty(t, ValidateCreateOrder(&CreateOrderRequest{Amount: 12.5, Currency: "EUR"}))
	assert.NotEmpty(t, ValidateCreateOrder(&CreateOrderRequest{Amount: 0}))
	assert.NotEmpty(t, ValidateCreateOrder(&CreateOrderRequest{Amount: 1, Currency: "XXX"}))
}
