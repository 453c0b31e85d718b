package validators

import (
	"carbooking/internal/models"
)

func ValidateBookingInput(input *models.BookingInput) ValidationErrors {
	return ValidateStruct(input)
}

// CancelRequest is the only accepted body for a booking status change.
type CancelRequest struct {
	Status string `json:"status" validate:"required,eq=cancelled"`
}

func ValidateCancelRequest(req *CancelRequest) ValidationErrors {
	return ValidateStruct(req)
}

type CreateOrderRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"omitempty,currency_code"`
}

func ValidateCreateOrder(req *CreateOrderRequest) ValidationErrors {
	return ValidateStruct(req)
}
