package payment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusCompleted = "COMPLETED"
	IntentCapture        = "CAPTURE"
)

// OrderProvider is a two-phase checkout: an order is created for an amount,
// approved by the buyer in the provider's UI and then captured.
type OrderProvider interface {
	CreateOrder(ctx context.Context, request *CreateOrderRequest) (*Order, error)
	CaptureOrder(ctx context.Context, orderID string) (*Capture, error)
}

type CreateOrderRequest struct {
	Amount      decimal.Decimal
	Currency    string
	Description string
	ReferenceID string
}

// Order is the provider's order object. Raw holds the full response body.
type Order struct {
	ID     string                 `json:"id"`
	Status string                 `json:"status"`
	Raw    map[string]interface{} `json:"-"`
}

type Capture struct {
	OrderID   string                 `json:"orderId"`
	Status    string                 `json:"status"`
	CaptureID string                 `json:"captureId"`
	Amount    string                 `json:"amount,omitempty"`
	Currency  string                 `json:"currency,omitempty"`
	Raw       map[string]interface{} `json:"-"`
}

func (c *Capture) Completed() bool {
	return c != nil && c.Status == OrderStatusCompleted
}

// APIError is returned when the provider answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paypal api error (status %d): %s", e.StatusCode, e.Body)
}
