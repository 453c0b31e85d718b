package services

import (
	"context"
	"fmt"
	"strings"

	"carbooking/internal/models"
	"carbooking/pkg/logger"
	"carbooking/pkg/payment"

	"github.com/shopspring/decimal"
)

type PaymentService interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency string) (*payment.Order, error)
	// CaptureOrder captures a buyer-approved order and, only when the
	// provider reports COMPLETED, persists the paid booking.
	CaptureOrder(ctx context.Context, orderID string, bookingData *models.BookingInput) (*models.Booking, error)
}

type paymentService struct {
	provider        payment.OrderProvider
	bookings        BookingService
	defaultCurrency string
	logger          *logger.Logger
}

func NewPaymentService(
	provider payment.OrderProvider,
	bookings BookingService,
	defaultCurrency string,
	log *logger.Logger,
) PaymentService {
	if defaultCurrency == "" {
		defaultCurrency = models.DefaultCurrency
	}
	return &paymentService{
		provider:        provider,
		bookings:        bookings,
		defaultCurrency: defaultCurrency,
		logger:          log,
	}
}

func (s *paymentService) CreateOrder(ctx context.Context, amount decimal.Decimal, currency string) (*payment.Order, error) {
	if s.provider == nil {
		return nil, ErrPaymentNotConfigured
	}
	if currency == "" {
		currency = s.defaultCurrency
	}

	order, err := s.provider.CreateOrder(ctx, &payment.CreateOrderRequest{
		Amount:      amount,
		Currency:    strings.ToUpper(currency),
		Description: "Car booking",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create paypal order: %w", err)
	}

	s.logger.LogPaymentEvent(order.ID, "order_created", amount.StringFixed(2), strings.ToUpper(currency))
	return order, nil
}

func (s *paymentService) CaptureOrder(ctx context.Context, orderID string, bookingData *models.BookingInput) (*models.Booking, error) {
	if s.provider == nil {
		return nil, ErrPaymentNotConfigured
	}

	capture, err := s.provider.CaptureOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to capture paypal order: %w", err)
	}

	s.logger.LogPaymentEvent(orderID, "order_captured_"+strings.ToLower(capture.Status), capture.Amount, capture.Currency)

	if !capture.Completed() {
		return nil, fmt.Errorf("%w: status %s", ErrPaymentNotCompleted, capture.Status)
	}

	booking, err := s.bookings.CreatePaidBooking(ctx, bookingData, orderID, capture.CaptureID)
	if err != nil {
		s.logger.WithField("order_id", orderID).WithError(err).Error("Payment captured but booking could not be saved")
		return nil, err
	}

	return booking, nil
}
