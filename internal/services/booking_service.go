package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carbooking/internal/models"
	"carbooking/internal/repositories/interfaces"
	"carbooking/internal/utils"
	"carbooking/pkg/logger"
)

type BookingService interface {
	// CreateBooking refuses to write anything unless email is configured.
	CreateBooking(ctx context.Context, input *models.BookingInput) (*models.Booking, error)
	// CreatePaidBooking records a booking for a captured PayPal order.
	CreatePaidBooking(ctx context.Context, input *models.BookingInput, orderID, captureID string) (*models.Booking, error)
	GetBooking(ctx context.Context, reference string) (*models.Booking, error)
	ListBookings(ctx context.Context, filter interfaces.BookingFilter, params *utils.PaginationParams) ([]*models.Booking, int64, error)
	CancelBooking(ctx context.Context, reference string) (*models.Booking, error)
}

type bookingService struct {
	bookingRepo interfaces.BookingRepository
	notifier    NotificationService
	logger      *logger.Logger
	now         func() time.Time
}

func NewBookingService(
	bookingRepo interfaces.BookingRepository,
	notifier NotificationService,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      log,
		now:         time.Now,
	}
}

// CanCancel reports whether a booking created at createdAt may be cancelled
// at now. The window is checked before the current status.
func CanCancel(createdAt, now time.Time, status models.BookingStatus) error {
	elapsedHours := now.Sub(createdAt).Hours()
	if elapsedHours > utils.CancellationWindowHrs {
		return ErrCancellationWindowExpired
	}
	if status == models.BookingStatusCancelled {
		return ErrAlreadyCancelled
	}
	return nil
}

func (s *bookingService) CreateBooking(ctx context.Context, input *models.BookingInput) (*models.Booking, error) {
	if !s.notifier.EmailConfigured() {
		return nil, ErrEmailNotConfigured
	}

	booking := input.NewBooking(utils.GenerateBookingReference())
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.LogBookingEvent(booking.BookingReference, "created", map[string]interface{}{
		"email":  booking.Email,
		"car":    booking.CarName,
		"domain": booking.Domain,
	})

	s.notify(ctx, booking)
	return booking, nil
}

func (s *bookingService) CreatePaidBooking(ctx context.Context, input *models.BookingInput, orderID, captureID string) (*models.Booking, error) {
	booking := input.NewBooking(utils.GenerateBookingReference())
	booking.PaymentStatus = models.PaymentStatusPaid
	booking.PaymentMethod = models.PaymentMethodPayPal
	booking.PayPalOrderID = orderID
	booking.PayPalCaptureID = captureID

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.LogBookingEvent(booking.BookingReference, "created", map[string]interface{}{
		"email":          booking.Email,
		"payment_method": booking.PaymentMethod,
		"paypal_order":   orderID,
	})

	s.notify(ctx, booking)
	return booking, nil
}

// notify is the second step after a booking is persisted. Its outcome is
// recorded on the booking and never fails the request.
func (s *bookingService) notify(ctx context.Context, booking *models.Booking) {
	status := models.NotificationStatusSent
	if err := s.notifier.NotifyBookingCreated(ctx, booking); err != nil {
		if errors.Is(err, ErrEmailNotConfigured) {
			status = models.NotificationStatusSkipped
		} else {
			status = models.NotificationStatusFailed
			s.logger.WithBookingReference(booking.BookingReference).WithError(err).
				Error("Booking persisted but notification failed")
		}
	}

	booking.NotificationStatus = status
	if err := s.bookingRepo.UpdateNotificationStatus(ctx, booking.ID, status); err != nil {
		s.logger.WithBookingReference(booking.BookingReference).WithError(err).
			Warn("Failed to record notification status")
	}
}

func (s *bookingService) GetBooking(ctx context.Context, reference string) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, filter interfaces.BookingFilter, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	return s.bookingRepo.List(ctx, filter, params)
}

func (s *bookingService) CancelBooking(ctx context.Context, reference string) (*models.Booking, error) {
	booking, err := s.GetBooking(ctx, reference)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := CanCancel(booking.CreatedAt, now, booking.Status); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Cancel(ctx, booking.ID, now); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			// Lost a race with another cancel.
			return nil, ErrAlreadyCancelled
		}
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	booking.Status = models.BookingStatusCancelled
	booking.CancelledAt = &now
	booking.UpdatedAt = now

	s.logger.LogBookingEvent(booking.BookingReference, "cancelled", map[string]interface{}{
		"email": booking.Email,
	})

	if err := s.notifier.NotifyBookingCancelled(ctx, booking); err != nil {
		if errors.Is(err, ErrEmailNotConfigured) {
			s.logger.WithBookingReference(booking.BookingReference).Debug("Email not configured, cancellation emails skipped")
		} else {
			s.logger.WithBookingReference(booking.BookingReference).WithError(err).Error("Failed to send cancellation emails")
		}
	}

	return booking, nil
}
