package services

import (
	"context"
	"errors"
	"fmt"

	"carbooking/internal/models"
	"carbooking/pkg/email"
	"carbooking/pkg/logger"
	"carbooking/pkg/sms"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const EventBookingCreated = "booking.created"
const EventBookingCancelled = "booking.cancelled"

// EventPublisher fans booking events out to live admin clients.
type EventPublisher interface {
	Publish(eventType string, data interface{})
}

type NotificationService interface {
	EmailConfigured() bool
	// NotifyBookingCreated mails the admin and the passenger in parallel and
	// then sends the optional SMS and realtime event. Only email failures are
	// returned.
	NotifyBookingCreated(ctx context.Context, booking *models.Booking) error
	// NotifyBookingCancelled returns ErrEmailNotConfigured when no mail was
	// attempted.
	NotifyBookingCancelled(ctx context.Context, booking *models.Booking) error
}

type NotificationConfig struct {
	AdminEmail string
	SMSFrom    string
}

type notificationService struct {
	sender email.Sender
	sms    sms.SMSProvider
	events EventPublisher
	config NotificationConfig
	logger *logger.Logger
}

// NewNotificationService wires the outbound channels. sender, smsProvider
// and events may each be nil.
func NewNotificationService(
	sender email.Sender,
	smsProvider sms.SMSProvider,
	events EventPublisher,
	config NotificationConfig,
	log *logger.Logger,
) NotificationService {
	return &notificationService{
		sender: sender,
		sms:    smsProvider,
		events: events,
		config: config,
		logger: log,
	}
}

func (s *notificationService) EmailConfigured() bool {
	return s.sender != nil
}

func (s *notificationService) NotifyBookingCreated(ctx context.Context, booking *models.Booking) error {
	details := bookingDetails(booking)
	var mailErr error

	if s.sender == nil {
		mailErr = ErrEmailNotConfigured
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			msg, err := email.AdminBookingNotification(s.config.AdminEmail, details)
			if err != nil {
				return err
			}
			if err := s.sender.Send(gctx, msg); err != nil {
				return fmt.Errorf("failed to send admin booking email: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			msg, err := email.PassengerBookingConfirmation(details)
			if err != nil {
				return err
			}
			if err := s.sender.Send(gctx, msg); err != nil {
				return fmt.Errorf("failed to send passenger booking email: %w", err)
			}
			return nil
		})
		mailErr = g.Wait()
	}

	s.sendSMS(ctx, booking, fmt.Sprintf("Your booking %s is confirmed. Pickup %s %s at %s.",
		booking.BookingReference, booking.PickupDate, booking.PickupTime, booking.PickupLocation))

	if s.events != nil {
		s.events.Publish(EventBookingCreated, booking)
	}

	return mailErr
}

func (s *notificationService) NotifyBookingCancelled(ctx context.Context, booking *models.Booking) error {
	if s.events != nil {
		s.events.Publish(EventBookingCancelled, booking)
	}

	if s.sender == nil {
		return ErrEmailNotConfigured
	}

	details := bookingDetails(booking)
	adminMsg, err := email.AdminCancellationNotification(s.config.AdminEmail, details)
	if err != nil {
		return err
	}
	passengerMsg, err := email.PassengerCancellation(details)
	if err != nil {
		return err
	}

	var errs []error
	if err := s.sender.Send(ctx, adminMsg); err != nil {
		errs = append(errs, fmt.Errorf("failed to send admin cancellation email: %w", err))
	}
	if err := s.sender.Send(ctx, passengerMsg); err != nil {
		errs = append(errs, fmt.Errorf("failed to send passenger cancellation email: %w", err))
	}
	return errors.Join(errs...)
}

func (s *notificationService) sendSMS(ctx context.Context, booking *models.Booking, text string) {
	if s.sms == nil || booking.Phone == "" {
		return
	}

	resp, err := s.sms.SendSMS(ctx, &sms.SMSRequest{
		To:      booking.Phone,
		From:    s.config.SMSFrom,
		Message: text,
	})
	if err != nil {
		s.logger.WithBookingReference(booking.BookingReference).WithError(err).Warn("Failed to send booking SMS")
		return
	}
	s.logger.WithBookingReference(booking.BookingReference).WithField("message_id", resp.MessageID).Debug("Booking SMS sent")
}

func bookingDetails(b *models.Booking) email.BookingDetails {
	details := email.BookingDetails{
		Reference:       b.BookingReference,
		PassengerName:   b.PassengerName,
		Email:           b.Email,
		Phone:           b.Phone,
		CarName:         b.CarName,
		CarType:         string(b.CarType),
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
		PickupDate:      b.PickupDate,
		PickupTime:      b.PickupTime,
		ReturnDate:      b.ReturnDate,
		ReturnTime:      b.ReturnTime,
		Passengers:      b.Passengers,
		Luggage:         b.Luggage,
		FlightNumber:    b.FlightNumber,
		Notes:           b.Notes,
		TotalPrice:      decimal.NewFromFloat(b.TotalPrice),
		Currency:        b.Currency,
		PaymentStatus:   string(b.PaymentStatus),
		PaymentMethod:   b.PaymentMethod,
		Domain:          b.Domain,
	}
	if b.CancelledAt != nil {
		details.CancelledAt = b.CancelledAt.UTC().Format("2006-01-02 15:04 MST")
	}
	return details
}
