package services

import "errors"

var (
	ErrInvalidID                 = errors.New("invalid id")
	ErrCarNotFound               = errors.New("car not found")
	ErrCarTypeImmutable          = errors.New("carType cannot be changed after creation")
	ErrDomainNotFound            = errors.New("domain not found")
	ErrDomainExists              = errors.New("domain already exists")
	ErrBookingNotFound           = errors.New("booking not found")
	ErrCancellationWindowExpired = errors.New("cancellation window expired")
	ErrAlreadyCancelled          = errors.New("booking is already cancelled")
	ErrEmailNotConfigured        = errors.New("email service is not configured")
	ErrPaymentNotConfigured      = errors.New("payment provider is not configured")
	ErrPaymentNotCompleted       = errors.New("payment was not completed")
	ErrImageStorageDisabled      = errors.New("image storage is not configured")
)
