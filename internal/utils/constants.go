package utils

const (
	AppName = "CarBooking"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Bookings
	BookingReferencePrefix = "BK-"
	BookingReferenceMin    = 100000
	BookingReferenceMax    = 999999
	CancellationWindowHrs  = 24

	// Car images
	MaxImageWidth  = 1200
	MaxImageHeight = 800
	ImageQuality   = 85
)

// Error messages
const (
	ErrInternalServer      = "Internal server error"
	ErrValidationFailed    = "Validation failed"
	ErrUnauthorized        = "Unauthorized"
	ErrInvalidRequestBody  = "Invalid request body"
	ErrInvalidID           = "Invalid id"
	ErrEmailNotConfigured  = "Email service is not configured"
	ErrWindowExpired       = "Cancellation window expired. Bookings can only be cancelled within 24 hours of creation."
	ErrAlreadyCancelled    = "Booking is already cancelled"
	ErrInvalidStatusChange = "Only status 'cancelled' is supported"
	ErrPaymentNotCompleted = "Payment was not completed"
	ErrDomainExists        = "Domain already exists"
)
