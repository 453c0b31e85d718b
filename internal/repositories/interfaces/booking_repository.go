package interfaces

import (
	"context"
	"time"

	"carbooking/internal/models"
	"carbooking/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingFilter struct {
	Email  string
	Status models.BookingStatus
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
	List(ctx context.Context, filter BookingFilter, params *utils.PaginationParams) ([]*models.Booking, int64, error)

	// Cancel flips a not yet cancelled booking to cancelled. ErrNotFound is
	// returned when no such booking matches.
	Cancel(ctx context.Context, id primitive.ObjectID, at time.Time) error
	UpdateNotificationStatus(ctx context.Context, id primitive.ObjectID, status models.NotificationStatus) error
}
