package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carbooking/internal/models"
	"carbooking/internal/repositories/interfaces"
	"carbooking/internal/utils"
	"carbooking/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) interfaces.BookingRepository {
	return &bookingRepository{
		collection: db.Collection(database.BookingsCollection),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	now := time.Now()
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByReference returns the newest booking carrying reference.
func (r *bookingRepository) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	return r.findOne(ctx, bson.M{"bookingReference": reference},
		options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *bookingRepository) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*models.Booking, error) {
	var booking models.Booking
	err := r.collection.FindOne(ctx, filter, opts...).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context, filter interfaces.BookingFilter, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	query := bson.M{}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, params.FindOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := make([]*models.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, total, nil
}

func (r *bookingRepository) Cancel(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": bson.M{"$ne": models.BookingStatusCancelled}},
		bson.M{"$set": bson.M{
			"status":      models.BookingStatusCancelled,
			"cancelledAt": at,
			"updatedAt":   at,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	if result.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	return nil
}

func (r *bookingRepository) UpdateNotificationStatus(ctx context.Context, id primitive.ObjectID, status models.NotificationStatus) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"notificationStatus": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update notification status: %w", err)
	}

	return nil
}
