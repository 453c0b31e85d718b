package interfaces

import (
	"context"

	"carbooking/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CarFilter struct {
	CarType  models.CarType
	IsActive *bool
}

type CarRepository interface {
	Create(ctx context.Context, car *models.Car) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error)
	List(ctx context.Context, filter CarFilter) ([]*models.Car, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Car, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	// ReplaceAll drops the whole inventory and inserts cars in its place.
	ReplaceAll(ctx context.Context, cars []*models.Car) (int, error)
}
