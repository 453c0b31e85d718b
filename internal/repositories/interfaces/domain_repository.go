package interfaces

import (
	"context"

	"carbooking/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DomainRepository interface {
	Create(ctx context.Context, domain *models.Domain) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Domain, error)
	// GetByName matches the whole name case-insensitively.
	GetByName(ctx context.Context, name string) (*models.Domain, error)
	List(ctx context.Context) ([]*models.Domain, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Domain, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
