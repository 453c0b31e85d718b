package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DomainCar overrides how a single car is presented on a tenant domain.
type DomainCar struct {
	CarID     primitive.ObjectID `json:"carId" bson:"carId" validate:"required"`
	Price     *float64           `json:"price,omitempty" bson:"price,omitempty" validate:"omitempty,gte=0"`
	IsVisible bool               `json:"isVisible" bson:"isVisible"`
}

type Domain struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	DomainName string             `json:"domainName" bson:"domainName" validate:"required"`
	ThemeID    string             `json:"themeId,omitempty" bson:"themeId,omitempty"`
	Cars       []DomainCar        `json:"cars" bson:"cars"`
	IsActive   bool               `json:"isActive" bson:"isActive"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Override returns the per-domain settings for carID, if any.
func (d *Domain) Override(carID primitive.ObjectID) (DomainCar, bool) {
	for _, dc := range d.Cars {
		if dc.CarID == carID {
			return dc, true
		}
	}
	return DomainCar{}, false
}
