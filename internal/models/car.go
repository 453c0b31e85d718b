package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CarType string

const (
	CarTypeTransfer CarType = "transfer"
	CarTypeRental   CarType = "rental"
)

func (t CarType) IsValid() bool {
	return t == CarTypeTransfer || t == CarTypeRental
}

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

type FuelType string

const (
	FuelTypePetrol   FuelType = "Petrol"
	FuelTypeDiesel   FuelType = "Diesel"
	FuelTypeElectric FuelType = "Electric"
	FuelTypeHybrid   FuelType = "Hybrid"
)

const DefaultCurrency = "EUR"

// Car is a vehicle offered either as a chauffeured transfer or as a
// self-drive rental. carType is fixed once the car is created.
type Car struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CarType     CarType            `json:"carType" bson:"carType" validate:"required,oneof=transfer rental"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Type        string             `json:"type" bson:"type" validate:"required"`
	Image       string             `json:"image" bson:"image"`
	Price       float64            `json:"price" bson:"price" validate:"gte=0"`
	Currency    string             `json:"currency" bson:"currency"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	IsActive    bool               `json:"isActive" bson:"isActive"`

	// Transfer
	Passengers         int     `json:"passengers" bson:"passengers"`
	MediumLuggage      int     `json:"mediumLuggage" bson:"mediumLuggage"`
	SmallLuggage       int     `json:"smallLuggage" bson:"smallLuggage"`
	Rating             float64 `json:"rating,omitempty" bson:"rating,omitempty" validate:"gte=0,lte=5"`
	CancellationPolicy string  `json:"cancellationPolicy,omitempty" bson:"cancellationPolicy,omitempty"`

	// Rental
	Category       string       `json:"category,omitempty" bson:"category,omitempty"`
	Seats          int          `json:"seats,omitempty" bson:"seats,omitempty"`
	Bags           int          `json:"bags,omitempty" bson:"bags,omitempty"`
	Transmission   Transmission `json:"transmission,omitempty" bson:"transmission,omitempty" validate:"omitempty,oneof=Automatic Manual"`
	PricePerDay    float64      `json:"pricePerDay,omitempty" bson:"pricePerDay,omitempty"`
	FuelType       FuelType     `json:"fuelType,omitempty" bson:"fuelType,omitempty" validate:"omitempty,oneof=Petrol Diesel Electric Hybrid"`
	PickupLocation string       `json:"pickupLocation,omitempty" bson:"pickupLocation,omitempty"`
	Features       []string     `json:"features,omitempty" bson:"features,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ApplyDefaults fills the values a freshly created car gets when the
// request left them out.
func (c *Car) ApplyDefaults() {
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
}
