package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CarInput is the decoded body of a car create or update request. A nil
// field was not sent.
type CarInput struct {
	CarType     *CarType `json:"carType" validate:"omitempty,oneof=transfer rental"`
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	Image       *string  `json:"image"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Currency    *string  `json:"currency" validate:"omitempty,currency_code"`
	Description *string  `json:"description"`
	IsActive    *bool    `json:"isActive"`

	Passengers         *int     `json:"passengers" validate:"omitempty,gte=0"`
	MediumLuggage      *int     `json:"mediumLuggage" validate:"omitempty,gte=0"`
	SmallLuggage       *int     `json:"smallLuggage" validate:"omitempty,gte=0"`
	Rating             *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	CancellationPolicy *string  `json:"cancellationPolicy"`

	Category       *string       `json:"category"`
	Seats          *int          `json:"seats" validate:"omitempty,gte=0"`
	Bags           *int          `json:"bags" validate:"omitempty,gte=0"`
	Transmission   *Transmission `json:"transmission" validate:"omitempty,oneof=Automatic Manual"`
	PricePerDay    *float64      `json:"pricePerDay" validate:"omitempty,gte=0"`
	FuelType       *FuelType     `json:"fuelType" validate:"omitempty,oneof=Petrol Diesel Electric Hybrid"`
	PickupLocation *string       `json:"pickupLocation"`
	Features       *[]string     `json:"features"`
}

// MissingRequired lists the creation fields that were not supplied.
func (in *CarInput) MissingRequired() []string {
	var missing []string
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		missing = append(missing, "name")
	}
	if in.Type == nil || strings.TrimSpace(*in.Type) == "" {
		missing = append(missing, "type")
	}
	if in.CarType == nil || *in.CarType == "" {
		missing = append(missing, "carType")
	}
	if in.Price == nil {
		missing = append(missing, "price")
	}
	return missing
}

// NewCar builds a car from a complete creation input.
func (in *CarInput) NewCar() *Car {
	car := &Car{IsActive: true}
	in.apply(car)
	if in.CarType != nil {
		car.CarType = *in.CarType
	}
	car.ApplyDefaults()
	return car
}

// Updates returns the $set document for the fields present. carType is
// never part of an update.
func (in *CarInput) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	setString(u, "name", in.Name)
	setString(u, "type", in.Type)
	setString(u, "image", in.Image)
	setString(u, "currency", in.Currency)
	setString(u, "description", in.Description)
	setString(u, "cancellationPolicy", in.CancellationPolicy)
	setString(u, "category", in.Category)
	setString(u, "pickupLocation", in.PickupLocation)
	if in.Price != nil {
		u["price"] = *in.Price
	}
	if in.IsActive != nil {
		u["isActive"] = *in.IsActive
	}
	setInt(u, "passengers", in.Passengers)
	setInt(u, "mediumLuggage", in.MediumLuggage)
	setInt(u, "smallLuggage", in.SmallLuggage)
	setInt(u, "seats", in.Seats)
	setInt(u, "bags", in.Bags)
	if in.Rating != nil {
		u["rating"] = *in.Rating
	}
	if in.Transmission != nil {
		u["transmission"] = *in.Transmission
	}
	if in.PricePerDay != nil {
		u["pricePerDay"] = *in.PricePerDay
	}
	if in.FuelType != nil {
		u["fuelType"] = *in.FuelType
	}
	if in.Features != nil {
		u["features"] = *in.Features
	}
	return u
}

func (in *CarInput) apply(car *Car) {
	if in.Name != nil {
		car.Name = *in.Name
	}
	if in.Type != nil {
		car.Type = *in.Type
	}
	if in.Image != nil {
		car.Image = *in.Image
	}
	if in.Price != nil {
		car.Price = *in.Price
	}
	if in.Currency != nil {
		car.Currency = *in.Currency
	}
	if in.Description != nil {
		car.Description = *in.Description
	}
	if in.IsActive != nil {
		car.IsActive = *in.IsActive
	}
	if in.Passengers != nil {
		car.Passengers = *in.Passengers
	}
	if in.MediumLuggage != nil {
		car.MediumLuggage = *in.MediumLuggage
	}
	if in.SmallLuggage != nil {
		car.SmallLuggage = *in.SmallLuggage
	}
	if in.Rating != nil {
		car.Rating = *in.Rating
	}
	if in.CancellationPolicy != nil {
		car.CancellationPolicy = *in.CancellationPolicy
	}
	if in.Category != nil {
		car.Category = *in.Category
	}
	if in.Seats != nil {
		car.Seats = *in.Seats
	}
	if in.Bags != nil {
		car.Bags = *in.Bags
	}
	if in.Transmission != nil {
		car.Transmission = *in.Transmission
	}
	if in.PricePerDay != nil {
		car.PricePerDay = *in.PricePerDay
	}
	if in.FuelType != nil {
		car.FuelType = *in.FuelType
	}
	if in.PickupLocation != nil {
		car.PickupLocation = *in.PickupLocation
	}
	if in.Features != nil {
		car.Features = *in.Features
	}
}

func setString(u map[string]interface{}, key string, v *string) {
	if v != nil {
		u[key] = *v
	}
}

func setInt(u map[string]interface{}, key string, v *int) {
	if v != nil {
		u[key] = *v
	}
}

type DomainCarInput struct {
	CarID     string   `json:"carId" validate:"required,object_id"`
	Price     *float64 `json:"price" validate:"omitempty,gte=0"`
	IsVisible *bool    `json:"isVisible"`
}

type DomainInput struct {
	DomainName *string           `json:"domainName"`
	ThemeID    *string           `json:"themeId"`
	Cars       *[]DomainCarInput `json:"cars" validate:"omitempty,dive"`
	IsActive   *bool             `json:"isActive"`
}

func (in *DomainInput) domainCars() []DomainCar {
	if in.Cars == nil {
		return nil
	}
	cars := make([]DomainCar, 0, len(*in.Cars))
	for _, c := range *in.Cars {
		id, _ := primitive.ObjectIDFromHex(c.CarID)
		visible := true
		if c.IsVisible != nil {
			visible = *c.IsVisible
		}
		cars = append(cars, DomainCar{CarID: id, Price: c.Price, IsVisible: visible})
	}
	return cars
}

func (in *DomainInput) NewDomain() *Domain {
	d := &Domain{IsActive: true, Cars: []DomainCar{}}
	if in.DomainName != nil {
		d.DomainName = strings.TrimSpace(*in.DomainName)
	}
	if in.ThemeID != nil {
		d.ThemeID = *in.ThemeID
	}
	if cars := in.domainCars(); cars != nil {
		d.Cars = cars
	}
	if in.IsActive != nil {
		d.IsActive = *in.IsActive
	}
	return d
}

func (in *DomainInput) Updates() map[string]interface{} {
	u := map[string]interface{}{}
	if in.DomainName != nil {
		u["domainName"] = strings.TrimSpace(*in.DomainName)
	}
	setString(u, "themeId", in.ThemeID)
	if in.Cars != nil {
		u["cars"] = in.domainCars()
	}
	if in.IsActive != nil {
		u["isActive"] = *in.IsActive
	}
	return u
}

// BookingInput is one booking request regardless of whether it arrived as
// JSON or as a form.
type BookingInput struct {
	PassengerName   string  `json:"passengerName" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           string  `json:"phone"`
	CarID           string  `json:"carId"`
	CarName         string  `json:"carName"`
	CarType         string  `json:"carType" validate:"omitempty,oneof=transfer rental"`
	PickupLocation  string  `json:"pickupLocation"`
	DropoffLocation string  `json:"dropoffLocation"`
	PickupDate      string  `json:"pickupDate"`
	PickupTime      string  `json:"pickupTime"`
	ReturnDate      string  `json:"returnDate"`
	ReturnTime      string  `json:"returnTime"`
	Passengers      int     `json:"passengers" validate:"gte=0"`
	Luggage         int     `json:"luggage" validate:"gte=0"`
	FlightNumber    string  `json:"flightNumber"`
	Notes           string  `json:"notes"`
	TotalPrice      float64 `json:"totalPrice" validate:"gte=0"`
	Currency        string  `json:"currency" validate:"omitempty,currency_code"`
	Domain          string  `json:"domain"`

	Extras map[string]interface{} `json:"-"`
}

func (in *BookingInput) NewBooking(reference string) *Booking {
	currency := in.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Booking{
		BookingReference:   reference,
		PassengerName:      in.PassengerName,
		Email:              in.Email,
		Phone:              in.Phone,
		CarID:              in.CarID,
		CarName:            in.CarName,
		CarType:            CarType(in.CarType),
		PickupLocation:     in.PickupLocation,
		DropoffLocation:    in.DropoffLocation,
		PickupDate:         in.PickupDate,
		PickupTime:         in.PickupTime,
		ReturnDate:         in.ReturnDate,
		ReturnTime:         in.ReturnTime,
		Passengers:         in.Passengers,
		Luggage:            in.Luggage,
		FlightNumber:       in.FlightNumber,
		Notes:              in.Notes,
		TotalPrice:         in.TotalPrice,
		Currency:           currency,
		Domain:             in.Domain,
		Status:             BookingStatusConfirmed,
		PaymentStatus:      PaymentStatusPending,
		NotificationStatus: NotificationStatusPending,
		Extras:             in.Extras,
	}
}
