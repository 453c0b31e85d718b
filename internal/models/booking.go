package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
	NotificationStatusSkipped NotificationStatus = "skipped"
)

const PaymentMethodPayPal = "paypal"

type Booking struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	BookingReference string             `json:"bookingReference" bson:"bookingReference"`

	PassengerName string `json:"passengerName" bson:"passengerName"`
	Email         string `json:"email" bson:"email"`
	Phone         string `json:"phone,omitempty" bson:"phone,omitempty"`

	CarID           string  `json:"carId,omitempty" bson:"carId,omitempty"`
	CarName         string  `json:"carName,omitempty" bson:"carName,omitempty"`
	CarType         CarType `json:"carType,omitempty" bson:"carType,omitempty"`
	PickupLocation  string  `json:"pickupLocation,omitempty" bson:"pickupLocation,omitempty"`
	DropoffLocation string  `json:"dropoffLocation,omitempty" bson:"dropoffLocation,omitempty"`
	PickupDate      string  `json:"pickupDate,omitempty" bson:"pickupDate,omitempty"`
	PickupTime      string  `json:"pickupTime,omitempty" bson:"pickupTime,omitempty"`
	ReturnDate      string  `json:"returnDate,omitempty" bson:"returnDate,omitempty"`
	ReturnTime      string  `json:"returnTime,omitempty" bson:"returnTime,omitempty"`
	Passengers      int     `json:"passengers,omitempty" bson:"passengers,omitempty"`
	Luggage         int     `json:"luggage,omitempty" bson:"luggage,omitempty"`
	FlightNumber    string  `json:"flightNumber,omitempty" bson:"flightNumber,omitempty"`
	Notes           string  `json:"notes,omitempty" bson:"notes,omitempty"`
	TotalPrice      float64 `json:"totalPrice" bson:"totalPrice"`
	Currency        string  `json:"currency" bson:"currency"`
	Domain          string  `json:"domain,omitempty" bson:"domain,omitempty"`

	Status             BookingStatus      `json:"status" bson:"status"`
	PaymentStatus      PaymentStatus      `json:"paymentStatus" bson:"paymentStatus"`
	PaymentMethod      string             `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	PayPalOrderID      string             `json:"paypalOrderId,omitempty" bson:"paypalOrderId,omitempty"`
	PayPalCaptureID    string             `json:"paypalCaptureId,omitempty" bson:"paypalCaptureId,omitempty"`
	NotificationStatus NotificationStatus `json:"notificationStatus" bson:"notificationStatus"`

	// Extras keeps any payload keys the booking form sent that have no
	// dedicated field.
	Extras map[string]interface{} `json:"extras,omitempty" bson:"extras,omitempty"`

	CancelledAt *time.Time `json:"cancelledAt,omitempty" bson:"cancelledAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}
