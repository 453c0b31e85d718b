package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"
)

// BookingDetails is the view of a booking rendered into emails.
type BookingDetails struct {
	Reference       string
	PassengerName   string
	Email           string
	Phone           string
	CarName         string
	CarType         string
	PickupLocation  string
	DropoffLocation string
	PickupDate      string
	PickupTime      string
	ReturnDate      string
	ReturnTime      string
	Passengers      int
	Luggage         int
	FlightNumber    string
	Notes           string
	TotalPrice      decimal.Decimal
	Currency        string
	PaymentStatus   string
	PaymentMethod   string
	Domain          string
	CancelledAt     string
}

func (d BookingDetails) Total() string {
	return d.TotalPrice.StringFixed(2) + " " + d.Currency
}

const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html><body style="font-family: Arial, sans-serif; color: #1f2937; background: #f3f4f6; padding: 24px;">
<div style="max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 8px; overflow: hidden;">
<div style="background: {{.Accent}}; color: #ffffff; padding: 20px;"><h1 style="margin: 0; font-size: 22px;">{{.Title}}</h1></div>
<div style="padding: 24px;">
{{template "body" .}}
<table style="width: 100%; border-collapse: collapse; margin-top: 16px;">
<tr><td style="padding: 6px 0; color: #6b7280;">Reference</td><td><strong>{{.B.Reference}}</strong></td></tr>
<tr><td style="padding: 6px 0; color: #6b7280;">Passenger</td><td>{{.B.PassengerName}}</td></tr>
{{if .ShowContact}}<tr><td style="padding: 6px 0; color: #6b7280;">Email</td><td>{{.B.Email}}</td></tr>
{{if .B.Phone}}<tr><td style="padding: 6px 0; color: #6b7280;">Phone</td><td>{{.B.Phone}}</td></tr>{{end}}{{end}}
{{if .B.CarName}}<tr><td style="padding: 6px 0; color: #6b7280;">Vehicle</td><td>{{.B.CarName}}{{if .B.CarType}} ({{.B.CarType}}){{end}}</td></tr>{{end}}
{{if .B.PickupLocation}}<tr><td style="padding: 6px 0; color: #6b7280;">Pickup</td><td>{{.B.PickupLocation}}</td></tr>{{end}}
{{if .B.DropoffLocation}}<tr><td style="padding: 6px 0; color: #6b7280;">Drop-off</td><td>{{.B.DropoffLocation}}</td></tr>{{end}}
{{if .B.PickupDate}}<tr><td style="padding: 6px 0; color: #6b7280;">Pickup date</td><td>{{.B.PickupDate}} {{.B.PickupTime}}</td></tr>{{end}}
{{if .B.ReturnDate}}<tr><td style="padding: 6px 0; color: #6b7280;">Return date</td><td>{{.B.ReturnDate}} {{.B.ReturnTime}}</td></tr>{{end}}
{{if .B.Passengers}}<tr><td style="padding: 6px 0; color: #6b7280;">Passengers</td><td>{{.B.Passengers}}</td></tr>{{end}}
{{if .B.Luggage}}<tr><td style="padding: 6px 0; color: #6b7280;">Luggage</td><td>{{.B.Luggage}}</td></tr>{{end}}
{{if .B.FlightNumber}}<tr><td style="padding: 6px 0; color: #6b7280;">Flight</td><td>{{.B.FlightNumber}}</td></tr>{{end}}
{{if .B.Notes}}<tr><td style="padding: 6px 0; color: #6b7280;">Notes</td><td>{{.B.Notes}}</td></tr>{{end}}
<tr><td style="padding: 6px 0; color: #6b7280;">Total</td><td><strong>{{.B.Total}}</strong></td></tr>
{{if .B.PaymentStatus}}<tr><td style="padding: 6px 0; color: #6b7280;">Payment</td><td>{{.B.PaymentStatus}}{{if .B.PaymentMethod}} via {{.B.PaymentMethod}}{{end}}</td></tr>{{end}}
{{if .B.Domain}}<tr><td style="padding: 6px 0; color: #6b7280;">Site</td><td>{{.B.Domain}}</td></tr>{{end}}
</table>
</div></div></body></html>{{end}}`

var (
	passengerBookingTmpl = mustParse(`{{define "body"}}<p>Dear {{.B.PassengerName}},</p>
<p>Thank you for your booking. Your reservation is confirmed. Keep your reference handy: you can cancel free of charge within 24 hours of booking.</p>{{end}}`)

	adminBookingTmpl = mustParse(`{{define "body"}}<p>A new booking has been received.</p>{{end}}`)

	passengerCancelTmpl = mustParse(`{{define "body"}}<p>Dear {{.B.PassengerName}},</p>
<p>Your booking has been cancelled{{if .B.CancelledAt}} on {{.B.CancelledAt}}{{end}}. If this was a mistake please make a new booking.</p>{{end}}`)

	adminCancelTmpl = mustParse(`{{define "body"}}<p>A booking has been cancelled by the passenger{{if .B.CancelledAt}} at {{.B.CancelledAt}}{{end}}.</p>{{end}}`)
)

func mustParse(body string) *template.Template {
	return template.Must(template.Must(template.New("email").Parse(layoutTemplate)).Parse(body))
}

type templateData struct {
	Title       string
	Accent      string
	ShowContact bool
	B           BookingDetails
}

func render(t *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", fmt.Errorf("failed to render email: %w", err)
	}
	return buf.String(), nil
}

func PassengerBookingConfirmation(b BookingDetails) (*Message, error) {
	body, err := render(passengerBookingTmpl, templateData{Title: "Booking Confirmed", Accent: "#1e40af", B: b})
	if err != nil {
		return nil, err
	}
	return &Message{
		To:       []string{b.Email},
		Subject:  "Booking Confirmation - " + b.Reference,
		HTMLBody: body,
	}, nil
}

func AdminBookingNotification(adminEmail string, b BookingDetails) (*Message, error) {
	body, err := render(adminBookingTmpl, templateData{Title: "New Booking", Accent: "#047857", ShowContact: true, B: b})
	if err != nil {
		return nil, err
	}
	return &Message{
		To:       []string{adminEmail},
		ReplyTo:  b.Email,
		Subject:  "New Booking - " + b.Reference,
		HTMLBody: body,
	}, nil
}

func PassengerCancellation(b BookingDetails) (*Message, error) {
	body, err := render(passengerCancelTmpl, templateData{Title: "Booking Cancelled", Accent: "#b91c1c", B: b})
	if err != nil {
		return nil, err
	}
	return &Message{
		To:       []string{b.Email},
		Subject:  "Booking Cancelled - " + b.Reference,
		HTMLBody: body,
	}, nil
}

func AdminCancellationNotification(adminEmail string, b BookingDetails) (*Message, error) {
	body, err := render(adminCancelTmpl, templateData{Title: "Booking Cancelled", Accent: "#b91c1c", ShowContact: true, B: b})
	if err != nil {
		return nil, err
	}
	return &Message{
		To:       []string{adminEmail},
		ReplyTo:  b.Email,
		Subject:  "Booking Cancelled - " + b.Reference,
		HTMLBody: body,
	}, nil
}
