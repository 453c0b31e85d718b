package email

import (
	"context"
	"net/smtp"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooking() BookingDetails {
	return BookingDetails{
		Reference:      "BK-123456",
		PassengerName:  "Jane <Doe>",
		Email:          "jane@example.com",
		CarName:        "Mercedes E-Class",
		PickupLocation: "Nice Airport",
		TotalPrice:     decimal.RequireFromString("85.5"),
		Currency:       "EUR",
	}
}

func TestPassengerBookingConfirmation(t *testing.T) {
	msg, err := PassengerBookingConfirmation(sampleBooking())
	require.NoError(t, err)

	assert.Equal(t, []string{"jane@example.com"}, msg.To)
	assert.Equal(t, "Booking Confirmation - BK-123456", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "85.50 EUR")
	assert.Contains(t, msg.HTMLBody, "Nice Airport")
	assert.Contains(t, msg.HTMLBody, "Jane &lt;Doe&gt;")
	assert.NotContains(t, msg.HTMLBody, "jane@example.com")
}

func TestAdminBookingNotification(t *testing.T) {
	msg, err := AdminBookingNotification("admin@example.com", sampleBooking())
	require.NoError(t, err)

	assert.Equal(t, []string{"admin@example.com"}, msg.To)
	assert.Equal(t, "jane@example.com", msg.ReplyTo)
	assert.Contains(t, msg.HTMLBody, "jane@example.com")
}

func TestCancellationTemplates(t *testing.T) {
	b := sampleBooking()
	b.CancelledAt = "2024-05-01 10:00 UTC"

	msg, err := PassengerCancellation(b)
	require.NoError(t, err)
	assert.Contains(t, msg.Subject, "Cancelled")
	assert.Contains(t, msg.HTMLBody, "2024-05-01 10:00 UTC")

	msg, err = AdminCancellationNotification("admin@example.com", b)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin@example.com"}, msg.To)
}

func TestSMTPSender_Send(t *testing.T) {
	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotMsg  string
	)

	sender := NewSMTPSender(SMTPConfig{
		Host:      "smtp.example.com",
		Port:      587,
		Username:  "user@example.com",
		Password:  "secret",
		FromEmail: "bookings@example.com",
		FromName:  "Car Booking",
	})
	sender.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, string(msg)
		return nil
	}

	err := sender.Send(context.Background(), &Message{
		To:       []string{"jane@example.com"},
		Subject:  "Hello",
		HTMLBody: "<p>hi</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "bookings@example.com", gotFrom)
	assert.Equal(t, []string{"jane@example.com"}, gotTo)
	assert.True(t, strings.HasPrefix(gotMsg, "From: Car Booking <bookings@example.com>\r\n"))
	assert.Contains(t, gotMsg, "Content-Type: text/html; charset=UTF-8\r\n\r\n<p>hi</p>")
}

func TestSMTPSender_NotConfigured(t *testing.T) {
	sender := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 587})
	err := sender.Send(context.Background(), &Message{To: []string{"a@b.c"}})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
