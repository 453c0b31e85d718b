package sms

import "context"

// SMSProvider sends booking confirmations to the passenger's phone.
type SMSProvider interface {
	SendSMS(ctx context.Context, request *SMSRequest) (*SMSResponse, error)
}

type SMSRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
}

type SMSResponse struct {
	MessageID string `json:"messageId"`
	Status    string `json:"status"`
}
