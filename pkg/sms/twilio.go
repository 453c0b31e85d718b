package sms

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

type TwilioProvider struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewTwilioProvider(accountSID, authToken, fromNumber string) *TwilioProvider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioProvider{
		client:     client,
		fromNumber: fromNumber,
	}
}

func (t *TwilioProvider) SendSMS(ctx context.Context, request *SMSRequest) (*SMSResponse, error) {
	from := request.From
	if from == "" {
		from = t.fromNumber
	}

	params := &api.CreateMessageParams{}
	params.SetTo(request.To)
	params.SetFrom(from)
	params.SetBody(request.Message)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return nil, fmt.Errorf("failed to send sms via twilio: %w", err)
	}

	out := &SMSResponse{Status: "queued"}
	if resp.Sid != nil {
		out.MessageID = *resp.Sid
	}
	if resp.Status != nil {
		out.Status = string(*resp.Status)
	}

	return out, nil
}
