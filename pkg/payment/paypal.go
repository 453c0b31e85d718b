package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	PayPalSandboxURL = "https://api-m.sandbox.paypal.com"
	PayPalLiveURL    = "https://api-m.paypal.com"
)

type PayPalProvider struct {
	baseURL    string
	httpClient *http.Client
}

type PayPalConfig struct {
	ClientID     string
	ClientSecret string
	Mode         string // sandbox or live
	BaseURL      string // overrides Mode when set
	Timeout      time.Duration
}

type payPalOrderRequest struct {
	Intent        string               `json:"intent"`
	PurchaseUnits []payPalPurchaseUnit `json:"purchase_units"`
}

type payPalPurchaseUnit struct {
	Amount      payPalAmount `json:"amount"`
	Description string       `json:"description,omitempty"`
	ReferenceID string       `json:"reference_id,omitempty"`
}

type payPalAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type payPalCaptureResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID     string       `json:"id"`
				Status string       `json:"status"`
				Amount payPalAmount `json:"amount"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

// NewPayPalProvider builds a provider whose HTTP client fetches and caches
// client-credentials tokens from /v1/oauth2/token.
func NewPayPalProvider(config *PayPalConfig) *PayPalProvider {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = PayPalSandboxURL
		if config.Mode == "live" {
			baseURL = PayPalLiveURL
		}
	}
	baseURL = strings.TrimRight(baseURL, "/")

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	credentials := &clientcredentials.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		TokenURL:     baseURL + "/v1/oauth2/token",
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: timeout})
	client := credentials.Client(tokenCtx)
	client.Timeout = timeout

	return &PayPalProvider{
		baseURL:    baseURL,
		httpClient: client,
	}
}

func (p *PayPalProvider) CreateOrder(ctx context.Context, request *CreateOrderRequest) (*Order, error) {
	if !request.Amount.IsPositive() {
		return nil, errors.New("amount must be greater than zero")
	}

	body := payPalOrderRequest{
		Intent: IntentCapture,
		PurchaseUnits: []payPalPurchaseUnit{
			{
				Amount: payPalAmount{
					CurrencyCode: strings.ToUpper(request.Currency),
					Value:        request.Amount.StringFixed(2),
				},
				Description: request.Description,
				ReferenceID: request.ReferenceID,
			},
		},
	}

	raw, err := p.do(ctx, http.MethodPost, "/v2/checkout/orders", body)
	if err != nil {
		return nil, err
	}

	var order Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}
	if err := json.Unmarshal(raw, &order.Raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}

	return &order, nil
}

func (p *PayPalProvider) CaptureOrder(ctx context.Context, orderID string) (*Capture, error) {
	if orderID == "" {
		return nil, errors.New("order id is required")
	}

	raw, err := p.do(ctx, http.MethodPost, "/v2/checkout/orders/"+url.PathEscape(orderID)+"/capture", nil)
	if err != nil {
		return nil, err
	}

	var resp payPalCaptureResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal capture: %w", err)
	}

	capture := &Capture{
		OrderID: resp.ID,
		Status:  resp.Status,
	}
	if capture.OrderID == "" {
		capture.OrderID = orderID
	}
	if len(resp.PurchaseUnits) > 0 && len(resp.PurchaseUnits[0].Payments.Captures) > 0 {
		first := resp.PurchaseUnits[0].Payments.Captures[0]
		capture.CaptureID = first.ID
		capture.Amount = first.Amount.Value
		capture.Currency = first.Amount.CurrencyCode
	}
	if err := json.Unmarshal(raw, &capture.Raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal capture: %w", err)
	}

	return capture, nil
}

func (p *PayPalProvider) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader = http.NoBody
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
