package config

import "time"

type PaymentConfig struct {
	PayPal   *PayPalConfig `yaml:"paypal"`
	Currency string        `yaml:"currency"`
}

type PayPalConfig struct {
	ClientID     string        `yaml:"client_id"`
	ClientSecret string        `yaml:"client_secret"`
	Mode         string        `yaml:"mode"` // sandbox or live
	BaseURL      string        `yaml:"base_url"`
	Timeout      time.Duration `yaml:"timeout"`
}

func loadPaymentConfig() *PaymentConfig {
	return &PaymentConfig{
		PayPal: &PayPalConfig{
			ClientID:     firstEnv("", "NEXT_PUBLIC_PAYPAL_CLIENT_ID", "PAYPAL_CLIENT_ID"),
			ClientSecret: getEnv("PAYPAL_CLIENT_SECRET", ""),
			Mode:         getEnv("PAYPAL_MODE", "sandbox"),
			BaseURL:      getEnv("PAYPAL_BASE_URL", ""),
			Timeout:      getEnvAsDuration("PAYPAL_TIMEOUT", 30*time.Second),
		},
		Currency: getEnv("PAYMENT_CURRENCY", "EUR"),
	}
}
