package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"MAPS_PROVIDER", "PAYPAL_MODE", "ADMIN_PATH_PREFIXES", "STORAGE_PROVIDER"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "tomtom", cfg.Maps.Provider)
	assert.Equal(t, "sandbox", cfg.Payment.PayPal.Mode)
	assert.Equal(t, []string{"/admin"}, cfg.Auth.AdminPathPrefixes)
	assert.Equal(t, "local", cfg.Storage.Provider)
}

func TestLoadReadsLegacyVariableNames(t *testing.T) {
	t.Setenv("EMAIL_USER", "ops@example.com")
	t.Setenv("EMAIL_PASS", "secret")
	t.Setenv("NEXT_PUBLIC_PAYPAL_CLIENT_ID", "client")
	t.Setenv("NEXT_PUBLIC_TOMTOM_API_KEY", "tomtom-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.SMTP.Configured())
	assert.Equal(t, "ops@example.com", cfg.SMTP.FromEmail)
	assert.Equal(t, "client", cfg.Payment.PayPal.ClientID)
	assert.Equal(t, "tomtom-key", cfg.Maps.TomTom.APIKey)
}

func TestSMTPConfiguredNeedsBothCredentials(t *testing.T) {
	t.Setenv("EMAIL_USER", "ops@example.com")
	t.Setenv("EMAIL_PASS", "")
	t.Setenv("SMTP_PASSWORD", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.SMTP.Configured())
}

func TestAuthEnabledNeedsBothKeys(t *testing.T) {
	assert.False(t, (&AuthConfig{ClerkPublishableKey: "pk"}).Enabled())
	assert.False(t, (&AuthConfig{ClerkSecretKey: "sk"}).Enabled())
	assert.True(t, (&AuthConfig{ClerkPublishableKey: "pk", ClerkSecretKey: "sk"}).Enabled())

	var nilConfig *AuthConfig
	assert.False(t, nilConfig.Enabled())
}

func TestParseHelpersFallBackOnMalformedValues(t *testing.T) {
	t.Setenv("TEST_INT", "abc")
	t.Setenv("TEST_DURATION", "5s")
	t.Setenv("TEST_SLICE", " a, ,b ")

	assert.Equal(t, 7, getEnvAsInt("TEST_INT", 7))
	assert.Equal(t, 5*time.Second, getEnvAsDuration("TEST_DURATION", time.Second))
	assert.Equal(t, []string{"a", "b"}, getEnvAsSlice("TEST_SLICE", nil))
	assert.Equal(t, "fallback", getEnv("TEST_UNSET_VARIABLE", "fallback"))
}
