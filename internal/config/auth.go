package config

import "time"

// AuthConfig holds the Clerk identity provider settings. The admin gate is
// only enforced when both the publishable and secret keys are present.
type AuthConfig struct {
	ClerkPublishableKey string        `yaml:"clerk_publishable_key"`
	ClerkSecretKey      string        `yaml:"clerk_secret_key"`
	ClerkJWTKey         string        `yaml:"clerk_jwt_key"`
	// ClerkJWKSURL overrides the key set URL derived from the publishable key.
	ClerkJWKSURL        string        `yaml:"clerk_jwks_url"`
	AuthorizedParties   []string      `yaml:"authorized_parties"`
	AdminPathPrefixes   []string      `yaml:"admin_path_prefixes"`
	ClockSkew           time.Duration `yaml:"clock_skew"`
}

func (c *AuthConfig) Enabled() bool {
	return c != nil && c.ClerkPublishableKey != "" && c.ClerkSecretKey != ""
}

func loadAuthConfig() *AuthConfig {
	return &AuthConfig{
		ClerkPublishableKey: firstEnv("", "NEXT_PUBLIC_CLERK_PUBLISHABLE_KEY", "CLERK_PUBLISHABLE_KEY"),
		ClerkSecretKey:      getEnv("CLERK_SECRET_KEY", ""),
		ClerkJWTKey:         getEnv("CLERK_JWT_KEY", ""),
		ClerkJWKSURL:        getEnv("CLERK_JWKS_URL", ""),
		AuthorizedParties:   getEnvAsSlice("CLERK_AUTHORIZED_PARTIES", []string{}),
		AdminPathPrefixes:   getEnvAsSlice("ADMIN_PATH_PREFIXES", []string{"/admin"}),
		ClockSkew:           getEnvAsDuration("CLERK_CLOCK_SKEW", 5*time.Second),
	}
}
