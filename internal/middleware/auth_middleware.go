package middleware

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
	"time"

	"carbooking/internal/config"
	"carbooking/internal/utils"
	"carbooking/pkg/logger"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	SessionCookieName = "__session"
	ContextUserID     = "clerk_user_id"
	ContextSessionID  = "clerk_session_id"
)

var ErrInvalidPublishableKey = errors.New("invalid Clerk publishable key")

// ClerkClaims are the fields of a Clerk session token we rely on.
type ClerkClaims struct {
	SessionID       string `json:"sid,omitempty"`
	AuthorizedParty string `json:"azp,omitempty"`
	jwt.RegisteredClaims
}

// ClerkVerifier checks Clerk session JWTs.
type ClerkVerifier struct {
	keys              jwt.Keyfunc
	authorizedParties []string
	leeway            time.Duration
}

// NewClerkVerifier verifies against CLERK_JWT_KEY when set. Otherwise keys
// come from the instance JWKS, refreshed in the background until ctx ends.
func NewClerkVerifier(ctx context.Context, cfg *config.AuthConfig) (*ClerkVerifier, error) {
	verifier := &ClerkVerifier{
		authorizedParties: cfg.AuthorizedParties,
		leeway:            cfg.ClockSkew,
	}

	if cfg.ClerkJWTKey != "" {
		key, err := parseRSAPublicKey(cfg.ClerkJWTKey)
		if err != nil {
			return nil, fmt.Errorf("failed to parse CLERK_JWT_KEY: %w", err)
		}
		verifier.keys = func(*jwt.Token) (interface{}, error) { return key, nil }
		return verifier, nil
	}

	jwksURL := cfg.ClerkJWKSURL
	if jwksURL == "" {
		derived, err := jwksURLFromPublishableKey(cfg.ClerkPublishableKey)
		if err != nil {
			return nil, err
		}
		jwksURL = derived
	}

	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to load Clerk JWKS: %w", err)
	}
	verifier.keys = jwks.Keyfunc
	return verifier, nil
}

func (v *ClerkVerifier) Verify(tokenString string) (*ClerkClaims, error) {
	claims := &ClerkClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, v.keys,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to verify session token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	if len(v.authorizedParties) > 0 && claims.AuthorizedParty != "" {
		allowed := false
		for _, party := range v.authorizedParties {
			if party == claims.AuthorizedParty {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, fmt.Errorf("unauthorized party %q", claims.AuthorizedParty)
		}
	}

	return claims, nil
}

// ClerkAuth guards every path under the configured admin prefixes. When the
// Clerk keys are not configured every request passes through.
func ClerkAuth(ctx context.Context, cfg *config.AuthConfig, log *logger.Logger) (gin.HandlerFunc, error) {
	if !cfg.Enabled() {
		log.Warn("Clerk keys not configured, admin routes are NOT protected")
		return func(c *gin.Context) { c.Next() }, nil
	}

	verifier, err := NewClerkVerifier(ctx, cfg)
	if err != nil {
		return nil, err
	}

	prefixes := cfg.AdminPathPrefixes
	return func(c *gin.Context) {
		if !matchesPrefix(c.Request.URL.Path, prefixes) {
			c.Next()
			return
		}

		tokenString := sessionToken(c)
		if tokenString == "" {
			log.LogSecurityEvent("missing_session", map[string]interface{}{"path": c.Request.URL.Path})
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			log.LogSecurityEvent("invalid_session", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextSessionID, claims.SessionID)
		c.Next()
	}, nil
}

func matchesPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		prefix = strings.TrimRight(prefix, "/")
		if prefix == "" {
			continue
		}
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// sessionToken prefers the Authorization header over the session cookie.
func sessionToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie
	}
	return ""
}

func parseRSAPublicKey(pemKey string) (*rsa.PublicKey, error) {
	// Env files often carry the PEM with escaped newlines.
	pemKey = strings.ReplaceAll(pemKey, `\n`, "\n")

	block, _ := pem.Decode([]byte(pemKey))
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, fmt.Errorf("failed to decode PEM block containing public key")
	}

	pubKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPubKey, ok := pubKey.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA public key")
	}
	return rsaPubKey, nil
}

// jwksURLFromPublishableKey decodes the Frontend API host embedded in a
// publishable key (pk_test_<base64 "host$">) into its public JWKS URL.
func jwksURLFromPublishableKey(publishableKey string) (string, error) {
	encoded := strings.TrimPrefix(strings.TrimPrefix(publishableKey, "pk_test_"), "pk_live_")
	if encoded == publishableKey {
		return "", ErrInvalidPublishableKey
	}

	decoded, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(encoded, "="))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPublishableKey, err)
	}

	host := strings.TrimSuffix(string(decoded), "$")
	if host == "" || strings.ContainsAny(host, "/ ") {
		return "", ErrInvalidPublishableKey
	}
	return "https://" + host + "/.well-known/jwks.json", nil
}
