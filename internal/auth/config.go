package auth

import (
	"fmt"
	"strings"
	"time"

	"copro-backend/internal/config"
	apperrors "copro-backend/internal/errors"
)

// DefaultTokenTTL is the lifetime of a token when none is configured
const DefaultTokenTTL = 24 * time.Hour

// AuthConfig holds the token signing configuration
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"-"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
}

// NewAuthConfig extracts the auth settings from the application configuration
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Issuer:    cfg.TokenIssuer,
	}
}

// ValidateConfig validates the authentication configuration.
// There is no fallback secret: a blank one is a configuration error.
func (c *AuthConfig) ValidateConfig() error {
	if c == nil || strings.TrimSpace(c.JWTSecret) == "" {
		return apperrors.ErrSigningSecretMissing
	}
	if c.TokenTTL < 0 {
		return apperrors.NewConfigurationError(fmt.Sprintf("token TTL must be positive, got %s", c.TokenTTL))
	}
	return nil
}

func (c *AuthConfig) ttl() time.Duration {
	if c.TokenTTL <= 0 {
		return DefaultTokenTTL
	}
	return c.TokenTTL
}
