package auth

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"copro-backend/internal/database/models"
	apperrors "copro-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   string `json:"user_id" example:"42"`
	Email    string `json:"email" example:"jean.dupont@example.com"`
	UserType string `json:"user_type" example:"syndic"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Principal returns the partition and numeric id carried by the claims.
// A missing user_type yields an empty partition; an unknown one is malformed.
func (c *AuthClaims) Principal() (models.Partition, int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.UserID), 10, 64)
	if err != nil || id <= 0 {
		return "", 0, apperrors.NewAuthError(apperrors.AuthMalformed, errors.New("user_id claim is not a positive integer"))
	}
	partition := models.Partition(c.UserType)
	if partition != "" && !partition.IsValid() {
		return "", 0, apperrors.NewAuthError(apperrors.AuthMalformed, errors.New("unknown user_type claim"))
	}
	return partition, id, nil
}

// AuthService issues and parses HS256 bearer tokens
type AuthService struct {
	config *AuthConfig
	now    func() time.Time
}

// NewAuthService creates a new authentication service. It refuses to start without a secret.
func NewAuthService(cfg *AuthConfig) (*AuthService, error) {
	if err := cfg.ValidateConfig(); err != nil {
		return nil, err
	}
	return &AuthService{config: cfg, now: time.Now}, nil
}

// WithClock replaces the time source used for issuing and validating tokens
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// TTL returns the configured token lifetime
func (s *AuthService) TTL() time.Duration {
	return s.config.ttl()
}

// GenerateJWT creates a token for the identity valid for ttl (the configured TTL when ttl <= 0)
func (s *AuthService) GenerateJWT(identity *models.Identity, ttl time.Duration) (string, time.Time, error) {
	if s == nil || s.config.ValidateConfig() != nil {
		return "", time.Time{}, apperrors.ErrSigningSecretMissing
	}
	if ttl <= 0 {
		ttl = s.config.ttl()
	}

	now := s.now()
	expiresAt := now.Add(ttl)
	id := strconv.FormatInt(identity.ID, 10)
	claims := &AuthClaims{
		UserID:   id,
		Email:    identity.Email,
		UserType: string(identity.Partition),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   string(identity.Partition) + ":" + id,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateJWT verifies signature and time claims and returns the parsed claims.
// Failures are AuthErrors tagged Malformed, Expired or NotYetValid.
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	if s == nil || s.config.ValidateConfig() != nil {
		return nil, apperrors.ErrSigningSecretMissing
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.Issuer))
	}

	claims := &AuthClaims{}
	token, err := jwt.NewParser(opts...).ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, apperrors.NewAuthError(apperrors.AuthExpired, err)
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, apperrors.NewAuthError(apperrors.AuthNotYetValid, err)
		default:
			return nil, apperrors.NewAuthError(apperrors.AuthMalformed, err)
		}
	}
	if !token.Valid {
		return nil, apperrors.ErrTokenMalformed
	}
	return claims, nil
}
