package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"copro-backend/internal/database/models"
	apperrors "copro-backend/internal/errors"
	"copro-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth
const (
	IdentityKey = "identity"
	UserIDKey   = "user_id"
)

// Verifier resolves a bearer token to a currently active identity
type Verifier interface {
	VerifyToken(ctx context.Context, token string) (*models.Identity, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	verifier Verifier
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(verifier Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth verifies the bearer token on every request and sets the identity in context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingToken.Error()})
			return
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		identity, err := m.verifier.VerifyToken(c.Request.Context(), tokenString)
		if err != nil {
			abortWithAuthError(c, err)
			return
		}

		c.Set(IdentityKey, identity)
		c.Set(UserIDKey, identity.ID)
		c.Set(logger.EmailKey, identity.Email)
		c.Set(logger.UserTypeKey, string(identity.Partition))

		c.Next()
	}
}

// RequirePartition only lets identities of the given partitions through. Must run after RequireAuth.
func (m *AuthMiddleware) RequirePartition(allowed ...models.Partition) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		for _, p := range allowed {
			if identity.Partition == p {
				c.Next()
				return
			}
		}

		logger.WithContext(c).WithField("path", c.FullPath()).Warn("partition not allowed")
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrForbiddenPartition.Error()})
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func abortWithAuthError(c *gin.Context, err error) {
	log := logger.WithContext(c).WithError(err)

	var authErr *apperrors.AuthError
	switch {
	case errors.As(err, &authErr):
		log.WithField("reason", authErr.Reason).Info("token rejected")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": authErr.Error(), "reason": authErr.Reason})
	case apperrors.IsStoreUnavailable(err):
		log.Error("token verification failed")
		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case apperrors.IsConfiguration(err):
		log.Error("token verification misconfigured")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "authentication is not configured"})
	default:
		log.Error("token verification failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// GetIdentity is a helper function to extract the authenticated identity from context
func GetIdentity(c *gin.Context) (*models.Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*models.Identity)
	return identity, ok
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	return id, ok
}

// GetUserType is a helper function to extract the partition from context
func GetUserType(c *gin.Context) (models.Partition, bool) {
	v, exists := c.Get(logger.UserTypeKey)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return models.Partition(s), ok
}
