package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"copro-backend/internal/database/models"
	apperrors "copro-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestService(t *testing.T, at time.Time) *AuthService {
	t.Helper()
	svc, err := NewAuthService(&AuthConfig{JWTSecret: "test-signing-key", TokenTTL: 24 * time.Hour, Issuer: "copro-backend"})
	require.NoError(t, err)
	return svc.WithClock(fixedClock(at))
}

func testIdentity() *models.Identity {
	return &models.Identity{
		Partition: models.PartitionSyndic,
		ID:        5,
		Email:     "syndic@example.com",
		Active:    true,
	}
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := &AuthConfig{JWTSecret: "secret", TokenTTL: time.Hour}
		assert.NoError(t, cfg.ValidateConfig())
		assert.Equal(t, time.Hour, cfg.ttl())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		err := (&AuthConfig{}).ValidateConfig()
		assert.ErrorIs(t, err, apperrors.ErrSigningSecretMissing)
		assert.True(t, apperrors.IsConfiguration(err))
	})

	t.Run("blank jwt secret", func(t *testing.T) {
		err := (&AuthConfig{JWTSecret: "   "}).ValidateConfig()
		assert.True(t, apperrors.IsConfiguration(err))
	})

	t.Run("negative ttl", func(t *testing.T) {
		err := (&AuthConfig{JWTSecret: "s", TokenTTL: -time.Second}).ValidateConfig()
		assert.True(t, apperrors.IsConfiguration(err))
	})

	t.Run("zero ttl defaults to 24h", func(t *testing.T) {
		assert.Equal(t, DefaultTokenTTL, (&AuthConfig{JWTSecret: "s"}).ttl())
	})

	t.Run("service refuses to start without secret", func(t *testing.T) {
		svc, err := NewAuthService(&AuthConfig{})
		assert.Nil(t, svc)
		assert.True(t, apperrors.IsConfiguration(err))
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	svc := newTestService(t, issuedAt)

	token, expiresAt, err := svc.GenerateJWT(testIdentity(), 0)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(24*time.Hour), expiresAt)

	svc.WithClock(fixedClock(issuedAt.Add(23 * time.Hour)))
	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "5", claims.UserID)
	assert.Equal(t, "syndic@example.com", claims.Email)
	assert.Equal(t, "syndic", claims.UserType)
	assert.Equal(t, "copro-backend", claims.Issuer)

	partition, id, err := claims.Principal()
	require.NoError(t, err)
	assert.Equal(t, models.PartitionSyndic, partition)
	assert.Equal(t, int64(5), id)
}

func TestValidateJWT_Expired(t *testing.T) {
	svc := newTestService(t, issuedAt)
	token, _, err := svc.GenerateJWT(testIdentity(), 24*time.Hour)
	require.NoError(t, err)

	svc.WithClock(fixedClock(issuedAt.Add(24*time.Hour + time.Second)))
	_, err = svc.ValidateJWT(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateJWT_NotYetValid(t *testing.T) {
	svc := newTestService(t, issuedAt)
	token, _, err := svc.GenerateJWT(testIdentity(), time.Hour)
	require.NoError(t, err)

	svc.WithClock(fixedClock(issuedAt.Add(-time.Minute)))
	_, err = svc.ValidateJWT(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenNotYetValid)
}

func TestValidateJWT_Malformed(t *testing.T) {
	svc := newTestService(t, issuedAt)
	good, _, err := svc.GenerateJWT(testIdentity(), time.Hour)
	require.NoError(t, err)

	other := newTestService(t, issuedAt)
	other.config = &AuthConfig{JWTSecret: "another-key", Issuer: "copro-backend"}
	foreign, _, err := other.GenerateJWT(testIdentity(), time.Hour)
	require.NoError(t, err)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, &AuthClaims{
		UserID: "5",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
			Issuer:    "copro-backend",
		},
	})
	wrongAlg, err := hs512.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, &AuthClaims{UserID: "5", RegisteredClaims: jwt.RegisteredClaims{Issuer: "copro-backend"}})
	withoutExpiry, err := noExp.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "truncated", token: good[:len(good)-5]},
		{name: "wrong secret", token: foreign},
		{name: "wrong algorithm", token: wrongAlg},
		{name: "no expiry", token: withoutExpiry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateJWT(tt.token)
			assert.ErrorIs(t, err, apperrors.ErrTokenMalformed)
		})
	}
}

func TestClaimsPrincipal(t *testing.T) {
	tests := []struct {
		name      string
		claims    AuthClaims
		partition models.Partition
		id        int64
		wantErr   bool
	}{
		{name: "owner", claims: AuthClaims{UserID: "12", UserType: "building_owner"}, partition: models.PartitionOwner, id: 12},
		{name: "missing user type", claims: AuthClaims{UserID: "12"}, partition: "", id: 12},
		{name: "non numeric id", claims: AuthClaims{UserID: "abc", UserType: "syndic"}, wantErr: true},
		{name: "missing id", claims: AuthClaims{UserType: "syndic"}, wantErr: true},
		{name: "zero id", claims: AuthClaims{UserID: "0", UserType: "syndic"}, wantErr: true},
		{name: "unknown user type", claims: AuthClaims{UserID: "3", UserType: "tenant"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, id, err := tt.claims.Principal()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrTokenMalformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.partition, p)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestGenerateJWT_NoSecret(t *testing.T) {
	svc := &AuthService{config: &AuthConfig{}, now: time.Now}
	_, _, err := svc.GenerateJWT(testIdentity(), time.Hour)
	assert.True(t, apperrors.IsConfiguration(err))

	_, err = svc.ValidateJWT("anything")
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(4)

	hash, err := h.Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	ok, err := h.Compare(hash, "correct horse battery")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(hash, "wrong password")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Compare("not-a-hash", "whatever")
	assert.Error(t, err)

	assert.Equal(t, PasswordCost, NewPasswordHasher(0).cost)
}

type stubVerifier struct {
	identity *models.Identity
	err      error
	gotToken string
}

func (s *stubVerifier) VerifyToken(_ context.Context, token string) (*models.Identity, error) {
	s.gotToken = token
	return s.identity, s.err
}

func newMiddlewareRouter(v Verifier, allowed ...models.Partition) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(v)
	router := gin.New()
	handlers := []gin.HandlerFunc{m.RequireAuth()}
	if len(allowed) > 0 {
		handlers = append(handlers, m.RequirePartition(allowed...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		identity, _ := GetIdentity(c)
		id, _ := GetUserID(c)
		userType, _ := GetUserType(c)
		c.JSON(http.StatusOK, gin.H{"email": identity.Email, "id": id, "user_type": userType})
	})
	router.GET("/protected", handlers...)
	return router
}

func doGet(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		w := doGet(newMiddlewareRouter(&stubVerifier{}), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "authorization header is required")
	})

	t.Run("not a bearer header", func(t *testing.T) {
		w := doGet(newMiddlewareRouter(&stubVerifier{}), "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid authorization header format")
	})

	t.Run("valid token", func(t *testing.T) {
		v := &stubVerifier{identity: testIdentity()}
		w := doGet(newMiddlewareRouter(v), "Bearer abc.def.ghi")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "abc.def.ghi", v.gotToken)
		assert.JSONEq(t, `{"email":"syndic@example.com","id":5,"user_type":"syndic"}`, w.Body.String())
	})

	t.Run("lower-case scheme", func(t *testing.T) {
		v := &stubVerifier{identity: testIdentity()}
		w := doGet(newMiddlewareRouter(v), "bearer abc")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("inactive identity", func(t *testing.T) {
		w := doGet(newMiddlewareRouter(&stubVerifier{err: apperrors.ErrIdentityInactive}), "Bearer t")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"reason":"inactive"`)
	})

	t.Run("expired token", func(t *testing.T) {
		w := doGet(newMiddlewareRouter(&stubVerifier{err: apperrors.NewAuthError(apperrors.AuthExpired, nil)}), "Bearer t")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "token expired")
	})

	t.Run("store unavailable", func(t *testing.T) {
		err := apperrors.NewStoreUnavailableError("get identity by id", context.DeadlineExceeded)
		w := doGet(newMiddlewareRouter(&stubVerifier{err: err}), "Bearer t")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
	})

	t.Run("missing secret", func(t *testing.T) {
		w := doGet(newMiddlewareRouter(&stubVerifier{err: apperrors.ErrSigningSecretMissing}), "Bearer t")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRequirePartition(t *testing.T) {
	owner := &models.Identity{Partition: models.PartitionOwner, ID: 1, Email: "owner@example.com"}

	w := doGet(newMiddlewareRouter(&stubVerifier{identity: owner}, models.PartitionSyndic, models.PartitionAdministrator), "Bearer t")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doGet(newMiddlewareRouter(&stubVerifier{identity: testIdentity()}, models.PartitionSyndic, models.PartitionAdministrator), "Bearer t")
	assert.Equal(t, http.StatusOK, w.Code)
}
