package service_test

import (
	"context"
	"testing"
	"time"

	"copro-backend/internal/auth"
	"copro-backend/internal/database/models"
	apperrors "copro-backend/internal/errors"
	"copro-backend/internal/mocks"
	"copro-backend/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const (
	testSecret = "service-test-secret"
	testIssuer = "copro-backend"
)

var testNow = time.Date(2026, time.March, 10, 8, 30, 0, 0, time.UTC)

func newTokenService(t *testing.T, at time.Time) *auth.AuthService {
	t.Helper()
	svc, err := auth.NewAuthService(&auth.AuthConfig{JWTSecret: testSecret, TokenTTL: 24 * time.Hour, Issuer: testIssuer})
	if err != nil {
		t.Fatalf("failed to build auth service: %v", err)
	}
	return svc.WithClock(func() time.Time { return at })
}

func identityFixture(p models.Partition, id int64) *models.Identity {
	return &models.Identity{
		Partition: p,
		ID:        id,
		Email:     string(p) + "@example.com",
		FirstName: "Camille",
		LastName:  "Martin",
		Active:    true,
	}
}

// IdentityResolverTestSuite defines the test suite for IdentityResolver
type IdentityResolverTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	repo     *mocks.MockIdentityRepositoryInterface
	tokens   *auth.AuthService
	resolver *service.IdentityResolver
}

// SetupTest sets up the test suite
func (suite *IdentityResolverTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockIdentityRepositoryInterface(suite.ctrl)
	suite.tokens = newTokenService(suite.T(), testNow)
	suite.resolver = service.NewIdentityResolver(suite.repo, suite.tokens)
}

// TearDownTest cleans up after each test
func (suite *IdentityResolverTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *IdentityResolverTestSuite) TestLookupByIDRejectsNonPositiveID() {
	for _, id := range []int64{0, -1} {
		identity, err := suite.resolver.LookupByID(suite.ctx, id)
		suite.Nil(identity)
		suite.ErrorIs(err, &apperrors.ValidationError{Code: apperrors.ValidationInvalidID})
	}
}

func (suite *IdentityResolverTestSuite) TestLookupByIDFindsSyndicWhenOnlySyndicHasID() {
	syndic := identityFixture(models.PartitionSyndic, 5)
	gomock.InOrder(
		suite.repo.EXPECT().GetActiveByID(gomock.Any(), models.PartitionOwner, int64(5)).Return(nil, gorm.ErrRecordNotFound),
		suite.repo.EXPECT().GetActiveByID(gomock.Any(), models.PartitionSyndic, int64(5)).Return(syndic, nil),
	)

	identity, err := suite.resolver.LookupByID(suite.ctx, 5)
	suite.Require().NoError(err)
	suite.Equal(models.PartitionSyndic, identity.Partition)
	suite.Equal(int64(5), identity.ID)
}

func (suite *IdentityResolverTestSuite) TestLookupByIDPrefersOwnerOnCollision() {
	owner := identityFixture(models.PartitionOwner, 7)
	suite.repo.EXPECT().GetActiveByID(gomock.Any(), models.PartitionOwner, int64(7)).Return(owner, nil)

	identity, err := suite.resolver.LookupByID(suite.ctx, 7)
	suite.Require().NoError(err)
	suite.Equal(models.PartitionOwner, identity.Partition)
}

func (suite *IdentityResolverTestSuite) TestLookupByIDNotFound() {
	for _, p := range models.ProbeOrder {
		suite.repo.EXPECT().GetActiveByID(gomock.Any(), p, int64(9)).Return(nil, gorm.ErrRecordNotFound)
	}

	identity, err := suite.resolver.LookupByID(suite.ctx, 9)
	suite.Nil(identity)
	suite.ErrorIs(err, apperrors.ErrIdentityNotFound)
}

func (suite *IdentityResolverTestSuite) TestLookupByIDStopsOnStoreError() {
	unavailable := apperrors.NewStoreUnavailableError("get identity", context.DeadlineExceeded)
	suite.repo.EXPECT().GetActiveByID(gomock.Any(), models.PartitionOwner, int64(3)).Return(nil, unavailable)

	_, err := suite.resolver.LookupByID(suite.ctx, 3)
	suite.True(apperrors.IsStoreUnavailable(err))
}

func (suite *IdentityResolverTestSuite) TestLookupByEmailNormalizes() {
	admin := identityFixture(models.PartitionAdministrator, 1)
	gomock.InOrder(
		suite.repo.EXPECT().GetActiveByEmail(gomock.Any(), models.PartitionOwner, "admin@example.com").Return(nil, gorm.ErrRecordNotFound),
		suite.repo.EXPECT().GetActiveByEmail(gomock.Any(), models.PartitionSyndic, "admin@example.com").Return(nil, gorm.ErrRecordNotFound),
		suite.repo.EXPECT().GetActiveByEmail(gomock.Any(), models.PartitionAdministrator, "admin@example.com").Return(admin, nil),
	)

	identity, err := suite.resolver.LookupByEmail(suite.ctx, "  Admin@Example.COM ")
	suite.Require().NoError(err)
	suite.Equal(models.PartitionAdministrator, identity.Partition)
}

func (suite *IdentityResolverTestSuite) TestLookupByEmailRequiresEmail() {
	_, err := suite.resolver.LookupByEmail(suite.ctx, "   ")
	suite.True(apperrors.IsValidation(err))
}

func (suite *IdentityResolverTestSuite) TestVerifyTokenResolvesClaimedPartition() {
	syndic := identityFixture(models.PartitionSyndic, 5)
	token, _, err := suite.resolver.IssueToken(syndic, 0)
	suite.Require().NoError(err)

	// only the syndic partition is probed even though owner id 5 may exist
	suite.repo.EXPECT().GetActiveByID(gomock.Any(), models.PartitionSyndic, int64(5)).Return(syndic, nil)

	identity, err := suite.resolver.VerifyToken(suite.ctx, token)
	suite.Require().NoError(err)
	suite.Equal(models.PartitionSyndic, identity.Partition)
	suite.Equal(int64(5), identity.ID)
}

func (suite *IdentityResolverTestSuite) TestVerifyTokenExpiredAfterTTL() {
	owner := identityFixture(models.PartitionOwner, 2)
	token, expiresAt, err := suite.resolver.IssueToken(owner, 0)
	suite.Require().NoError(err)
	suite.Equal(testNow.Add(24*time.Hour), expiresAt)

	suite.tokens.WithClock(func() time.Time { return testNow.Add(24*time.Hour + time.Second) })

	_, err = suite.resolver.VerifyToken(suite.ctx, token)
	suite.ErrorIs(err, apperrors.ErrTokenExpired)
}

func (suite *IdentityResolverTestSuite) TestVerifyTokenInactiveIdentity() {
	syndic := identityFixture(models.PartitionSyndic, 5)
	token, _, err := suite.resolver.IssueToken(syndic, time.Hour)
	suite.Require().NoError(err)

	suite.repo.EXPECT().GetActiveByID(gomock.Any(), models.PartitionSyndic, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err = suite.resolver.VerifyToken(suite.ctx, token)
	suite.ErrorIs(err, apperrors.ErrIdentityInactive)
	suite.True(apperrors.IsAuth(err))
}

func (suite *IdentityResolverTestSuite) TestVerifyTokenStoreUnavailable() {
	owner := identityFixture(models.PartitionOwner, 4)
	token, _, err := suite.resolver.IssueToken(owner, 0)
	suite.Require().NoError(err)

	suite.repo.EXPECT().GetActiveByID(gomock.Any(), models.PartitionOwner, int64(4)).
		Return(nil, apperrors.NewStoreUnavailableError("get identity", context.Canceled))

	_, err = suite.resolver.VerifyToken(suite.ctx, token)
	suite.True(apperrors.IsStoreUnavailable(err))
	suite.False(apperrors.IsAuth(err))
}

func (suite *IdentityResolverTestSuite) TestVerifyTokenWithoutUserTypeProbesAllPartitions() {
	claims := &auth.AuthClaims{
		UserID: "8",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			IssuedAt:  jwt.NewNumericDate(testNow),
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	suite.Require().NoError(err)

	admin := identityFixture(models.PartitionAdministrator, 8)
	gomock.InOrder(
		suite.repo.EXPECT().GetActiveByID(gomock.Any(), models.PartitionOwner, int64(8)).Return(nil, gorm.ErrRecordNotFound),
		suite.repo.EXPECT().GetActiveByID(gomock.Any(), models.PartitionSyndic, int64(8)).Return(nil, gorm.ErrRecordNotFound),
		suite.repo.EXPECT().GetActiveByID(gomock.Any(), models.PartitionAdministrator, int64(8)).Return(admin, nil),
	)

	identity, err := suite.resolver.VerifyToken(suite.ctx, token)
	suite.Require().NoError(err)
	suite.Equal(models.PartitionAdministrator, identity.Partition)
}

func (suite *IdentityResolverTestSuite) TestVerifyTokenMalformed() {
	_, err := suite.resolver.VerifyToken(suite.ctx, "not-a-token")
	suite.ErrorIs(err, apperrors.ErrTokenMalformed)
}

func (suite *IdentityResolverTestSuite) TestIssueTokenRejectsUnresolvedIdentity() {
	_, _, err := suite.resolver.IssueToken(&models.Identity{ID: 3}, 0)
	suite.Error(err)
}

func TestIdentityResolverTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityResolverTestSuite))
}
