package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"copro-backend/internal/api/handlers"
	"copro-backend/internal/database/models"
	apperrors "copro-backend/internal/errors"
	"copro-backend/internal/mocks"
	"copro-backend/internal/service"
	"copro-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	userService *mocks.MockUserServiceInterface
	caller      *models.Identity
	http        *testutils.HTTPTestSuite
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.userService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.caller = testutils.NewIdentityFactory(models.PartitionSyndic).Create()
	suite.caller.ID = 5

	handler := handlers.NewAuthHandler(suite.userService)
	suite.http = testutils.SetupHTTPTest()
	public := suite.http.Router.Group("/api/v1/auth")
	public.POST("/register", handler.Register)
	public.POST("/login", handler.Login)

	protected := suite.http.Router.Group("/api/v1/auth", testutils.AsIdentity(suite.caller))
	protected.GET("/me", handler.Me)
	protected.GET("/users", handler.ListUsers)
	protected.PATCH("/users/toggle", handler.ToggleUser)
}

func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthHandlerTestSuite) TestRegister_Created() {
	suite.userService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.RegisterRequest) (*service.UserResponse, error) {
			suite.Equal("claire.bernard@example.com", req.Email)
			suite.Equal(models.PartitionOwner, req.UserType)
			return &service.UserResponse{ID: 1, Email: req.Email, UserType: req.UserType, Active: true}, nil
		})

	rec := suite.http.MakeRequest(http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"email":      "claire.bernard@example.com",
		"password":   "correct-horse",
		"first_name": "Claire",
		"last_name":  "Bernard",
		"user_type":  "building_owner",
	})

	var resp service.UserResponse
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusCreated, &resp)
	suite.Equal(int64(1), resp.ID)
	suite.NotContains(rec.Body.String(), "password")
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	suite.userService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserExists)

	rec := suite.http.MakeRequest(http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"email":      "taken@example.com",
		"password":   "correct-horse",
		"first_name": "Claire",
		"last_name":  "Bernard",
		"user_type":  "syndic",
	})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusConflict, "")
}

func (suite *AuthHandlerTestSuite) TestRegister_ValidationField() {
	suite.userService.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("email", "must be a valid email address"))

	rec := suite.http.MakeRequest(http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"email":    "not-an-email",
		"password": "correct-horse",
	})

	body := testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "invalid_input")
	suite.Equal("email", body.Field)
}

func (suite *AuthHandlerTestSuite) TestLogin() {
	suite.Run("success", func() {
		suite.userService.EXPECT().
			Login(gomock.Any(), &service.LoginRequest{Email: "claire.bernard@example.com", Password: "correct-horse"}).
			Return(&service.LoginResponse{Token: "signed.jwt.token", TokenType: "Bearer", ExpiresAt: "2026-03-11T08:30:00Z"}, nil)

		rec := suite.http.MakeRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "claire.bernard@example.com",
			"password": "correct-horse",
		})

		var resp service.LoginResponse
		testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &resp)
		suite.Equal("signed.jwt.token", resp.Token)
		suite.Equal("Bearer", resp.TokenType)
	})

	suite.Run("wrong password", func() {
		suite.userService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidCredentials)

		rec := suite.http.MakeRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "claire.bernard@example.com",
			"password": "wrong-horse",
		})

		body := testutils.AssertErrorResponse(suite.T(), rec, http.StatusUnauthorized, "")
		suite.Equal("invalid credentials", body.Error)
	})

	suite.Run("inactive identity", func() {
		suite.userService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrIdentityInactive)

		rec := suite.http.MakeRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "claire.bernard@example.com",
			"password": "correct-horse",
		})

		testutils.AssertErrorResponse(suite.T(), rec, http.StatusUnauthorized, "")
	})

	suite.Run("malformed body", func() {
		rec := suite.http.MakeRequest(http.MethodPost, "/api/v1/auth/login", testutils.RawJSON(`not json`))

		testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "invalid_input")
	})
}

func (suite *AuthHandlerTestSuite) TestMe_UsesAuthenticatedIdentity() {
	suite.userService.EXPECT().
		Me(suite.caller).
		Return(&service.UserResponse{ID: 5, Email: suite.caller.Email, UserType: models.PartitionSyndic}, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/api/v1/auth/me", nil)

	var resp service.UserResponse
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &resp)
	suite.Equal(models.PartitionSyndic, resp.UserType)
	suite.Equal(int64(5), resp.ID)
}

func (suite *AuthHandlerTestSuite) TestListUsers() {
	suite.userService.EXPECT().ListUsers(gomock.Any()).Return(&service.UserListResponse{
		BuildingOwners: []service.UserResponse{{ID: 5, UserType: models.PartitionOwner}},
		Syndics:        []service.UserResponse{{ID: 5, UserType: models.PartitionSyndic}},
		Administrators: []service.UserResponse{},
	}, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/api/v1/auth/users", nil)

	var resp service.UserListResponse
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &resp)
	suite.Len(resp.BuildingOwners, 1)
	suite.Len(resp.Syndics, 1)
	suite.Empty(resp.Administrators)
}

func (suite *AuthHandlerTestSuite) TestToggleUser() {
	suite.Run("deactivates", func() {
		suite.userService.EXPECT().
			ToggleUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *service.ToggleUserRequest) (*service.UserResponse, error) {
				suite.Equal(models.PartitionOwner, req.UserType)
				suite.Require().NotNil(req.Active)
				suite.False(*req.Active)
				return &service.UserResponse{ID: req.UserID, UserType: req.UserType, Active: false}, nil
			})

		rec := suite.http.MakeRequest(http.MethodPatch, "/api/v1/auth/users/toggle", map[string]interface{}{
			"user_id":   9,
			"user_type": "building_owner",
			"active":    false,
		})

		var resp service.UserResponse
		testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &resp)
		suite.False(resp.Active)
	})

	suite.Run("unknown identity", func() {
		suite.userService.EXPECT().ToggleUser(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrIdentityNotFound)

		rec := suite.http.MakeRequest(http.MethodPatch, "/api/v1/auth/users/toggle", map[string]interface{}{
			"user_id":   404,
			"user_type": "administrator",
			"active":    true,
		})

		testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "")
	})
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
