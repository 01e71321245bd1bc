package handlers

import (
	"net/http"

	"copro-backend/internal/auth"
	"copro-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and identity administration
type AuthHandler struct {
	userService service.UserServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService service.UserServiceInterface) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register handles POST /auth/register
// @Summary Register a user
// @Description Create an identity in one of the building_owner, syndic or administrator partitions. The email must not exist in any partition.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body service.RegisterRequest true "Registration data"
// @Success 201 {object} service.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.Register(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Credentials"
// @Success 200 {object} service.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.userService.Login(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /auth/me
// @Summary Current identity
// @Description Return the identity behind the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} service.UserResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, _ := auth.GetIdentity(c)
	user, err := h.userService.Me(identity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /auth/users
// @Summary List users
// @Description List every identity grouped by partition (administrators only)
// @Tags auth
// @Produce json
// @Success 200 {object} service.UserListResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /auth/users [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ToggleUser handles PATCH /auth/users/toggle
// @Summary Activate or deactivate a user
// @Description Set the active flag of one identity (administrators only). Tokens of a deactivated identity stop working immediately.
// @Tags auth
// @Accept json
// @Produce json
// @Param toggle body service.ToggleUserRequest true "Target identity and flag"
// @Success 200 {object} service.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Identity not found"
// @Security BearerAuth
// @Router /auth/users/toggle [patch]
func (h *AuthHandler) ToggleUser(c *gin.Context) {
	var req service.ToggleUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.ToggleUser(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
