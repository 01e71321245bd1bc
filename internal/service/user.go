package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"copro-backend/internal/auth"
	"copro-backend/internal/database/models"
	apperrors "copro-backend/internal/errors"
	"copro-backend/internal/logger"
	"copro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// UserService handles registration, login and administration of identities
type UserService struct {
	repo      repository.IdentityRepositoryInterface
	resolver  *IdentityResolver
	hasher    *auth.PasswordHasher
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.IdentityRepositoryInterface, resolver *IdentityResolver, hasher *auth.PasswordHasher, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		resolver:  resolver,
		hasher:    hasher,
		validator: validator,
	}
}

// RegisterRequest represents the request to register a new identity
type RegisterRequest struct {
	Email       string           `json:"email" validate:"required,email,max=255" example:"jean.dupont@example.com"`
	Password    string           `json:"password" validate:"required,min=8,max=72"`
	FirstName   string           `json:"first_name" validate:"required,max=100" example:"Jean"`
	LastName    string           `json:"last_name" validate:"required,max=100" example:"Dupont"`
	UserType    models.Partition `json:"user_type" validate:"required,oneof=building_owner syndic administrator" example:"building_owner"`
	Phone       string           `json:"phone,omitempty" validate:"omitempty,max=30"`
	CompanyName string           `json:"company_name,omitempty" validate:"required_if=UserType syndic,max=200"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"jean.dupont@example.com"`
	Password string `json:"password" validate:"required,min=8"`
}

// ToggleUserRequest represents the request to activate or deactivate an identity
type ToggleUserRequest struct {
	UserID   int64            `json:"user_id" validate:"required,gt=0" example:"5"`
	UserType models.Partition `json:"user_type" validate:"required,oneof=building_owner syndic administrator" example:"syndic"`
	Active   *bool            `json:"active" validate:"required"`
}

// UserResponse represents an identity as exposed by the API
type UserResponse struct {
	ID          int64            `json:"id"`
	Email       string           `json:"email"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	UserType    models.Partition `json:"user_type"`
	Phone       string           `json:"phone,omitempty"`
	CompanyName string           `json:"company_name,omitempty"`
	Active      bool             `json:"active"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type" example:"Bearer"`
	ExpiresAt string       `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserListResponse lists identities grouped by partition
type UserListResponse struct {
	BuildingOwners []UserResponse `json:"building_owners"`
	Syndics        []UserResponse `json:"syndics"`
	Administrators []UserResponse `json:"administrators"`
}

// Register creates an identity after checking that no partition already holds the email.
// The check and the insert run under one advisory lock keyed by the email.
func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.Phone = strings.TrimSpace(req.Phone)

	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if req.UserType != models.PartitionSyndic {
		req.CompanyName = ""
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	identity := &models.Identity{
		Partition:    req.UserType,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		CompanyName:  req.CompanyName,
		Active:       true,
	}

	err = s.repo.WithEmailLock(ctx, identity.Email, func(tx repository.IdentityRepositoryInterface) error {
		taken, err := tx.EmailExists(ctx, identity.Email)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrUserExists
		}
		return tx.Create(ctx, identity)
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id":   identity.ID,
		"user_type": identity.Partition,
	}).Info("identity registered")

	return toUserResponse(identity), nil
}

// Login checks the credentials and issues a token. Unknown, inactive and wrong-password
// cases are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	identity, err := s.resolver.LookupByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Compare(identity.PasswordHash, req.Password)
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("user_id", identity.ID).Error("stored password hash is unreadable")
		return nil, apperrors.ErrInvalidCredentials
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.resolver.IssueToken(identity, 0)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		User:      *toUserResponse(identity),
	}, nil
}

// Me returns the identity resolved by the auth middleware
func (s *UserService) Me(identity *models.Identity) (*UserResponse, error) {
	if identity == nil {
		return nil, apperrors.ErrIdentityNotFound
	}
	return toUserResponse(identity), nil
}

// ListUsers lists every identity of every partition
func (s *UserService) ListUsers(ctx context.Context) (*UserListResponse, error) {
	out := &UserListResponse{
		BuildingOwners: []UserResponse{},
		Syndics:        []UserResponse{},
		Administrators: []UserResponse{},
	}
	for _, p := range models.ProbeOrder {
		identities, err := s.repo.ListByPartition(ctx, p)
		if err != nil {
			return nil, err
		}
		list := make([]UserResponse, 0, len(identities))
		for i := range identities {
			list = append(list, *toUserResponse(&identities[i]))
		}
		switch p {
		case models.PartitionOwner:
			out.BuildingOwners = list
		case models.PartitionSyndic:
			out.Syndics = list
		case models.PartitionAdministrator:
			out.Administrators = list
		}
	}
	return out, nil
}

// ToggleUser sets the active flag of one identity. Tokens of a deactivated identity stop
// working on their next request.
func (s *UserService) ToggleUser(ctx context.Context, req *ToggleUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	identity, err := s.repo.SetActive(ctx, req.UserType, req.UserID, *req.Active)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIdentityNotFound
		}
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"target_id":   identity.ID,
		"target_type": identity.Partition,
		"active":      identity.Active,
	}).Info("identity active flag changed")

	return toUserResponse(identity), nil
}

func toUserResponse(identity *models.Identity) *UserResponse {
	return &UserResponse{
		ID:          identity.ID,
		Email:       identity.Email,
		FirstName:   identity.FirstName,
		LastName:    identity.LastName,
		UserType:    identity.Partition,
		Phone:       identity.Phone,
		CompanyName: identity.CompanyName,
		Active:      identity.Active,
		CreatedAt:   identity.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   identity.UpdatedAt.Format(time.RFC3339),
	}
}
