package service

import (
	"context"
	"time"

	"copro-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Me(identity *models.Identity) (*UserResponse, error)
	ListUsers(ctx context.Context) (*UserListResponse, error)
	ToggleUser(ctx context.Context, req *ToggleUserRequest) (*UserResponse, error)
}

// IdentityResolverInterface defines the interface for resolving identities and tokens
type IdentityResolverInterface interface {
	LookupByID(ctx context.Context, id int64) (*models.Identity, error)
	LookupByEmail(ctx context.Context, email string) (*models.Identity, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	IssueToken(identity *models.Identity, ttl time.Duration) (string, time.Time, error)
	VerifyToken(ctx context.Context, token string) (*models.Identity, error)
}

// BuildingServiceInterface defines the interface for building service
type BuildingServiceInterface interface {
	CreateBuilding(ctx context.Context, req *CreateBuildingRequest) (*BuildingResponse, error)
	GetBuilding(ctx context.Context, id int64) (*BuildingResponse, error)
	ListBuildings(ctx context.Context, page, pageSize int) (*BuildingListResponse, error)
}

// UnitServiceInterface defines the interface for unit service
type UnitServiceInterface interface {
	CreateUnit(ctx context.Context, req *CreateUnitRequest) (*UnitResponse, error)
	GetUnit(ctx context.Context, id int64) (*UnitWithOwnersResponse, error)
	ListUnits(ctx context.Context, buildingID *int64) (*UnitListResponse, error)
	UpdateUnit(ctx context.Context, id int64, req *UpdateUnitRequest) (*UnitResponse, error)
}

// OwnershipLedgerInterface defines the interface for the ownership ledger
type OwnershipLedgerInterface interface {
	CreateOwnership(ctx context.Context, req *CreateOwnershipRequest) (*OwnershipResponse, error)
	UpdateOwnership(ctx context.Context, id int64, req *UpdateOwnershipRequest) (*OwnershipResponse, error)
	CloseOwnership(ctx context.Context, id int64) (*OwnershipResponse, error)
	CurrentOwners(ctx context.Context, unitID int64) ([]OwnershipResponse, error)
	GetOwnership(ctx context.Context, id int64) (*OwnershipResponse, error)
	ListCurrentOwners(ctx context.Context, filter OwnershipFilter) ([]OwnershipResponse, error)
	BuildingOwners(ctx context.Context, buildingID int64) (*BuildingOwnersResponse, error)
}

var (
	_ UserServiceInterface      = (*UserService)(nil)
	_ IdentityResolverInterface = (*IdentityResolver)(nil)
	_ BuildingServiceInterface  = (*BuildingService)(nil)
	_ UnitServiceInterface      = (*UnitService)(nil)
	_ OwnershipLedgerInterface  = (*OwnershipLedger)(nil)
)
