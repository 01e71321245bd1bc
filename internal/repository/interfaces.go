package repository

import (
	"context"
	"time"

	"copro-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// IdentityRepositoryInterface defines the interface for identity repository operations.
// Every method addresses exactly one partition except EmailExists, which scans all of them.
type IdentityRepositoryInterface interface {
	GetActiveByID(ctx context.Context, partition models.Partition, id int64) (*models.Identity, error)
	GetActiveByEmail(ctx context.Context, partition models.Partition, email string) (*models.Identity, error)
	GetByID(ctx context.Context, partition models.Partition, id int64) (*models.Identity, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, identity *models.Identity) error
	SetActive(ctx context.Context, partition models.Partition, id int64, active bool) (*models.Identity, error)
	ListByPartition(ctx context.Context, partition models.Partition) ([]models.Identity, error)
	WithEmailLock(ctx context.Context, email string, fn func(IdentityRepositoryInterface) error) error
}

// BuildingRepositoryInterface defines the interface for building repository operations
type BuildingRepositoryInterface interface {
	Create(ctx context.Context, building *models.Building) error
	GetByID(ctx context.Context, id int64) (*models.Building, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Building, int64, error)
}

// UnitRepositoryInterface defines the interface for unit repository operations
type UnitRepositoryInterface interface {
	Create(ctx context.Context, unit *models.Unit) error
	GetByID(ctx context.Context, id int64) (*models.Unit, error)
	List(ctx context.Context, buildingID *int64) ([]models.Unit, error)
	NumberTaken(ctx context.Context, buildingID int64, unitNumber string, excludeID int64) (bool, error)
	ApplyUpdate(ctx context.Context, id int64, changes *UpdateBuilder) (*models.Unit, error)
}

// OwnershipFilter narrows ListCurrent. Nil fields are not filtered on.
type OwnershipFilter struct {
	BuildingID *int64
	UnitID     *int64
}

// OwnershipRow is an ownership joined with its owner and unit
type OwnershipRow struct {
	models.Ownership
	OwnerFirstName string
	OwnerLastName  string
	OwnerEmail     string
	UnitNumber     string
	BuildingID     int64
}

// OwnershipRepositoryInterface defines the interface for ownership repository operations
type OwnershipRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*models.Ownership, error)
	GetRow(ctx context.Context, id int64) (*OwnershipRow, error)
	// SumCurrentPercentage totals active rows on the unit whose end date is null or after asOf,
	// skipping excludeID (0 skips nothing).
	SumCurrentPercentage(ctx context.Context, unitID, excludeID int64, asOf time.Time) (float64, error)
	Create(ctx context.Context, ownership *models.Ownership) error
	ApplyUpdate(ctx context.Context, id int64, changes *UpdateBuilder) (*models.Ownership, error)
	Close(ctx context.Context, id int64) (*models.Ownership, error)
	ListCurrent(ctx context.Context, filter OwnershipFilter, asOf time.Time) ([]OwnershipRow, error)
	// ListBuildingOwners lists the distinct active owners holding a current share in the building
	ListBuildingOwners(ctx context.Context, buildingID int64, asOf time.Time) ([]models.BuildingOwner, error)
	// WithUnitLock runs fn in one transaction holding a row lock on the unit.
	// All ownership writes for a unit must go through it.
	WithUnitLock(ctx context.Context, unitID int64, fn func(OwnershipRepositoryInterface) error) error
}
