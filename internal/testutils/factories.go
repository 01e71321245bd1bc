package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"copro-backend/internal/database/models"

	"gorm.io/datatypes"
)

var factorySeq int64

func nextSeq() int64 {
	return atomic.AddInt64(&factorySeq, 1)
}

// IdentityFactory provides methods to create test Identity data
type IdentityFactory struct {
	partition models.Partition
}

// NewIdentityFactory creates a new IdentityFactory for one partition
func NewIdentityFactory(p models.Partition) *IdentityFactory {
	return &IdentityFactory{partition: p}
}

// Create creates a test Identity with default values and a unique email
func (f *IdentityFactory) Create() *models.Identity {
	n := nextSeq()
	identity := &models.Identity{
		Partition:    f.partition,
		Email:        fmt.Sprintf("%s-%d@example.com", f.partition, n),
		PasswordHash: "$2a$12$C6UzMDM.H6dfI/f/IKcEeO3mB7kWz5q4Eo6a5jv0cHgGJrQ0QgW1y",
		FirstName:    "Test",
		LastName:     fmt.Sprintf("User%d", n),
		Phone:        "+33 1 23 45 67 89",
		Active:       true,
	}
	if f.partition == models.PartitionSyndic {
		identity.CompanyName = "Gestion Immobiliere SARL"
	}
	return identity
}

// WithEmail sets a custom email for the identity
func (f *IdentityFactory) WithEmail(email string) *models.Identity {
	identity := f.Create()
	identity.Email = email
	return identity
}

// Inactive creates a deactivated identity
func (f *IdentityFactory) Inactive() *models.Identity {
	identity := f.Create()
	identity.Active = false
	return identity
}

// BuildingFactory provides methods to create test Building data
type BuildingFactory struct{}

// NewBuildingFactory creates a new BuildingFactory
func NewBuildingFactory() *BuildingFactory {
	return &BuildingFactory{}
}

// Create creates a test Building with default values
func (f *BuildingFactory) Create() *models.Building {
	n := nextSeq()
	return &models.Building{
		Name:       fmt.Sprintf("Residence %d", n),
		Address:    fmt.Sprintf("%d rue de la Paix, Paris", n),
		UnitsCount: 10,
		SyndicType: models.SyndicTypeProfessional,
	}
}

// WithSyndic links the building to a syndic
func (f *BuildingFactory) WithSyndic(syndicID int64) *models.Building {
	building := f.Create()
	building.SyndicID = &syndicID
	return building
}

// UnitFactory provides methods to create test Unit data
type UnitFactory struct{}

// NewUnitFactory creates a new UnitFactory
func NewUnitFactory() *UnitFactory {
	return &UnitFactory{}
}

// Create creates a test Unit with default values
func (f *UnitFactory) Create() *models.Unit {
	floor := 1
	surface := 54.5
	return &models.Unit{
		UnitNumber:  fmt.Sprintf("A%d", nextSeq()),
		Floor:       &floor,
		UnitType:    models.UnitTypeApartment,
		SurfaceArea: &surface,
		Millieme:    100,
	}
}

// WithBuilding sets the building of the unit
func (f *UnitFactory) WithBuilding(buildingID int64) *models.Unit {
	unit := f.Create()
	unit.BuildingID = buildingID
	return unit
}

// OwnershipFactory provides methods to create test Ownership data
type OwnershipFactory struct{}

// NewOwnershipFactory creates a new OwnershipFactory
func NewOwnershipFactory() *OwnershipFactory {
	return &OwnershipFactory{}
}

// Create creates an active, open-ended test Ownership
func (f *OwnershipFactory) Create(unitID, ownerID int64, percentage float64) *models.Ownership {
	return &models.Ownership{
		UnitID:              unitID,
		OwnerID:             ownerID,
		OwnershipPercentage: percentage,
		StartDate:           datatypes.Date(models.DateOf(time.Now())),
		IsPrimaryResidence:  true,
		Active:              true,
	}
}

// EndingOn creates an ownership whose end date is the given day
func (f *OwnershipFactory) EndingOn(unitID, ownerID int64, percentage float64, end time.Time) *models.Ownership {
	ownership := f.Create(unitID, ownerID, percentage)
	endDate := datatypes.Date(models.DateOf(end))
	ownership.StartDate = datatypes.Date(models.DateOf(end.AddDate(-1, 0, 0)))
	ownership.EndDate = &endDate
	return ownership
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	Owner     *IdentityFactory
	Syndic    *IdentityFactory
	Admin     *IdentityFactory
	Building  *BuildingFactory
	Unit      *UnitFactory
	Ownership *OwnershipFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Owner:     NewIdentityFactory(models.PartitionOwner),
		Syndic:    NewIdentityFactory(models.PartitionSyndic),
		Admin:     NewIdentityFactory(models.PartitionAdministrator),
		Building:  NewBuildingFactory(),
		Unit:      NewUnitFactory(),
		Ownership: NewOwnershipFactory(),
	}
}
