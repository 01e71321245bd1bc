//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"copro-backend/internal/database/models"
	apperrors "copro-backend/internal/errors"
	"copro-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var errFull = errors.New("unit full")

// OwnershipRepositoryTestSuite tests the OwnershipRepository
type OwnershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OwnershipRepository
	identities    *IdentityRepository
	buildings     *BuildingRepository
	units         *UnitRepository
	factories     *testutils.FactorySet
	ctx           context.Context

	unit   *models.Unit
	owners []*models.Identity
}

// SetupSuite runs before all tests in the suite
func (suite *OwnershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.repo = NewOwnershipRepository(db)
	suite.identities = NewIdentityRepository(db)
	suite.buildings = NewBuildingRepository(db)
	suite.units = NewUnitRepository(db)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *OwnershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest creates a building, a unit and three owners
func (suite *OwnershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	building := suite.factories.Building.Create()
	suite.Require().NoError(suite.buildings.Create(suite.ctx, building))
	suite.unit = suite.factories.Unit.WithBuilding(building.ID)
	suite.Require().NoError(suite.units.Create(suite.ctx, suite.unit))

	suite.owners = nil
	for i := 0; i < 3; i++ {
		owner := suite.factories.Owner.Create()
		suite.Require().NoError(suite.identities.Create(suite.ctx, owner))
		suite.owners = append(suite.owners, owner)
	}
}

// TearDownTest runs after each test
func (suite *OwnershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OwnershipRepositoryTestSuite) create(ownerIdx int, pct float64) *models.Ownership {
	o := suite.factories.Ownership.Create(suite.unit.ID, suite.owners[ownerIdx].ID, pct)
	suite.Require().NoError(suite.repo.Create(suite.ctx, o))
	return o
}

// TestSumCurrentPercentage tests which rows count toward capacity
func (suite *OwnershipRepositoryTestSuite) TestSumCurrentPercentage() {
	now := time.Now()
	first := suite.create(0, 40)
	suite.create(1, 25.5)

	expired := suite.factories.Ownership.EndingOn(suite.unit.ID, suite.owners[2].ID, 30, now.AddDate(0, 0, -1))
	suite.Require().NoError(suite.repo.Create(suite.ctx, expired))

	future := suite.factories.Ownership.EndingOn(suite.unit.ID, suite.owners[2].ID, 10, now.AddDate(0, 1, 0))
	suite.Require().NoError(suite.repo.Create(suite.ctx, future))

	total, err := suite.repo.SumCurrentPercentage(suite.ctx, suite.unit.ID, 0, now)
	suite.Require().NoError(err)
	suite.InDelta(75.5, total, 0.001)

	total, err = suite.repo.SumCurrentPercentage(suite.ctx, suite.unit.ID, first.ID, now)
	suite.Require().NoError(err)
	suite.InDelta(35.5, total, 0.001)

	_, err = suite.repo.Close(suite.ctx, first.ID)
	suite.Require().NoError(err)
	total, err = suite.repo.SumCurrentPercentage(suite.ctx, suite.unit.ID, 0, now)
	suite.Require().NoError(err)
	suite.InDelta(35.5, total, 0.001)
}

// TestSumEmptyUnit tests that a unit with no ownerships sums to zero
func (suite *OwnershipRepositoryTestSuite) TestSumEmptyUnit() {
	total, err := suite.repo.SumCurrentPercentage(suite.ctx, suite.unit.ID, 0, time.Now())
	suite.Require().NoError(err)
	suite.Zero(total)
}

// TestCheckConstraintRejectsOutOfRange tests the per-row percentage bound in the schema
func (suite *OwnershipRepositoryTestSuite) TestCheckConstraintRejectsOutOfRange() {
	o := suite.factories.Ownership.Create(suite.unit.ID, suite.owners[0].ID, 120)
	err := suite.repo.Create(suite.ctx, o)
	suite.Require().Error(err)
	suite.True(IsCheckViolation(err))
}

// TestApplyUpdate tests the builder-driven update path
func (suite *OwnershipRepositoryTestSuite) TestApplyUpdate() {
	o := suite.create(0, 60)

	changes := NewUpdateBuilder("ownerships", OwnershipUpdatableColumns)
	suite.Require().NoError(changes.Set("ownership_percentage", 55.25))
	suite.Require().NoError(changes.Set("notary_reference", "ME-DURAND-2024"))
	end := datatypes.Date(models.DateOf(time.Now().AddDate(1, 0, 0)))
	suite.Require().NoError(changes.Set("end_date", end))

	updated, err := suite.repo.ApplyUpdate(suite.ctx, o.ID, changes)
	suite.Require().NoError(err)
	suite.Equal(o.ID, updated.ID)
	suite.InDelta(55.25, updated.OwnershipPercentage, 0.001)
	suite.Require().NotNil(updated.NotaryReference)
	suite.Equal("ME-DURAND-2024", *updated.NotaryReference)
	suite.Require().NotNil(updated.EndDate)
	suite.True(updated.Active)
	suite.True(updated.UpdatedAt.After(o.UpdatedAt) || updated.UpdatedAt.Equal(o.UpdatedAt))
}

// TestApplyUpdateMissing tests updating a row that does not exist
func (suite *OwnershipRepositoryTestSuite) TestApplyUpdateMissing() {
	changes := NewUpdateBuilder("ownerships", OwnershipUpdatableColumns)
	suite.Require().NoError(changes.Set("is_rental_property", true))

	_, err := suite.repo.ApplyUpdate(suite.ctx, 4242, changes)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListCurrent tests ordering and filtering of current owners
func (suite *OwnershipRepositoryTestSuite) TestListCurrent() {
	suite.create(0, 30)
	big := suite.create(1, 50)
	expired := suite.factories.Ownership.EndingOn(suite.unit.ID, suite.owners[2].ID, 20, time.Now())
	suite.Require().NoError(suite.repo.Create(suite.ctx, expired))

	rows, err := suite.repo.ListCurrent(suite.ctx, OwnershipFilter{UnitID: &suite.unit.ID}, time.Now())
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal(big.ID, rows[0].ID)
	suite.Equal(suite.owners[1].Email, rows[0].OwnerEmail)
	suite.Equal(suite.unit.UnitNumber, rows[0].UnitNumber)
	suite.Equal(suite.unit.BuildingID, rows[0].BuildingID)

	other := int64(9999)
	rows, err = suite.repo.ListCurrent(suite.ctx, OwnershipFilter{BuildingID: &other}, time.Now())
	suite.Require().NoError(err)
	suite.Empty(rows)
}

// TestListBuildingOwners tests that each current, active owner of a building appears once, by name
func (suite *OwnershipRepositoryTestSuite) TestListBuildingOwners() {
	second := suite.factories.Unit.WithBuilding(suite.unit.BuildingID)
	suite.Require().NoError(suite.units.Create(suite.ctx, second))

	alice := suite.factories.Owner.Create()
	alice.FirstName = "Alice"
	suite.Require().NoError(suite.identities.Create(suite.ctx, alice))

	suite.create(0, 50)
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Ownership.Create(second.ID, suite.owners[0].ID, 50)))
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Ownership.Create(second.ID, alice.ID, 50)))

	// deactivated owner with a current share
	suite.create(1, 20)
	_, err := suite.identities.SetActive(suite.ctx, models.PartitionOwner, suite.owners[1].ID, false)
	suite.Require().NoError(err)

	// active owner whose only share has ended
	expired := suite.factories.Ownership.EndingOn(suite.unit.ID, suite.owners[2].ID, 30, time.Now())
	suite.Require().NoError(suite.repo.Create(suite.ctx, expired))

	owners, err := suite.repo.ListBuildingOwners(suite.ctx, suite.unit.BuildingID, time.Now())
	suite.Require().NoError(err)
	suite.Require().Len(owners, 2)
	suite.Equal(alice.ID, owners[0].ID)
	suite.Equal(suite.owners[0].ID, owners[1].ID)
	suite.Equal(suite.owners[0].Email, owners[1].Email)

	owners, err = suite.repo.ListBuildingOwners(suite.ctx, 9999, time.Now())
	suite.Require().NoError(err)
	suite.Empty(owners)
}

// TestWithUnitLockMissingUnit tests locking a unit that does not exist
func (suite *OwnershipRepositoryTestSuite) TestWithUnitLockMissingUnit() {
	called := false
	err := suite.repo.WithUnitLock(suite.ctx, 777, func(OwnershipRepositoryInterface) error {
		called = true
		return nil
	})
	suite.ErrorIs(err, apperrors.ErrUnitNotFound)
	suite.False(called)
}

// TestWithUnitLockRollsBack tests that a failing callback leaves no rows behind
func (suite *OwnershipRepositoryTestSuite) TestWithUnitLockRollsBack() {
	err := suite.repo.WithUnitLock(suite.ctx, suite.unit.ID, func(tx OwnershipRepositoryInterface) error {
		o := suite.factories.Ownership.Create(suite.unit.ID, suite.owners[0].ID, 10)
		if err := tx.Create(suite.ctx, o); err != nil {
			return err
		}
		return errFull
	})
	suite.ErrorIs(err, errFull)

	total, err := suite.repo.SumCurrentPercentage(suite.ctx, suite.unit.ID, 0, time.Now())
	suite.Require().NoError(err)
	suite.Zero(total)
}

// TestConcurrentCreatesNeverExceedCapacity races many check-then-insert writers on one unit
func (suite *OwnershipRepositoryTestSuite) TestConcurrentCreatesNeverExceedCapacity() {
	const workers = 12
	const share = 20.0

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, rejected := 0, 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := suite.repo.WithUnitLock(suite.ctx, suite.unit.ID, func(tx OwnershipRepositoryInterface) error {
				current, err := tx.SumCurrentPercentage(suite.ctx, suite.unit.ID, 0, time.Now())
				if err != nil {
					return err
				}
				if current+share > 100 {
					return errFull
				}
				o := suite.factories.Ownership.Create(suite.unit.ID, suite.owners[i%len(suite.owners)].ID, share)
				return tx.Create(suite.ctx, o)
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, errFull):
				rejected++
			default:
				suite.Failf("unexpected error", "%v", err)
			}
		}(i)
	}
	wg.Wait()

	suite.Equal(5, succeeded)
	suite.Equal(workers-5, rejected)

	total, err := suite.repo.SumCurrentPercentage(suite.ctx, suite.unit.ID, 0, time.Now())
	suite.Require().NoError(err)
	suite.InDelta(100, total, 0.001)
}

// TestOwnershipRepositoryTestSuite runs the test suite
func TestOwnershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OwnershipRepositoryTestSuite))
}
