//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"copro-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitRepositoryTestSuite tests the UnitRepository and BuildingRepository
type UnitRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UnitRepository
	buildings     *BuildingRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *UnitRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUnitRepository(suite.baseTestSuite.DB)
	suite.buildings = NewBuildingRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *UnitRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UnitRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UnitRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestBuildingCRUD tests creating, reading and paging buildings
func (suite *UnitRepositoryTestSuite) TestBuildingCRUD() {
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.buildings.Create(suite.ctx, suite.factories.Building.Create()))
	}

	list, total, err := suite.buildings.GetAll(suite.ctx, 2, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(list, 2)

	got, err := suite.buildings.GetByID(suite.ctx, list[0].ID)
	suite.Require().NoError(err)
	suite.Equal(list[0].Name, got.Name)

	_, err = suite.buildings.GetByID(suite.ctx, 12345)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUnitNumberUniquePerBuilding tests the composite unique index and NumberTaken
func (suite *UnitRepositoryTestSuite) TestUnitNumberUniquePerBuilding() {
	b1 := suite.factories.Building.Create()
	b2 := suite.factories.Building.Create()
	suite.Require().NoError(suite.buildings.Create(suite.ctx, b1))
	suite.Require().NoError(suite.buildings.Create(suite.ctx, b2))

	u1 := suite.factories.Unit.WithBuilding(b1.ID)
	u1.UnitNumber = "101"
	suite.Require().NoError(suite.repo.Create(suite.ctx, u1))

	taken, err := suite.repo.NumberTaken(suite.ctx, b1.ID, "101", 0)
	suite.Require().NoError(err)
	suite.True(taken)

	taken, err = suite.repo.NumberTaken(suite.ctx, b1.ID, "101", u1.ID)
	suite.Require().NoError(err)
	suite.False(taken)

	u2 := suite.factories.Unit.WithBuilding(b2.ID)
	u2.UnitNumber = "101"
	suite.Require().NoError(suite.repo.Create(suite.ctx, u2))

	dup := suite.factories.Unit.WithBuilding(b1.ID)
	dup.UnitNumber = "101"
	err = suite.repo.Create(suite.ctx, dup)
	suite.Require().Error(err)
	suite.True(IsUniqueViolation(err))

	units, err := suite.repo.List(suite.ctx, &b1.ID)
	suite.Require().NoError(err)
	suite.Len(units, 1)

	all, err := suite.repo.List(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

// TestApplyUpdate tests updating unit metadata through the builder
func (suite *UnitRepositoryTestSuite) TestApplyUpdate() {
	b := suite.factories.Building.Create()
	suite.Require().NoError(suite.buildings.Create(suite.ctx, b))
	u := suite.factories.Unit.WithBuilding(b.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, u))

	changes := NewUpdateBuilder("units", UnitUpdatableColumns)
	suite.Require().NoError(changes.Set("millieme", 250))
	suite.Require().NoError(changes.Set("unit_type", "commercial"))
	suite.Require().NoError(changes.Set("garage_included", true))

	updated, err := suite.repo.ApplyUpdate(suite.ctx, u.ID, changes)
	suite.Require().NoError(err)
	suite.Equal(250, updated.Millieme)
	suite.Equal("commercial", string(updated.UnitType))
	suite.True(updated.GarageIncluded)
	suite.Equal(u.UnitNumber, updated.UnitNumber)
}

// TestUnitRepositoryTestSuite runs the test suite
func TestUnitRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UnitRepositoryTestSuite))
}
