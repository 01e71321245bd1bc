//go:build integration
// +build integration

package repository

import (
	"context"
	"sync"
	"testing"

	"copro-backend/internal/database/models"
	"copro-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// IdentityRepositoryTestSuite tests the IdentityRepository
type IdentityRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *IdentityRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *IdentityRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewIdentityRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *IdentityRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *IdentityRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *IdentityRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGet tests inserting into each partition and reading back
func (suite *IdentityRepositoryTestSuite) TestCreateAndGet() {
	for _, f := range []*testutils.IdentityFactory{suite.factories.Owner, suite.factories.Syndic, suite.factories.Admin} {
		identity := f.Create()
		suite.Require().NoError(suite.repo.Create(suite.ctx, identity))
		suite.NotZero(identity.ID)
		suite.NotZero(identity.CreatedAt)

		got, err := suite.repo.GetActiveByID(suite.ctx, identity.Partition, identity.ID)
		suite.Require().NoError(err)
		suite.Equal(identity.Partition, got.Partition)
		suite.Equal(identity.Email, got.Email)
		suite.Equal(identity.CompanyName, got.CompanyName)
		suite.NotEmpty(got.PasswordHash)
	}
}

// TestCreateNormalizesEmail tests that emails are stored lower-cased
func (suite *IdentityRepositoryTestSuite) TestCreateNormalizesEmail() {
	identity := suite.factories.Owner.WithEmail("  Jean.Dupont@Example.COM ")
	suite.Require().NoError(suite.repo.Create(suite.ctx, identity))
	suite.Equal("jean.dupont@example.com", identity.Email)

	got, err := suite.repo.GetActiveByEmail(suite.ctx, models.PartitionOwner, "JEAN.DUPONT@example.com")
	suite.Require().NoError(err)
	suite.Equal(identity.ID, got.ID)
}

// TestCreateInactive tests that an explicitly inactive identity is stored inactive
func (suite *IdentityRepositoryTestSuite) TestCreateInactive() {
	identity := suite.factories.Syndic.Inactive()
	suite.Require().NoError(suite.repo.Create(suite.ctx, identity))
	suite.False(identity.Active)

	_, err := suite.repo.GetActiveByID(suite.ctx, models.PartitionSyndic, identity.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	got, err := suite.repo.GetByID(suite.ctx, models.PartitionSyndic, identity.ID)
	suite.Require().NoError(err)
	suite.False(got.Active)
}

// TestIDsOverlapAcrossPartitions tests that ids are only unique per partition
func (suite *IdentityRepositoryTestSuite) TestIDsOverlapAcrossPartitions() {
	owner := suite.factories.Owner.Create()
	syndic := suite.factories.Syndic.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, owner))
	suite.Require().NoError(suite.repo.Create(suite.ctx, syndic))

	// sequences restart per table after truncation, so both rows get id 1
	suite.Equal(owner.ID, syndic.ID)

	got, err := suite.repo.GetActiveByID(suite.ctx, models.PartitionSyndic, syndic.ID)
	suite.Require().NoError(err)
	suite.Equal(syndic.Email, got.Email)
}

// TestEmailExists tests the cross-partition email check
func (suite *IdentityRepositoryTestSuite) TestEmailExists() {
	admin := suite.factories.Admin.Inactive()
	suite.Require().NoError(suite.repo.Create(suite.ctx, admin))

	exists, err := suite.repo.EmailExists(suite.ctx, admin.Email)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repo.EmailExists(suite.ctx, "nobody@example.com")
	suite.Require().NoError(err)
	suite.False(exists)
}

// TestSetActive tests toggling the active flag
func (suite *IdentityRepositoryTestSuite) TestSetActive() {
	owner := suite.factories.Owner.Create()
	suite.Require().NoError(suite.repo.Create(suite.ctx, owner))

	updated, err := suite.repo.SetActive(suite.ctx, models.PartitionOwner, owner.ID, false)
	suite.Require().NoError(err)
	suite.False(updated.Active)

	_, err = suite.repo.GetActiveByEmail(suite.ctx, models.PartitionOwner, owner.Email)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.repo.SetActive(suite.ctx, models.PartitionOwner, 9999, true)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListByPartition tests listing one partition
func (suite *IdentityRepositoryTestSuite) TestListByPartition() {
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Owner.Create()))
	}
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Syndic.Create()))

	owners, err := suite.repo.ListByPartition(suite.ctx, models.PartitionOwner)
	suite.Require().NoError(err)
	suite.Len(owners, 3)
	for _, o := range owners {
		suite.Equal(models.PartitionOwner, o.Partition)
	}
}

// TestWithEmailLockSerializesRegistration tests that only one of many concurrent
// check-then-insert registrations of the same email succeeds
func (suite *IdentityRepositoryTestSuite) TestWithEmailLockSerializesRegistration() {
	const workers = 8
	email := "race@example.com"
	partitions := []models.Partition{models.PartitionOwner, models.PartitionSyndic, models.PartitionAdministrator}

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			identity := testutils.NewIdentityFactory(partitions[i%len(partitions)]).WithEmail(email)
			err := suite.repo.WithEmailLock(suite.ctx, email, func(tx IdentityRepositoryInterface) error {
				exists, err := tx.EmailExists(suite.ctx, email)
				if err != nil || exists {
					return err
				}
				if err := tx.Create(suite.ctx, identity); err != nil {
					return err
				}
				mu.Lock()
				created++
				mu.Unlock()
				return nil
			})
			suite.NoError(err)
		}(i)
	}
	wg.Wait()

	suite.Equal(1, created)
}

// TestIdentityRepositoryTestSuite runs the test suite
func TestIdentityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityRepositoryTestSuite))
}
