package service_test

import (
	"context"
	"testing"

	"copro-backend/internal/database/models"
	apperrors "copro-backend/internal/errors"
	"copro-backend/internal/mocks"
	"copro-backend/internal/service"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// BuildingServiceTestSuite defines the test suite for BuildingService
type BuildingServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	repo            *mocks.MockBuildingRepositoryInterface
	identities      *mocks.MockIdentityRepositoryInterface
	buildingService *service.BuildingService
}

// SetupTest sets up the test suite
func (suite *BuildingServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockBuildingRepositoryInterface(suite.ctrl)
	suite.identities = mocks.NewMockIdentityRepositoryInterface(suite.ctrl)
	suite.buildingService = service.NewBuildingService(suite.repo, suite.identities, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *BuildingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BuildingServiceTestSuite) TestCreateBuildingWithSyndic() {
	syndicID := int64(5)
	suite.identities.EXPECT().GetActiveByID(gomock.Any(), models.PartitionSyndic, syndicID).
		Return(identityFixture(models.PartitionSyndic, syndicID), nil)
	suite.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *models.Building) error {
		suite.Equal(models.SyndicTypeProfessional, b.SyndicType)
		suite.Equal("gestion@syndic.fr", b.SyndicContactEmail)
		b.ID = 1
		return nil
	})

	resp, err := suite.buildingService.CreateBuilding(suite.ctx, &service.CreateBuildingRequest{
		Name:               " Résidence Les Tilleuls ",
		Address:            "12 rue des Tilleuls, Lyon",
		UnitsCount:         24,
		SyndicID:           &syndicID,
		SyndicContactEmail: "Gestion@Syndic.fr",
	})
	suite.Require().NoError(err)
	suite.Equal(int64(1), resp.ID)
	suite.Equal("Résidence Les Tilleuls", resp.Name)
	suite.Equal("Camille Martin", resp.SyndicName)
}

func (suite *BuildingServiceTestSuite) TestCreateBuildingUnknownSyndic() {
	syndicID := int64(7)
	suite.identities.EXPECT().GetActiveByID(gomock.Any(), models.PartitionSyndic, syndicID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.buildingService.CreateBuilding(suite.ctx, &service.CreateBuildingRequest{
		Name:     "Le Parc",
		Address:  "1 avenue du Parc",
		SyndicID: &syndicID,
	})
	suite.ErrorIs(err, apperrors.ErrSyndicNotFound)
}

func (suite *BuildingServiceTestSuite) TestCreateBuildingForeignKeyRace() {
	suite.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23503"})

	_, err := suite.buildingService.CreateBuilding(suite.ctx, &service.CreateBuildingRequest{Name: "Le Parc", Address: "1 avenue du Parc"})
	suite.ErrorIs(err, apperrors.ErrSyndicNotFound)
}

func (suite *BuildingServiceTestSuite) TestCreateBuildingValidation() {
	testCases := []struct {
		name  string
		req   service.CreateBuildingRequest
		field string
	}{
		{name: "missing name", req: service.CreateBuildingRequest{Address: "x"}, field: "name"},
		{name: "missing address", req: service.CreateBuildingRequest{Name: "x"}, field: "address"},
		{name: "negative units", req: service.CreateBuildingRequest{Name: "x", Address: "y", UnitsCount: -1}, field: "units_count"},
		{name: "bad syndic type", req: service.CreateBuildingRequest{Name: "x", Address: "y", SyndicType: "elected"}, field: "syndic_type"},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := tc.req
			_, err := suite.buildingService.CreateBuilding(suite.ctx, &req)
			suite.Require().Error(err)
			suite.Contains(err.Error(), tc.field)
		})
	}
}

func (suite *BuildingServiceTestSuite) TestGetBuildingNotFound() {
	suite.repo.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.buildingService.GetBuilding(suite.ctx, 9)
	suite.ErrorIs(err, apperrors.ErrBuildingNotFound)
}

func (suite *BuildingServiceTestSuite) TestListBuildingsResolvesSyndicNamesOnce() {
	syndicID := int64(5)
	suite.repo.EXPECT().GetAll(gomock.Any(), 20, 0).Return([]models.Building{
		{BaseModel: models.BaseModel{ID: 1}, Name: "A", SyndicID: &syndicID},
		{BaseModel: models.BaseModel{ID: 2}, Name: "B", SyndicID: &syndicID},
		{BaseModel: models.BaseModel{ID: 3}, Name: "C"},
	}, int64(3), nil)
	suite.identities.EXPECT().GetByID(gomock.Any(), models.PartitionSyndic, syndicID).
		Return(identityFixture(models.PartitionSyndic, syndicID), nil).Times(1)

	resp, err := suite.buildingService.ListBuildings(suite.ctx, 0, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), resp.Total)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)
	suite.Require().Len(resp.Buildings, 3)
	suite.Equal("Camille Martin", resp.Buildings[1].SyndicName)
	suite.Equal("No Syndic", resp.Buildings[2].SyndicName)
}

func TestBuildingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BuildingServiceTestSuite))
}
