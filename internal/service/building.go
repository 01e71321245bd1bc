package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"copro-backend/internal/database/models"
	apperrors "copro-backend/internal/errors"
	"copro-backend/internal/logger"
	"copro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// BuildingService handles business logic for buildings
type BuildingService struct {
	repo       repository.BuildingRepositoryInterface
	identities repository.IdentityRepositoryInterface
	validator  *validator.Validate
}

// NewBuildingService creates a new building service
func NewBuildingService(repo repository.BuildingRepositoryInterface, identities repository.IdentityRepositoryInterface, validator *validator.Validate) *BuildingService {
	return &BuildingService{
		repo:       repo,
		identities: identities,
		validator:  validator,
	}
}

// CreateBuildingRequest represents the request to create a building
type CreateBuildingRequest struct {
	Name                string            `json:"name" validate:"required,max=200" example:"Résidence Les Tilleuls"`
	Address             string            `json:"address" validate:"required,max=500" example:"12 rue des Tilleuls, Lyon"`
	UnitsCount          int               `json:"units_count" validate:"gte=0" example:"24"`
	SyndicID            *int64            `json:"syndic_id,omitempty" validate:"omitempty,gt=0"`
	SyndicType          models.SyndicType `json:"syndic_type,omitempty" validate:"omitempty,oneof=professional voluntary" example:"professional"`
	SyndicCompanyName   string            `json:"syndic_company_name,omitempty" validate:"max=200"`
	SyndicLicenseNumber string            `json:"syndic_license_number,omitempty" validate:"max=100"`
	SyndicContactEmail  string            `json:"syndic_contact_email,omitempty" validate:"omitempty,email,max=255"`
	SyndicContactPhone  string            `json:"syndic_contact_phone,omitempty" validate:"max=30"`
}

// BuildingResponse represents a building
type BuildingResponse struct {
	ID                  int64             `json:"id"`
	Name                string            `json:"name"`
	Address             string            `json:"address"`
	UnitsCount          int               `json:"units_count"`
	SyndicID            *int64            `json:"syndic_id,omitempty"`
	SyndicName          string            `json:"syndic_name"`
	SyndicType          models.SyndicType `json:"syndic_type"`
	SyndicCompanyName   string            `json:"syndic_company_name,omitempty"`
	SyndicLicenseNumber string            `json:"syndic_license_number,omitempty"`
	SyndicContactEmail  string            `json:"syndic_contact_email,omitempty"`
	SyndicContactPhone  string            `json:"syndic_contact_phone,omitempty"`
	CreatedAt           string            `json:"created_at"`
	UpdatedAt           string            `json:"updated_at"`
}

// BuildingListResponse represents a page of buildings
type BuildingListResponse struct {
	Buildings []BuildingResponse `json:"buildings"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

const noSyndicName = "No Syndic"

// CreateBuilding creates a building; a referenced syndic must be active in the syndic partition
func (s *BuildingService) CreateBuilding(ctx context.Context, req *CreateBuildingRequest) (*BuildingResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	syndicName := noSyndicName
	if req.SyndicID != nil {
		syndic, err := s.identities.GetActiveByID(ctx, models.PartitionSyndic, *req.SyndicID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrSyndicNotFound
			}
			return nil, err
		}
		syndicName = syndic.FullName()
	}

	syndicType := req.SyndicType
	if syndicType == "" {
		syndicType = models.SyndicTypeProfessional
	}

	building := &models.Building{
		Name:                req.Name,
		Address:             req.Address,
		UnitsCount:          req.UnitsCount,
		SyndicID:            req.SyndicID,
		SyndicType:          syndicType,
		SyndicCompanyName:   req.SyndicCompanyName,
		SyndicLicenseNumber: req.SyndicLicenseNumber,
		SyndicContactEmail:  strings.ToLower(strings.TrimSpace(req.SyndicContactEmail)),
		SyndicContactPhone:  req.SyndicContactPhone,
	}
	if err := s.repo.Create(ctx, building); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrSyndicNotFound
		}
		return nil, err
	}

	logger.WithContext(ctx).WithField("building_id", building.ID).Info("building created")
	return toBuildingResponse(building, syndicName), nil
}

// GetBuilding retrieves a building by ID
func (s *BuildingService) GetBuilding(ctx context.Context, id int64) (*BuildingResponse, error) {
	if id <= 0 {
		return nil, &apperrors.ValidationError{Code: apperrors.ValidationInvalidID, Field: "id", Message: "must be a positive integer"}
	}
	building, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildingNotFound
		}
		return nil, err
	}

	names := map[int64]string{}
	name, err := s.syndicName(ctx, building.SyndicID, names)
	if err != nil {
		return nil, err
	}
	return toBuildingResponse(building, name), nil
}

// ListBuildings retrieves buildings ordered by name with pagination
func (s *BuildingService) ListBuildings(ctx context.Context, page, pageSize int) (*BuildingListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	buildings, total, err := s.repo.GetAll(ctx, pageSize, offset)
	if err != nil {
		return nil, err
	}

	names := map[int64]string{}
	out := make([]BuildingResponse, 0, len(buildings))
	for i := range buildings {
		name, err := s.syndicName(ctx, buildings[i].SyndicID, names)
		if err != nil {
			return nil, err
		}
		out = append(out, *toBuildingResponse(&buildings[i], name))
	}

	return &BuildingListResponse{
		Buildings: out,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// syndicName resolves the display name of a building's syndic, inactive syndics included
func (s *BuildingService) syndicName(ctx context.Context, syndicID *int64, cache map[int64]string) (string, error) {
	if syndicID == nil {
		return noSyndicName, nil
	}
	if name, ok := cache[*syndicID]; ok {
		return name, nil
	}
	name := noSyndicName
	syndic, err := s.identities.GetByID(ctx, models.PartitionSyndic, *syndicID)
	switch {
	case err == nil:
		name = syndic.FullName()
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return "", err
	}
	cache[*syndicID] = name
	return name, nil
}

func toBuildingResponse(b *models.Building, syndicName string) *BuildingResponse {
	return &BuildingResponse{
		ID:                  b.ID,
		Name:                b.Name,
		Address:             b.Address,
		UnitsCount:          b.UnitsCount,
		SyndicID:            b.SyndicID,
		SyndicName:          syndicName,
		SyndicType:          b.SyndicType,
		SyndicCompanyName:   b.SyndicCompanyName,
		SyndicLicenseNumber: b.SyndicLicenseNumber,
		SyndicContactEmail:  b.SyndicContactEmail,
		SyndicContactPhone:  b.SyndicContactPhone,
		CreatedAt:           b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           b.UpdatedAt.Format(time.RFC3339),
	}
}
