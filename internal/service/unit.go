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

// UnitService handles business logic for units
type UnitService struct {
	units     repository.UnitRepositoryInterface
	buildings repository.BuildingRepositoryInterface
	ledger    *OwnershipLedger
	validator *validator.Validate
}

// NewUnitService creates a new unit service
func NewUnitService(units repository.UnitRepositoryInterface, buildings repository.BuildingRepositoryInterface, ledger *OwnershipLedger, validator *validator.Validate) *UnitService {
	return &UnitService{
		units:     units,
		buildings: buildings,
		ledger:    ledger,
		validator: validator,
	}
}

// CreateUnitRequest represents the request to create a unit
type CreateUnitRequest struct {
	BuildingID      int64           `json:"building_id" validate:"required,gt=0" example:"1"`
	UnitNumber      string          `json:"unit_number" validate:"required,max=20" example:"A12"`
	Floor           *int            `json:"floor,omitempty" example:"3"`
	UnitType        models.UnitType `json:"unit_type,omitempty" validate:"omitempty,oneof=apartment commercial garage storage other" example:"apartment"`
	SurfaceArea     *float64        `json:"surface_area,omitempty" validate:"omitempty,gt=0"`
	Millieme        int             `json:"millieme" validate:"gte=0,lte=1000" example:"45"`
	Description     string          `json:"description,omitempty" validate:"max=2000"`
	BalconyArea     *float64        `json:"balcony_area,omitempty" validate:"omitempty,gte=0"`
	GarageIncluded  bool            `json:"garage_included"`
	StorageIncluded bool            `json:"storage_included"`
}

// UpdateUnitRequest represents a partial unit update; absent fields are left unchanged
type UpdateUnitRequest struct {
	UnitNumber      *string          `json:"unit_number,omitempty" validate:"omitempty,min=1,max=20"`
	Floor           *int             `json:"floor,omitempty"`
	UnitType        *models.UnitType `json:"unit_type,omitempty" validate:"omitempty,oneof=apartment commercial garage storage other"`
	SurfaceArea     *float64         `json:"surface_area,omitempty" validate:"omitempty,gt=0"`
	Millieme        *int             `json:"millieme,omitempty" validate:"omitempty,gte=0,lte=1000"`
	Description     *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
	BalconyArea     *float64         `json:"balcony_area,omitempty" validate:"omitempty,gte=0"`
	GarageIncluded  *bool            `json:"garage_included,omitempty"`
	StorageIncluded *bool            `json:"storage_included,omitempty"`
}

// UnitResponse represents a unit
type UnitResponse struct {
	ID              int64           `json:"id"`
	BuildingID      int64           `json:"building_id"`
	UnitNumber      string          `json:"unit_number"`
	Floor           *int            `json:"floor,omitempty"`
	UnitType        models.UnitType `json:"unit_type"`
	SurfaceArea     *float64        `json:"surface_area,omitempty"`
	Millieme        int             `json:"millieme"`
	Description     string          `json:"description,omitempty"`
	BalconyArea     *float64        `json:"balcony_area,omitempty"`
	GarageIncluded  bool            `json:"garage_included"`
	StorageIncluded bool            `json:"storage_included"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

// UnitWithOwnersResponse is a unit with its current owners, largest share first
type UnitWithOwnersResponse struct {
	UnitResponse
	Owners []OwnershipResponse `json:"owners"`
}

// UnitListResponse lists units
type UnitListResponse struct {
	Units []UnitResponse `json:"units"`
}

// CreateUnit creates a unit; the unit number must be unique within its building
func (s *UnitService) CreateUnit(ctx context.Context, req *CreateUnitRequest) (*UnitResponse, error) {
	req.UnitNumber = strings.TrimSpace(req.UnitNumber)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if _, err := s.buildings.GetByID(ctx, req.BuildingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBuildingNotFound
		}
		return nil, err
	}

	taken, err := s.units.NumberTaken(ctx, req.BuildingID, req.UnitNumber, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrUnitExists
	}

	unitType := req.UnitType
	if unitType == "" {
		unitType = models.UnitTypeApartment
	}

	unit := &models.Unit{
		BuildingID:      req.BuildingID,
		UnitNumber:      req.UnitNumber,
		Floor:           req.Floor,
		UnitType:        unitType,
		SurfaceArea:     req.SurfaceArea,
		Millieme:        req.Millieme,
		Description:     req.Description,
		BalconyArea:     req.BalconyArea,
		GarageIncluded:  req.GarageIncluded,
		StorageIncluded: req.StorageIncluded,
	}
	if err := s.units.Create(ctx, unit); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrUnitExists
		}
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"unit_id":     unit.ID,
		"building_id": unit.BuildingID,
	}).Info("unit created")

	return toUnitResponse(unit), nil
}

// GetUnit retrieves a unit with its current owners
func (s *UnitService) GetUnit(ctx context.Context, id int64) (*UnitWithOwnersResponse, error) {
	if id <= 0 {
		return nil, &apperrors.ValidationError{Code: apperrors.ValidationInvalidID, Field: "id", Message: "must be a positive integer"}
	}
	unit, err := s.units.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnitNotFound
		}
		return nil, err
	}

	owners, err := s.ledger.CurrentOwners(ctx, id)
	if err != nil {
		return nil, err
	}

	return &UnitWithOwnersResponse{
		UnitResponse: *toUnitResponse(unit),
		Owners:       owners,
	}, nil
}

// ListUnits lists units ordered by building and unit number
func (s *UnitService) ListUnits(ctx context.Context, buildingID *int64) (*UnitListResponse, error) {
	units, err := s.units.List(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	out := make([]UnitResponse, 0, len(units))
	for i := range units {
		out = append(out, *toUnitResponse(&units[i]))
	}
	return &UnitListResponse{Units: out}, nil
}

// UpdateUnit applies a partial update. A new unit number must not clash with another unit of the building.
func (s *UnitService) UpdateUnit(ctx context.Context, id int64, req *UpdateUnitRequest) (*UnitResponse, error) {
	if id <= 0 {
		return nil, &apperrors.ValidationError{Code: apperrors.ValidationInvalidID, Field: "id", Message: "must be a positive integer"}
	}
	if req.UnitNumber != nil {
		trimmed := strings.TrimSpace(*req.UnitNumber)
		req.UnitNumber = &trimmed
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	changes := repository.NewUpdateBuilder(models.Unit{}.TableName(), repository.UnitUpdatableColumns)
	set := func(column string, value interface{}) error {
		return changes.Set(column, value)
	}
	var err error
	if req.UnitNumber != nil {
		err = errors.Join(err, set("unit_number", *req.UnitNumber))
	}
	if req.Floor != nil {
		err = errors.Join(err, set("floor", *req.Floor))
	}
	if req.UnitType != nil {
		err = errors.Join(err, set("unit_type", string(*req.UnitType)))
	}
	if req.SurfaceArea != nil {
		err = errors.Join(err, set("surface_area", *req.SurfaceArea))
	}
	if req.Millieme != nil {
		err = errors.Join(err, set("millieme", *req.Millieme))
	}
	if req.Description != nil {
		err = errors.Join(err, set("description", *req.Description))
	}
	if req.BalconyArea != nil {
		err = errors.Join(err, set("balcony_area", *req.BalconyArea))
	}
	if req.GarageIncluded != nil {
		err = errors.Join(err, set("garage_included", *req.GarageIncluded))
	}
	if req.StorageIncluded != nil {
		err = errors.Join(err, set("storage_included", *req.StorageIncluded))
	}
	if err != nil {
		return nil, err
	}
	if changes.Len() == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	existing, err := s.units.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnitNotFound
		}
		return nil, err
	}

	if req.UnitNumber != nil && *req.UnitNumber != existing.UnitNumber {
		taken, err := s.units.NumberTaken(ctx, existing.BuildingID, *req.UnitNumber, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrUnitExists
		}
	}

	updated, err := s.units.ApplyUpdate(ctx, id, changes)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.ErrUnitNotFound
		case repository.IsUniqueViolation(err):
			return nil, apperrors.ErrUnitExists
		}
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"unit_id": id,
		"columns": changes.Columns(),
	}).Info("unit updated")

	return toUnitResponse(updated), nil
}

func toUnitResponse(u *models.Unit) *UnitResponse {
	return &UnitResponse{
		ID:              u.ID,
		BuildingID:      u.BuildingID,
		UnitNumber:      u.UnitNumber,
		Floor:           u.Floor,
		UnitType:        u.UnitType,
		SurfaceArea:     u.SurfaceArea,
		Millieme:        u.Millieme,
		Description:     u.Description,
		BalconyArea:     u.BalconyArea,
		GarageIncluded:  u.GarageIncluded,
		StorageIncluded: u.StorageIncluded,
		CreatedAt:       u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       u.UpdatedAt.Format(time.RFC3339),
	}
}
