package service

import (
	"context"
	"errors"
	"math"
	"time"

	"copro-backend/internal/database/models"
	apperrors "copro-backend/internal/errors"
	"copro-backend/internal/logger"
	"copro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaxOwnershipPercentage is the capacity of a unit
const MaxOwnershipPercentage = 100.0

// Clock returns the current time
type Clock func() time.Time

// OwnershipLedger keeps the active, date-current shares of every unit at or below 100%.
// Every capacity check and the write it guards run in one transaction holding the unit's row lock.
type OwnershipLedger struct {
	ownerships repository.OwnershipRepositoryInterface
	identities repository.IdentityRepositoryInterface
	validator  *validator.Validate
	now        Clock
}

// NewOwnershipLedger creates a new ownership ledger
func NewOwnershipLedger(ownerships repository.OwnershipRepositoryInterface, identities repository.IdentityRepositoryInterface, validator *validator.Validate) *OwnershipLedger {
	return &OwnershipLedger{
		ownerships: ownerships,
		identities: identities,
		validator:  validator,
		now:        time.Now,
	}
}

// WithClock replaces the time source that decides which rows are date-current
func (l *OwnershipLedger) WithClock(now Clock) *OwnershipLedger {
	l.now = now
	return l
}

// CreateOwnershipRequest represents the request to create an ownership
type CreateOwnershipRequest struct {
	UnitID              int64    `json:"unit_id" validate:"required,gt=0" example:"12"`
	OwnerID             int64    `json:"owner_id" validate:"required,gt=0" example:"3"`
	OwnershipPercentage *float64 `json:"ownership_percentage,omitempty" example:"50"`
	StartDate           *string  `json:"start_date,omitempty" example:"2024-01-01"`
	EndDate             *string  `json:"end_date,omitempty"`
	PurchasePrice       *float64 `json:"purchase_price,omitempty" validate:"omitempty,gte=0"`
	NotaryReference     *string  `json:"notary_reference,omitempty" validate:"omitempty,max=100"`
	IsPrimaryResidence  *bool    `json:"is_primary_residence,omitempty"`
	IsRentalProperty    *bool    `json:"is_rental_property,omitempty"`
}

// UpdateOwnershipRequest represents a partial update; absent fields are left unchanged.
// end_date may be set to null to reopen an ownership.
type UpdateOwnershipRequest struct {
	OwnershipPercentage *float64     `json:"ownership_percentage,omitempty"`
	EndDate             OptionalDate `json:"end_date" swaggertype:"string"`
	PurchasePrice       *float64     `json:"purchase_price,omitempty" validate:"omitempty,gte=0"`
	NotaryReference     *string      `json:"notary_reference,omitempty" validate:"omitempty,max=100"`
	IsPrimaryResidence  *bool        `json:"is_primary_residence,omitempty"`
	IsRentalProperty    *bool        `json:"is_rental_property,omitempty"`
}

// OwnershipFilter narrows ListCurrentOwners
type OwnershipFilter struct {
	BuildingID *int64 `form:"building_id"`
	UnitID     *int64 `form:"unit_id"`
}

// OwnershipResponse represents an ownership, optionally with owner and unit details
type OwnershipResponse struct {
	ID                  int64                  `json:"id"`
	UnitID              int64                  `json:"unit_id"`
	OwnerID             int64                  `json:"owner_id"`
	OwnershipPercentage float64                `json:"ownership_percentage"`
	StartDate           string                 `json:"start_date"`
	EndDate             *string                `json:"end_date,omitempty"`
	PurchasePrice       *float64               `json:"purchase_price,omitempty"`
	NotaryReference     *string                `json:"notary_reference,omitempty"`
	IsPrimaryResidence  bool                   `json:"is_primary_residence"`
	IsRentalProperty    bool                   `json:"is_rental_property"`
	Active              bool                   `json:"active"`
	Status              models.OwnershipStatus `json:"status"`
	OwnerFirstName      string                 `json:"owner_first_name,omitempty"`
	OwnerLastName       string                 `json:"owner_last_name,omitempty"`
	OwnerEmail          string                 `json:"owner_email,omitempty"`
	UnitNumber          string                 `json:"unit_number,omitempty"`
	BuildingID          int64                  `json:"building_id,omitempty"`
	CreatedAt           string                 `json:"created_at"`
	UpdatedAt           string                 `json:"updated_at"`
}

// OwnershipListResponse lists current ownerships
type OwnershipListResponse struct {
	Owners []OwnershipResponse `json:"owners"`
}

// BuildingOwnersResponse lists the distinct current owners of a building
type BuildingOwnersResponse struct {
	Owners []UserResponse `json:"owners"`
}

func roundPercentage(v float64) float64 {
	return math.Round(v*100) / 100
}

func checkPercentage(pct float64) error {
	if math.IsNaN(pct) || pct <= 0 || pct > MaxOwnershipPercentage {
		return &apperrors.ValidationError{
			Code:    apperrors.ValidationInvalidPercentage,
			Field:   "ownership_percentage",
			Message: apperrors.ErrInvalidPercentage.Message,
			Details: map[string]interface{}{"requested": pct},
		}
	}
	return nil
}

func exceedsCapacity(current, requested float64) bool {
	return roundPercentage(current+requested) > MaxOwnershipPercentage
}

// CreateOwnership records a new share of a unit. Omitted fields default to 100%, today,
// primary residence and not rented.
func (l *OwnershipLedger) CreateOwnership(ctx context.Context, req *CreateOwnershipRequest) (*OwnershipResponse, error) {
	if err := l.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	pct := MaxOwnershipPercentage
	if req.OwnershipPercentage != nil {
		pct = *req.OwnershipPercentage
	}
	pct = roundPercentage(pct)
	if err := checkPercentage(pct); err != nil {
		return nil, err
	}

	asOf := l.now()
	start := models.DateOf(asOf)
	if req.StartDate != nil {
		d, err := parseDate("start_date", *req.StartDate)
		if err != nil {
			return nil, err
		}
		start = d
	}
	var end *datatypes.Date
	if req.EndDate != nil {
		d, err := parseDate("end_date", *req.EndDate)
		if err != nil {
			return nil, err
		}
		if d.Before(start) {
			return nil, &apperrors.ValidationError{Code: apperrors.ValidationInvalidDateRange, Field: "end_date", Message: "must not be before start_date"}
		}
		dd := datatypes.Date(d)
		end = &dd
	}

	if _, err := l.identities.GetActiveByID(ctx, models.PartitionOwner, req.OwnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOwnerNotFound
		}
		return nil, err
	}

	ownership := &models.Ownership{
		UnitID:              req.UnitID,
		OwnerID:             req.OwnerID,
		OwnershipPercentage: pct,
		StartDate:           datatypes.Date(start),
		EndDate:             end,
		PurchasePrice:       req.PurchasePrice,
		NotaryReference:     req.NotaryReference,
		IsPrimaryResidence:  true,
		IsRentalProperty:    false,
		Active:              true,
	}
	if req.IsPrimaryResidence != nil {
		ownership.IsPrimaryResidence = *req.IsPrimaryResidence
	}
	if req.IsRentalProperty != nil {
		ownership.IsRentalProperty = *req.IsRentalProperty
	}

	err := l.ownerships.WithUnitLock(ctx, req.UnitID, func(tx repository.OwnershipRepositoryInterface) error {
		current, err := tx.SumCurrentPercentage(ctx, req.UnitID, 0, asOf)
		if err != nil {
			return err
		}
		if exceedsCapacity(current, pct) {
			return apperrors.NewCapacityError(roundPercentage(current), pct)
		}
		return tx.Create(ctx, ownership)
	})
	if err != nil {
		return nil, l.mapWriteError(err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"ownership_id": ownership.ID,
		"unit_id":      ownership.UnitID,
		"owner_id":     ownership.OwnerID,
		"percentage":   ownership.OwnershipPercentage,
	}).Info("ownership created")

	return toOwnershipResponse(ownership, asOf), nil
}

// UpdateOwnership applies a partial change. When the percentage or end date changes and the
// row still counts toward capacity afterwards, the other current rows plus the new
// percentage must stay at or below 100%.
func (l *OwnershipLedger) UpdateOwnership(ctx context.Context, id int64, req *UpdateOwnershipRequest) (*OwnershipResponse, error) {
	if id <= 0 {
		return nil, &apperrors.ValidationError{Code: apperrors.ValidationInvalidID, Field: "id", Message: "must be a positive integer"}
	}
	if err := l.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	changes := repository.NewUpdateBuilder(models.Ownership{}.TableName(), repository.OwnershipUpdatableColumns)

	var newPct *float64
	if req.OwnershipPercentage != nil {
		p := roundPercentage(*req.OwnershipPercentage)
		if err := checkPercentage(p); err != nil {
			return nil, err
		}
		newPct = &p
		if err := changes.Set("ownership_percentage", p); err != nil {
			return nil, err
		}
	}

	var newEnd *datatypes.Date
	if req.EndDate.Set {
		if req.EndDate.Value == nil {
			if err := changes.Set("end_date", nil); err != nil {
				return nil, err
			}
		} else {
			d, err := parseDate("end_date", *req.EndDate.Value)
			if err != nil {
				return nil, err
			}
			dd := datatypes.Date(d)
			newEnd = &dd
			if err := changes.Set("end_date", dd); err != nil {
				return nil, err
			}
		}
	}
	if req.PurchasePrice != nil {
		if err := changes.Set("purchase_price", *req.PurchasePrice); err != nil {
			return nil, err
		}
	}
	if req.NotaryReference != nil {
		if err := changes.Set("notary_reference", *req.NotaryReference); err != nil {
			return nil, err
		}
	}
	if req.IsPrimaryResidence != nil {
		if err := changes.Set("is_primary_residence", *req.IsPrimaryResidence); err != nil {
			return nil, err
		}
	}
	if req.IsRentalProperty != nil {
		if err := changes.Set("is_rental_property", *req.IsRentalProperty); err != nil {
			return nil, err
		}
	}
	if changes.Len() == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	existing, err := l.ownerships.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOwnershipNotFound
		}
		return nil, err
	}

	asOf := l.now()
	capacityRelevant := changes.Has("ownership_percentage") || changes.Has("end_date")

	var updated *models.Ownership
	err = l.ownerships.WithUnitLock(ctx, existing.UnitID, func(tx repository.OwnershipRepositoryInterface) error {
		current, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		after := *current
		if newPct != nil {
			after.OwnershipPercentage = *newPct
		}
		// an end date before the start retires the row; it simply never counted
		if req.EndDate.Set {
			after.EndDate = newEnd
		}

		if capacityRelevant && after.CountsTowardCapacity(asOf) {
			others, err := tx.SumCurrentPercentage(ctx, current.UnitID, id, asOf)
			if err != nil {
				return err
			}
			if exceedsCapacity(others, after.OwnershipPercentage) {
				return apperrors.NewCapacityError(roundPercentage(others), after.OwnershipPercentage)
			}
		}

		updated, err = tx.ApplyUpdate(ctx, id, changes)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOwnershipNotFound
		}
		return nil, l.mapWriteError(err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"ownership_id": id,
		"columns":      changes.Columns(),
	}).Info("ownership updated")

	return toOwnershipResponse(updated, asOf), nil
}

// CloseOwnership administratively clears the active flag. History is kept and the row
// no longer counts toward capacity.
func (l *OwnershipLedger) CloseOwnership(ctx context.Context, id int64) (*OwnershipResponse, error) {
	if id <= 0 {
		return nil, &apperrors.ValidationError{Code: apperrors.ValidationInvalidID, Field: "id", Message: "must be a positive integer"}
	}

	existing, err := l.ownerships.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOwnershipNotFound
		}
		return nil, err
	}

	var closed *models.Ownership
	err = l.ownerships.WithUnitLock(ctx, existing.UnitID, func(tx repository.OwnershipRepositoryInterface) error {
		var err error
		closed, err = tx.Close(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOwnershipNotFound
		}
		return nil, err
	}

	logger.WithContext(ctx).WithField("ownership_id", id).Info("ownership closed")
	return toOwnershipResponse(closed, l.now()), nil
}

// CurrentOwners lists the active, date-current ownerships of a unit, largest share first
func (l *OwnershipLedger) CurrentOwners(ctx context.Context, unitID int64) ([]OwnershipResponse, error) {
	if unitID <= 0 {
		return nil, &apperrors.ValidationError{Code: apperrors.ValidationInvalidID, Field: "unit_id", Message: "must be a positive integer"}
	}
	return l.ListCurrentOwners(ctx, OwnershipFilter{UnitID: &unitID})
}

// ListCurrentOwners lists current ownerships, optionally for one building or unit
func (l *OwnershipLedger) ListCurrentOwners(ctx context.Context, filter OwnershipFilter) ([]OwnershipResponse, error) {
	asOf := l.now()
	rows, err := l.ownerships.ListCurrent(ctx, repository.OwnershipFilter{BuildingID: filter.BuildingID, UnitID: filter.UnitID}, asOf)
	if err != nil {
		return nil, err
	}
	out := make([]OwnershipResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *toOwnershipRowResponse(&rows[i], asOf))
	}
	return out, nil
}

// BuildingOwners lists each active owner holding an active, date-current share in the
// building once, ordered by first then last name. An unknown building has no owners.
func (l *OwnershipLedger) BuildingOwners(ctx context.Context, buildingID int64) (*BuildingOwnersResponse, error) {
	if buildingID <= 0 {
		return nil, &apperrors.ValidationError{Code: apperrors.ValidationInvalidID, Field: "building_id", Message: "must be a positive integer"}
	}
	owners, err := l.ownerships.ListBuildingOwners(ctx, buildingID, l.now())
	if err != nil {
		return nil, err
	}
	out := &BuildingOwnersResponse{Owners: make([]UserResponse, 0, len(owners))}
	for i := range owners {
		out.Owners = append(out.Owners, *toUserResponse(owners[i].Identity()))
	}
	return out, nil
}

// GetOwnership retrieves one ownership with owner and unit details
func (l *OwnershipLedger) GetOwnership(ctx context.Context, id int64) (*OwnershipResponse, error) {
	if id <= 0 {
		return nil, &apperrors.ValidationError{Code: apperrors.ValidationInvalidID, Field: "id", Message: "must be a positive integer"}
	}
	row, err := l.ownerships.GetRow(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOwnershipNotFound
		}
		return nil, err
	}
	return toOwnershipRowResponse(row, l.now()), nil
}

func (l *OwnershipLedger) mapWriteError(err error) error {
	switch {
	case repository.IsCheckViolation(err):
		return apperrors.ErrInvalidPercentage
	case repository.IsForeignKeyViolation(err):
		return apperrors.ErrOwnerNotFound
	}
	return err
}

func toOwnershipResponse(o *models.Ownership, asOf time.Time) *OwnershipResponse {
	resp := &OwnershipResponse{
		ID:                  o.ID,
		UnitID:              o.UnitID,
		OwnerID:             o.OwnerID,
		OwnershipPercentage: o.OwnershipPercentage,
		StartDate:           formatDate(o.StartDate),
		PurchasePrice:       o.PurchasePrice,
		NotaryReference:     o.NotaryReference,
		IsPrimaryResidence:  o.IsPrimaryResidence,
		IsRentalProperty:    o.IsRentalProperty,
		Active:              o.Active,
		Status:              o.Status(asOf),
		CreatedAt:           o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           o.UpdatedAt.Format(time.RFC3339),
	}
	if o.EndDate != nil {
		end := formatDate(*o.EndDate)
		resp.EndDate = &end
	}
	return resp
}

func toOwnershipRowResponse(row *repository.OwnershipRow, asOf time.Time) *OwnershipResponse {
	resp := toOwnershipResponse(&row.Ownership, asOf)
	resp.OwnerFirstName = row.OwnerFirstName
	resp.OwnerLastName = row.OwnerLastName
	resp.OwnerEmail = row.OwnerEmail
	resp.UnitNumber = row.UnitNumber
	resp.BuildingID = row.BuildingID
	return resp
}
