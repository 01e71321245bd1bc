package repository

import (
	"context"
	"errors"
	"time"

	"copro-backend/internal/database/models"
	apperrors "copro-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OwnershipRepository handles database operations for ownerships
type OwnershipRepository struct {
	db *gorm.DB
}

// NewOwnershipRepository creates a new ownership repository
func NewOwnershipRepository(db *gorm.DB) *OwnershipRepository {
	return &OwnershipRepository{db: db}
}

const ownershipRowSelect = `ownerships.*,
	building_owners.first_name AS owner_first_name,
	building_owners.last_name AS owner_last_name,
	building_owners.email AS owner_email,
	units.unit_number AS unit_number,
	units.building_id AS building_id`

func (r *OwnershipRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("ownerships").
		Select(ownershipRowSelect).
		Joins("JOIN building_owners ON building_owners.id = ownerships.owner_id").
		Joins("JOIN units ON units.id = ownerships.unit_id")
}

// GetByID retrieves an ownership by ID
func (r *OwnershipRepository) GetByID(ctx context.Context, id int64) (*models.Ownership, error) {
	var ownership models.Ownership
	if err := r.db.WithContext(ctx).First(&ownership, "id = ?", id).Error; err != nil {
		return nil, storeError("get ownership", err)
	}
	return &ownership, nil
}

// GetRow retrieves an ownership joined with its owner and unit
func (r *OwnershipRepository) GetRow(ctx context.Context, id int64) (*OwnershipRow, error) {
	var row OwnershipRow
	if err := r.joined(ctx).Where("ownerships.id = ?", id).Take(&row).Error; err != nil {
		return nil, storeError("get ownership", err)
	}
	return &row, nil
}

// SumCurrentPercentage totals the active, date-current shares of a unit
func (r *OwnershipRepository) SumCurrentPercentage(ctx context.Context, unitID, excludeID int64, asOf time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Ownership{}).
		Select("COALESCE(SUM(ownership_percentage), 0)").
		Where("unit_id = ? AND active = ? AND id <> ?", unitID, true, excludeID).
		Where("(end_date IS NULL OR end_date > ?)", models.DateOf(asOf)).
		Scan(&total).Error
	if err != nil {
		return 0, storeError("sum ownership", err)
	}
	return total, nil
}

// Create creates a new ownership
func (r *OwnershipRepository) Create(ctx context.Context, ownership *models.Ownership) error {
	return storeError("create ownership", r.db.WithContext(ctx).Create(ownership).Error)
}

// ApplyUpdate executes the builder against the ownership row and returns the updated row
func (r *OwnershipRepository) ApplyUpdate(ctx context.Context, id int64, changes *UpdateBuilder) (*models.Ownership, error) {
	var ownership models.Ownership
	if err := execUpdate(ctx, r.db, "update ownership", id, changes, &ownership); err != nil {
		return nil, err
	}
	return &ownership, nil
}

// Close clears the active flag, keeping the row for history
func (r *OwnershipRepository) Close(ctx context.Context, id int64) (*models.Ownership, error) {
	var ownership models.Ownership
	result := r.db.WithContext(ctx).Model(&ownership).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return nil, storeError("close ownership", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &ownership, nil
}

// ListCurrent lists active, date-current ownerships grouped by unit, largest share first
func (r *OwnershipRepository) ListCurrent(ctx context.Context, filter OwnershipFilter, asOf time.Time) ([]OwnershipRow, error) {
	q := r.joined(ctx).
		Where("ownerships.active = ?", true).
		Where("(ownerships.end_date IS NULL OR ownerships.end_date > ?)", models.DateOf(asOf))
	if filter.UnitID != nil {
		q = q.Where("ownerships.unit_id = ?", *filter.UnitID)
	}
	if filter.BuildingID != nil {
		q = q.Where("units.building_id = ?", *filter.BuildingID)
	}

	var rows []OwnershipRow
	if err := q.Order("units.building_id ASC, units.unit_number ASC, ownerships.ownership_percentage DESC, ownerships.id ASC").Find(&rows).Error; err != nil {
		return nil, storeError("list ownerships", err)
	}
	return rows, nil
}

// ListBuildingOwners lists each active owner with at least one active, date-current share in
// the building once, ordered by name
func (r *OwnershipRepository) ListBuildingOwners(ctx context.Context, buildingID int64, asOf time.Time) ([]models.BuildingOwner, error) {
	var owners []models.BuildingOwner
	err := r.db.WithContext(ctx).Model(&models.BuildingOwner{}).
		Distinct("building_owners.*").
		Joins("JOIN ownerships ON ownerships.owner_id = building_owners.id").
		Joins("JOIN units ON units.id = ownerships.unit_id").
		Where("units.building_id = ? AND building_owners.active = ? AND ownerships.active = ?", buildingID, true, true).
		Where("(ownerships.end_date IS NULL OR ownerships.end_date > ?)", models.DateOf(asOf)).
		Order("building_owners.first_name ASC, building_owners.last_name ASC, building_owners.id ASC").
		Find(&owners).Error
	if err != nil {
		return nil, storeError("list building owners", err)
	}
	return owners, nil
}

// WithUnitLock runs fn in one transaction that first takes SELECT ... FOR UPDATE on the unit row.
// The lock is on the parent so that concurrent inserts for the unit are serialized too.
func (r *OwnershipRepository) WithUnitLock(ctx context.Context, unitID int64, fn func(OwnershipRepositoryInterface) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var unit models.Unit
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Take(&unit, "id = ?", unitID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUnitNotFound
			}
			return storeError("lock unit", err)
		}
		return fn(&OwnershipRepository{db: tx})
	})
	return txError("ownership transaction", err)
}
