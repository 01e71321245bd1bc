package repository

import (
	"context"

	"copro-backend/internal/database/models"

	"gorm.io/gorm"
)

// UnitRepository handles database operations for units
type UnitRepository struct {
	db *gorm.DB
}

// NewUnitRepository creates a new unit repository
func NewUnitRepository(db *gorm.DB) *UnitRepository {
	return &UnitRepository{db: db}
}

// Create creates a new unit
func (r *UnitRepository) Create(ctx context.Context, unit *models.Unit) error {
	return storeError("create unit", r.db.WithContext(ctx).Create(unit).Error)
}

// GetByID retrieves a unit by ID
func (r *UnitRepository) GetByID(ctx context.Context, id int64) (*models.Unit, error) {
	var unit models.Unit
	if err := r.db.WithContext(ctx).First(&unit, "id = ?", id).Error; err != nil {
		return nil, storeError("get unit", err)
	}
	return &unit, nil
}

// List retrieves units ordered by building and unit number, optionally for one building
func (r *UnitRepository) List(ctx context.Context, buildingID *int64) ([]models.Unit, error) {
	var units []models.Unit
	q := r.db.WithContext(ctx).Model(&models.Unit{})
	if buildingID != nil {
		q = q.Where("building_id = ?", *buildingID)
	}
	if err := q.Order("building_id ASC, unit_number ASC").Find(&units).Error; err != nil {
		return nil, storeError("list units", err)
	}
	return units, nil
}

// NumberTaken reports whether another unit of the building already uses unitNumber
func (r *UnitRepository) NumberTaken(ctx context.Context, buildingID int64, unitNumber string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Unit{}).
		Where("building_id = ? AND unit_number = ? AND id <> ?", buildingID, unitNumber, excludeID).
		Count(&count).Error
	if err != nil {
		return false, storeError("check unit number", err)
	}
	return count > 0, nil
}

// ApplyUpdate executes the builder against the unit row and returns the updated unit
func (r *UnitRepository) ApplyUpdate(ctx context.Context, id int64, changes *UpdateBuilder) (*models.Unit, error) {
	var unit models.Unit
	if err := execUpdate(ctx, r.db, "update unit", id, changes, &unit); err != nil {
		return nil, err
	}
	return &unit, nil
}

// execUpdate runs a built UPDATE ... RETURNING * and scans the single returned row into dest.
// The statement uses native positional parameters, so it bypasses gorm's placeholder rewriting.
func execUpdate(ctx context.Context, db *gorm.DB, op string, id int64, changes *UpdateBuilder, dest interface{}) error {
	query, args, err := changes.Build(id)
	if err != nil {
		return err
	}

	tx := db.WithContext(ctx)
	rows, err := tx.Statement.ConnPool.QueryContext(ctx, query, args...)
	if err != nil {
		return storeError(op, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return storeError(op, err)
		}
		return gorm.ErrRecordNotFound
	}
	if err := tx.ScanRows(rows, dest); err != nil {
		return storeError(op, err)
	}
	return storeError(op, rows.Err())
}
