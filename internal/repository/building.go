package repository

import (
	"context"

	"copro-backend/internal/database/models"

	"gorm.io/gorm"
)

// BuildingRepository handles database operations for buildings
type BuildingRepository struct {
	db *gorm.DB
}

// NewBuildingRepository creates a new building repository
func NewBuildingRepository(db *gorm.DB) *BuildingRepository {
	return &BuildingRepository{db: db}
}

// Create creates a new building
func (r *BuildingRepository) Create(ctx context.Context, building *models.Building) error {
	return storeError("create building", r.db.WithContext(ctx).Create(building).Error)
}

// GetByID retrieves a building by ID
func (r *BuildingRepository) GetByID(ctx context.Context, id int64) (*models.Building, error) {
	var building models.Building
	if err := r.db.WithContext(ctx).First(&building, "id = ?", id).Error; err != nil {
		return nil, storeError("get building", err)
	}
	return &building, nil
}

// GetAll retrieves buildings ordered by name with pagination
func (r *BuildingRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Building, int64, error) {
	var buildings []models.Building
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Building{}).Count(&total).Error; err != nil {
		return nil, 0, storeError("count buildings", err)
	}

	err := r.db.WithContext(ctx).Order("name ASC, id ASC").Limit(limit).Offset(offset).Find(&buildings).Error
	if err != nil {
		return nil, 0, storeError("list buildings", err)
	}

	return buildings, total, nil
}
