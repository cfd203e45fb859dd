package repository

import (
	"committee-tracker-backend/internal/database/models"

	"gorm.io/gorm"
)

// SenateDivisionRepository handles database operations for senate divisions
type SenateDivisionRepository struct {
	db *gorm.DB
}

// NewSenateDivisionRepository creates a new senate division repository
func NewSenateDivisionRepository(db *gorm.DB) *SenateDivisionRepository {
	return &SenateDivisionRepository{db: db}
}

// Create creates a new senate division
func (r *SenateDivisionRepository) Create(division *models.SenateDivision) error {
	return r.db.Create(division).Error
}

// GetByCode retrieves a senate division by code
func (r *SenateDivisionRepository) GetByCode(code string) (*models.SenateDivision, error) {
	var division models.SenateDivision
	err := r.db.First(&division, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &division, nil
}

// GetAll retrieves all senate divisions with pagination, ordered by code
func (r *SenateDivisionRepository) GetAll(limit, offset int) ([]models.SenateDivision, int64, error) {
	var divisions []models.SenateDivision
	var total int64

	if err := r.db.Model(&models.SenateDivision{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("code").Limit(limit).Offset(offset).Find(&divisions).Error
	if err != nil {
		return nil, 0, err
	}

	return divisions, total, nil
}

// Update updates a senate division
func (r *SenateDivisionRepository) Update(division *models.SenateDivision) error {
	return r.db.Save(division).Error
}

// Delete deletes a senate division. Postgres rejects the delete with a
// foreign key violation while faculty or slot requirements reference it.
func (r *SenateDivisionRepository) Delete(code string) error {
	result := r.db.Delete(&models.SenateDivision{}, "code = ?", code)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
