package repository

import (
	"committee-tracker-backend/internal/database/models"

	"gorm.io/gorm"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create creates a new department
func (r *DepartmentRepository) Create(department *models.Department) error {
	return r.db.Create(department).Error
}

// GetByCode retrieves a department by code
func (r *DepartmentRepository) GetByCode(code string) (*models.Department, error) {
	var department models.Department
	err := r.db.First(&department, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// GetAll retrieves all departments with pagination, ordered by code
func (r *DepartmentRepository) GetAll(limit, offset int) ([]models.Department, int64, error) {
	var departments []models.Department
	var total int64

	if err := r.db.Model(&models.Department{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("code").Limit(limit).Offset(offset).Find(&departments).Error
	if err != nil {
		return nil, 0, err
	}

	return departments, total, nil
}

// Update updates a department
func (r *DepartmentRepository) Update(department *models.Department) error {
	return r.db.Save(department).Error
}

// Delete deletes a department. Faculty referencing it keep their row with
// department_code set to NULL.
func (r *DepartmentRepository) Delete(code string) error {
	result := r.db.Delete(&models.Department{}, "code = ?", code)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
