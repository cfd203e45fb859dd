package repository

import (
	"committee-tracker-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommitteeRepository handles database operations for committees
type CommitteeRepository struct {
	db *gorm.DB
}

// NewCommitteeRepository creates a new committee repository
func NewCommitteeRepository(db *gorm.DB) *CommitteeRepository {
	return &CommitteeRepository{db: db}
}

// Create creates a new committee. Slot requirements set on the struct are
// inserted with it.
func (r *CommitteeRepository) Create(committee *models.Committee) error {
	return r.db.Create(committee).Error
}

// GetByID retrieves a committee by ID
func (r *CommitteeRepository) GetByID(id uint) (*models.Committee, error) {
	var committee models.Committee
	err := r.db.First(&committee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &committee, nil
}

// GetByIDForUpdate retrieves a committee and takes a row lock on it
func (r *CommitteeRepository) GetByIDForUpdate(id uint) (*models.Committee, error) {
	var committee models.Committee
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&committee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &committee, nil
}

// GetByName retrieves a committee by name
func (r *CommitteeRepository) GetByName(name string) (*models.Committee, error) {
	var committee models.Committee
	err := r.db.First(&committee, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &committee, nil
}

// GetAll retrieves all committees with pagination
func (r *CommitteeRepository) GetAll(limit, offset int) ([]models.Committee, int64, error) {
	var committees []models.Committee
	var total int64

	if err := r.db.Model(&models.Committee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("id").Limit(limit).Offset(offset).Find(&committees).Error
	if err != nil {
		return nil, 0, err
	}

	return committees, total, nil
}

// Update updates a committee's own columns. Associations are not touched.
func (r *CommitteeRepository) Update(committee *models.Committee) error {
	return r.db.Omit(clause.Associations).Save(committee).Error
}

// UpdateTotalSlots sets the capacity of a committee
func (r *CommitteeRepository) UpdateTotalSlots(id uint, totalSlots int) error {
	result := r.db.Model(&models.Committee{}).Where("id = ?", id).Update("total_slots", totalSlots)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a committee with its slot requirements and assignments
func (r *CommitteeRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Committee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
