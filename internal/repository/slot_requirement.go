package repository

import (
	"committee-tracker-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SlotRequirementRepository handles database operations for committee slot requirements
type SlotRequirementRepository struct {
	db *gorm.DB
}

// NewSlotRequirementRepository creates a new slot requirement repository
func NewSlotRequirementRepository(db *gorm.DB) *SlotRequirementRepository {
	return &SlotRequirementRepository{db: db}
}

// GetByCommittee retrieves every requirement row of a committee, ordered by division code
func (r *SlotRequirementRepository) GetByCommittee(committeeID uint) ([]models.CommitteeSlotRequirement, error) {
	var requirements []models.CommitteeSlotRequirement
	err := r.db.Where("committee_id = ?", committeeID).Order("senate_division_code").Find(&requirements).Error
	if err != nil {
		return nil, err
	}
	return requirements, nil
}

// Get retrieves one requirement row
func (r *SlotRequirementRepository) Get(committeeID uint, divisionCode string) (*models.CommitteeSlotRequirement, error) {
	var requirement models.CommitteeSlotRequirement
	err := r.db.First(&requirement, "committee_id = ? AND senate_division_code = ?", committeeID, divisionCode).Error
	if err != nil {
		return nil, err
	}
	return &requirement, nil
}

// Create inserts a requirement row
func (r *SlotRequirementRepository) Create(requirement *models.CommitteeSlotRequirement) error {
	return r.db.Omit(clause.Associations).Create(requirement).Error
}

// Upsert inserts a requirement row or overwrites the minimum of an existing one
func (r *SlotRequirementRepository) Upsert(requirement *models.CommitteeSlotRequirement) error {
	return r.db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "committee_id"}, {Name: "senate_division_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"slot_requirements", "updated_at"}),
	}).Create(requirement).Error
}

// Delete removes a requirement row
func (r *SlotRequirementRepository) Delete(committeeID uint, divisionCode string) error {
	result := r.db.Delete(&models.CommitteeSlotRequirement{},
		"committee_id = ? AND senate_division_code = ?", committeeID, divisionCode)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
