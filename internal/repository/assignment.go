package repository

import (
	"committee-tracker-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssignmentRepository handles database operations for committee assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create inserts an assignment
func (r *AssignmentRepository) Create(assignment *models.CommitteeAssignment) error {
	return r.db.Omit(clause.Associations).Create(assignment).Error
}

// Get retrieves one assignment with its faculty member
func (r *AssignmentRepository) Get(facultyEmail string, committeeID uint) (*models.CommitteeAssignment, error) {
	var assignment models.CommitteeAssignment
	err := r.db.Preload("Faculty").
		First(&assignment, "faculty_email = ? AND committee_id = ?", facultyEmail, committeeID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Exists reports whether the faculty member already holds a seat on the committee
func (r *AssignmentRepository) Exists(facultyEmail string, committeeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.CommitteeAssignment{}).
		Where("faculty_email = ? AND committee_id = ?", facultyEmail, committeeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByCommittee retrieves the assignments of a committee with their faculty
func (r *AssignmentRepository) GetByCommittee(committeeID uint) ([]models.CommitteeAssignment, error) {
	var assignments []models.CommitteeAssignment
	err := r.db.Preload("Faculty").
		Where("committee_id = ?", committeeID).
		Order("faculty_email").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// GetByFaculty retrieves the assignments held by one faculty member
func (r *AssignmentRepository) GetByFaculty(facultyEmail string) ([]models.CommitteeAssignment, error) {
	var assignments []models.CommitteeAssignment
	err := r.db.Where("faculty_email = ?", facultyEmail).
		Order("committee_id").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// CountFilledByDivision counts the assignments on a committee grouped by the
// senate division of the assigned faculty. Every row counts regardless of
// its dates.
func (r *AssignmentRepository) CountFilledByDivision(committeeID uint) ([]models.DivisionFill, error) {
	var fills []models.DivisionFill
	err := r.db.Model(&models.CommitteeAssignment{}).
		Select("faculty.senate_division_code AS senate_division_code, COUNT(*) AS filled").
		Joins("JOIN faculty ON faculty.email = committee_assignments.faculty_email").
		Where("committee_assignments.committee_id = ?", committeeID).
		Group("faculty.senate_division_code").
		Order("faculty.senate_division_code").
		Scan(&fills).Error
	if err != nil {
		return nil, err
	}
	return fills, nil
}

// Delete removes an assignment
func (r *AssignmentRepository) Delete(facultyEmail string, committeeID uint) error {
	result := r.db.Delete(&models.CommitteeAssignment{},
		"faculty_email = ? AND committee_id = ?", facultyEmail, committeeID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
