package repository

import (
	"committee-tracker-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FacultyRepository handles database operations for faculty
type FacultyRepository struct {
	db *gorm.DB
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *gorm.DB) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// Create creates a new faculty member
func (r *FacultyRepository) Create(faculty *models.Faculty) error {
	return r.db.Create(faculty).Error
}

// GetByEmail retrieves a faculty member by email
func (r *FacultyRepository) GetByEmail(email string) (*models.Faculty, error) {
	var faculty models.Faculty
	err := r.db.First(&faculty, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

// GetByEmailForShare retrieves a faculty member and holds a share lock on the
// row, so their senate division cannot change until the transaction ends
func (r *FacultyRepository) GetByEmailForShare(email string) (*models.Faculty, error) {
	return r.getLocked(email, "SHARE")
}

// GetByEmailForUpdate retrieves a faculty member and takes a row lock on it
func (r *FacultyRepository) GetByEmailForUpdate(email string) (*models.Faculty, error) {
	return r.getLocked(email, "UPDATE")
}

func (r *FacultyRepository) getLocked(email, strength string) (*models.Faculty, error) {
	var faculty models.Faculty
	err := r.db.Clauses(clause.Locking{Strength: strength}).First(&faculty, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

// GetAll retrieves all faculty with pagination
func (r *FacultyRepository) GetAll(limit, offset int) ([]models.Faculty, int64, error) {
	return r.list(r.db.Model(&models.Faculty{}), limit, offset)
}

// GetBySenateDivision retrieves the faculty of one senate division with pagination
func (r *FacultyRepository) GetBySenateDivision(code string, limit, offset int) ([]models.Faculty, int64, error) {
	return r.list(r.db.Model(&models.Faculty{}).Where("senate_division_code = ?", code), limit, offset)
}

func (r *FacultyRepository) list(query *gorm.DB, limit, offset int) ([]models.Faculty, int64, error) {
	var faculty []models.Faculty
	var total int64

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("email").Limit(limit).Offset(offset).Find(&faculty).Error
	if err != nil {
		return nil, 0, err
	}

	return faculty, total, nil
}

// Update updates a faculty member
func (r *FacultyRepository) Update(faculty *models.Faculty) error {
	return r.db.Save(faculty).Error
}

// Delete deletes a faculty member. Their committee assignments cascade.
func (r *FacultyRepository) Delete(email string) error {
	result := r.db.Delete(&models.Faculty{}, "email = ?", email)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
