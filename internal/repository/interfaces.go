package repository

import (
	"context"

	"committee-tracker-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// SenateDivisionRepositoryInterface defines the interface for senate division repository operations
type SenateDivisionRepositoryInterface interface {
	Create(division *models.SenateDivision) error
	GetByCode(code string) (*models.SenateDivision, error)
	GetAll(limit, offset int) ([]models.SenateDivision, int64, error)
	Update(division *models.SenateDivision) error
	Delete(code string) error
}

// DepartmentRepositoryInterface defines the interface for department repository operations
type DepartmentRepositoryInterface interface {
	Create(department *models.Department) error
	GetByCode(code string) (*models.Department, error)
	GetAll(limit, offset int) ([]models.Department, int64, error)
	Update(department *models.Department) error
	Delete(code string) error
}

// FacultyRepositoryInterface defines the interface for faculty repository operations
type FacultyRepositoryInterface interface {
	Create(faculty *models.Faculty) error
	GetByEmail(email string) (*models.Faculty, error)
	GetByEmailForShare(email string) (*models.Faculty, error)
	GetByEmailForUpdate(email string) (*models.Faculty, error)
	GetAll(limit, offset int) ([]models.Faculty, int64, error)
	GetBySenateDivision(code string, limit, offset int) ([]models.Faculty, int64, error)
	Update(faculty *models.Faculty) error
	Delete(email string) error
}

// CommitteeRepositoryInterface defines the interface for committee repository operations
type CommitteeRepositoryInterface interface {
	Create(committee *models.Committee) error
	GetByID(id uint) (*models.Committee, error)
	// GetByIDForUpdate locks the committee row until the surrounding transaction ends
	GetByIDForUpdate(id uint) (*models.Committee, error)
	GetByName(name string) (*models.Committee, error)
	GetAll(limit, offset int) ([]models.Committee, int64, error)
	Update(committee *models.Committee) error
	UpdateTotalSlots(id uint, totalSlots int) error
	Delete(id uint) error
}

// SlotRequirementRepositoryInterface defines the interface for committee slot requirement operations
type SlotRequirementRepositoryInterface interface {
	GetByCommittee(committeeID uint) ([]models.CommitteeSlotRequirement, error)
	Get(committeeID uint, divisionCode string) (*models.CommitteeSlotRequirement, error)
	Create(requirement *models.CommitteeSlotRequirement) error
	Upsert(requirement *models.CommitteeSlotRequirement) error
	Delete(committeeID uint, divisionCode string) error
}

// AssignmentRepositoryInterface defines the interface for committee assignment operations
type AssignmentRepositoryInterface interface {
	Create(assignment *models.CommitteeAssignment) error
	Get(facultyEmail string, committeeID uint) (*models.CommitteeAssignment, error)
	Exists(facultyEmail string, committeeID uint) (bool, error)
	GetByCommittee(committeeID uint) ([]models.CommitteeAssignment, error)
	GetByFaculty(facultyEmail string) ([]models.CommitteeAssignment, error)
	CountFilledByDivision(committeeID uint) ([]models.DivisionFill, error)
	Delete(facultyEmail string, committeeID uint) error
}

// StoreInterface groups the repositories that take part in slot-allocation
// writes, bound to one connection or transaction
type StoreInterface interface {
	SenateDivisions() SenateDivisionRepositoryInterface
	Faculty() FacultyRepositoryInterface
	Committees() CommitteeRepositoryInterface
	SlotRequirements() SlotRequirementRepositoryInterface
	Assignments() AssignmentRepositoryInterface

	// InSerializableTx runs fn in a SERIALIZABLE transaction, replaying it
	// when postgres reports a serialization failure or deadlock
	InSerializableTx(ctx context.Context, fn func(tx StoreInterface) error) error
}
