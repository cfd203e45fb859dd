package service

import (
	"context"

	"committee-tracker-backend/internal/allocation"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SenateDivisionServiceInterface defines the interface for senate division service
type SenateDivisionServiceInterface interface {
	Create(req *CreateSenateDivisionRequest) (*SenateDivisionResponse, error)
	GetByCode(code string) (*SenateDivisionResponse, error)
	GetAll(page, pageSize int) (*SenateDivisionListResponse, error)
	Update(code string, req *UpdateSenateDivisionRequest) (*SenateDivisionResponse, error)
	Delete(code string) error
}

// DepartmentServiceInterface defines the interface for department service
type DepartmentServiceInterface interface {
	Create(req *CreateDepartmentRequest) (*DepartmentResponse, error)
	GetByCode(code string) (*DepartmentResponse, error)
	GetAll(page, pageSize int) (*DepartmentListResponse, error)
	Update(code string, req *UpdateDepartmentRequest) (*DepartmentResponse, error)
	Delete(code string) error
}

// FacultyServiceInterface defines the interface for faculty service
type FacultyServiceInterface interface {
	Create(req *CreateFacultyRequest) (*FacultyResponse, error)
	GetByEmail(email string) (*FacultyResponse, error)
	GetAll(senateDivision string, page, pageSize int) (*FacultyListResponse, error)
	Update(ctx context.Context, email string, req *UpdateFacultyRequest) (*FacultyResponse, error)
	Delete(email string) error
}

// CommitteeServiceInterface defines the interface for committee service
type CommitteeServiceInterface interface {
	Create(ctx context.Context, req *CreateCommitteeRequest) (*CommitteeResponse, error)
	GetByID(id uint) (*CommitteeResponse, error)
	GetAll(page, pageSize int) (*CommitteeListResponse, error)
	Update(ctx context.Context, id uint, req *UpdateCommitteeRequest) (*CommitteeResponse, error)
	Delete(id uint) error
	ApplyCapacityEdit(ctx context.Context, id uint, req *CapacityEditRequest) (*CommitteeResponse, error)
	GetSlotRequirements(id uint) ([]SlotRequirementResponse, error)
	CreateSlotRequirement(ctx context.Context, id uint, req *SlotRequirementRequest) (*SlotRequirementResponse, error)
	DeleteSlotRequirement(ctx context.Context, id uint, divisionCode string) error
	GetLedger(ctx context.Context, id uint) (*allocation.Ledger, error)
}

// AssignmentServiceInterface defines the interface for committee assignment service
type AssignmentServiceInterface interface {
	ProposeAssignment(ctx context.Context, req *ProposeAssignmentRequest) (*AssignmentResponse, error)
	GetByCommittee(committeeID uint) ([]AssignmentResponse, error)
	GetByFaculty(email string) ([]AssignmentResponse, error)
	Delete(ctx context.Context, email string, committeeID uint) error
}
